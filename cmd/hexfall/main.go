// hexfall is a falling-block puzzle played on a hexagonal grid, right
// in the terminal.
//
// Usage:
//
//	hexfall play [variant]   - Play a game (default: hexfall)
//	hexfall menu             - Interactive mode picker
//	hexfall list             - List available variants
//	hexfall serve            - Start SSH server for remote play
//	hexfall scores <variant> - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hexfall/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game variants to register them
	_ "github.com/nlebedev/hexfall/internal/games/hexfall"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexfall",
	Short: "Hexfall - a hexagonal falling-block puzzle for your terminal",
	Long: `Hexfall is a terminal puzzle game where tetromino-like pieces fall
onto a hexagonal grid. Complete diagonal lines to clear them, chain
cascades for bonus points, and watch out for frozen cells.

Available commands:
  play     - Play a variant directly
  menu     - Interactive mode picker
  list     - Show all available variants
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  hexfall play
  hexfall play hexfall_pure
  hexfall play --difficulty hard
  hexfall menu
  hexfall serve --ssh :2222
  hexfall scores hexfall`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
