package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nlebedev/hexfall/internal/config"
	"github.com/nlebedev/hexfall/internal/core"
	"github.com/nlebedev/hexfall/internal/games/hexfall"
	"github.com/nlebedev/hexfall/internal/platform/tui"
	"github.com/nlebedev/hexfall/internal/registry"
	"github.com/nlebedev/hexfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant. Defaults to the classic variant
with special cells; use hexfall_pure for plain line clearing.

Controls:
  A/H/Left   - Move left
  D/L/Right  - Move right
  S/Down     - Soft drop
  W/X/Up     - Rotate
  Space      - Hard drop
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Start at level 1, gentler special cells
  normal - Start at level 3
  hard   - Start at level 5, more frozen cells

Examples:
  hexfall play
  hexfall play hexfall_pure
  hexfall play --difficulty hard
  hexfall play --config ./my-hexfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// parseDifficulty validates a --difficulty flag value.
func parseDifficulty(s string) (config.DifficultyPreset, error) {
	switch s {
	case "", "normal":
		return config.DifficultyNormal, nil
	case "easy":
		return config.DifficultyEasy, nil
	case "hard":
		return config.DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "hexfall"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hexfall list' to see available variants.")
		os.Exit(1)
	}

	preset, err := parseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Apply config path and difficulty before creation
	hexfall.SetConfigPath(flagConfig)
	hexfall.SetDifficulty(preset)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
