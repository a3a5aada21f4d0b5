package hexfall

import (
	"math/rand"
	"time"

	"github.com/nlebedev/hexfall/internal/config"
	"github.com/nlebedev/hexfall/internal/core"
	"github.com/nlebedev/hexfall/internal/hex"
	"github.com/nlebedev/hexfall/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeClassic plays with bomb, multiplier and frozen cells enabled.
	ModeClassic Mode = "classic"
	// ModePure disables every special effect for score-comparable runs.
	ModePure Mode = "pure"
)

// Animation pacing, in simulation ticks at the default 60 tick rate.
const (
	clearFlashTicks     = 10 // completed lines blink before removal
	explosionFlashTicks = 8  // bomb blast radius blinks
	gravityFrameTicks   = 3  // one cascade gravity step per frame
	stagePauseTicks     = 6  // rest between cascade stages
)

// Package-level variables set by the CLI before the game starts.
var (
	configPath string
	difficulty = config.DifficultyNormal
)

// SetConfigPath sets a custom gameplay config file path. Empty means
// the default search order.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficulty selects the difficulty preset for subsequent games.
func SetDifficulty(d config.DifficultyPreset) {
	difficulty = d
}

// playbackFrame is one visual state of the lock-resolution animation.
// Playback is cosmetic; the gameplay grid and score are final the
// moment the piece locks.
type playbackFrame struct {
	grid  Grid
	ticks int
}

// Game implements the hexagonal falling-block puzzle.
type Game struct {
	mode Mode
	cfg  config.HexfallConfig
	rng  *rand.Rand
	tick uint64

	field *Field
	grid  Grid
	piece *Piece
	next  *Piece

	recent []PieceType
	lock   LockState

	score      int
	lines      int
	level      int
	startLevel int

	tickRate       int
	gravityCounter int

	playback []playbackFrame

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver      bool
	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
}

// New creates a new classic mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewPure creates a new pure mode game with specials disabled.
func NewPure() *Game {
	return &Game{mode: ModePure}
}

func init() {
	registry.Register("hexfall", func() registry.Game {
		return New()
	})
	registry.Register("hexfall_pure", func() registry.Game {
		return NewPure()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModePure {
		return "hexfall_pure"
	}
	return "hexfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModePure {
		return "Hexfall (Pure)"
	}
	return "Hexfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadHexfall(configPath)
	if err != nil {
		gameCfg = config.DefaultHexfallConfig()
	}
	config.ApplyHexfallPreset(&gameCfg, difficulty)
	g.cfg = gameCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.field = NewField()
	g.grid = NewGrid(g.field)
	g.piece = nil
	g.next = nil
	g.recent = nil
	g.lock = LockState{}
	g.playback = nil

	g.score = 0
	g.lines = 0
	g.startLevel = config.StartLevelForPreset(difficulty)
	g.level = g.startLevel
	g.gravityCounter = 0

	g.gameOver = false
	g.paused = false
	g.moveProcessed = false

	g.checkScreenSize()
	g.spawnNext()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: playfield (columns spaced 2 apart + border) plus the
	// side panel with score and next-piece preview.
	minW := g.field.Columns()*2 + 24
	minH := g.field.Rows() + 4
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// now converts the tick counter to simulation time for the lock timer.
func (g *Game) now() time.Duration {
	return time.Duration(g.tick) * time.Second / time.Duration(g.tickRate)
}

// lockDelay returns the configured lock delay.
func (g *Game) lockDelay() time.Duration {
	if g.cfg.Game.LockDelayMS <= 0 {
		return DefaultLockDelay
	}
	return time.Duration(g.cfg.Game.LockDelayMS) * time.Millisecond
}

// gravityTicks returns the automatic drop interval in ticks for the
// current level.
func (g *Game) gravityTicks() int {
	return core.Max(1, SpeedMS(g.level)*g.tickRate/1000)
}

// specialsConfig returns the special spawn model, or nil in pure mode.
func (g *Game) specialsConfig() *config.SpecialsConfig {
	if g.mode == ModePure {
		return nil
	}
	return &g.cfg.Specials
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		// Restart is handled by the platform via Reset.
		return core.StepResult{State: g.State()}
	}

	// Drain the lock-resolution animation before accepting new input.
	if len(g.playback) > 0 {
		g.advancePlayback()
		return core.StepResult{State: g.State()}
	}

	if g.piece == nil {
		g.spawnNext()
		return core.StepResult{State: g.State()}
	}

	g.processInput(in)

	if g.piece != nil && len(g.playback) == 0 {
		g.applyGravity()
	}

	// Lock once the delay has run out while the piece stays grounded.
	if g.piece != nil && g.lock.Expired(g.now(), g.lockDelay()) {
		g.lockPiece()
	}

	return core.StepResult{State: g.State()}
}

// processInput applies at most one movement action for this tick.
func (g *Game) processInput(in core.InputFrame) {
	apply := func(next *Piece, ok bool) {
		if !ok || g.moveProcessed {
			return
		}
		g.piece = next
		g.moveProcessed = true
		// A successful move grants fresh tuck time if still grounded.
		if g.grounded() {
			g.lock = g.lock.Restarted(g.now())
		} else {
			g.lock = g.lock.Released()
		}
	}

	switch {
	case in.Has(core.ActionHardDrop):
		g.piece = HardDrop(g.piece, g.grid, g.field)
		g.moveProcessed = true
		g.lockPiece()

	case in.Has(core.ActionLeft):
		if next, ok := MoveLeft(g.piece, g.grid, g.field); ok {
			apply(next, ok)
		} else if g.lock.Locking {
			// Tuck under an overhang during lock delay.
			apply(MoveDownLeft(g.piece, g.grid, g.field))
		}

	case in.Has(core.ActionRight):
		if next, ok := MoveRight(g.piece, g.grid, g.field); ok {
			apply(next, ok)
		} else if g.lock.Locking {
			apply(MoveDownRight(g.piece, g.grid, g.field))
		}

	case in.Has(core.ActionRotate):
		apply(RotateWithKick(g.piece, g.grid, g.field))

	case in.Has(core.ActionDown):
		if next, ok := MoveDown(g.piece, g.grid, g.field); ok {
			g.piece = next
			g.moveProcessed = true
			g.gravityCounter = 0
			g.lock = g.lock.Released()
		}
		if g.grounded() {
			g.lock = g.lock.Grounded(g.now())
		}
	}
}

// grounded reports whether the current piece cannot fall.
func (g *Game) grounded() bool {
	if g.piece == nil {
		return false
	}
	_, ok := MoveDown(g.piece, g.grid, g.field)
	return !ok
}

// applyGravity drops the piece on the level's cadence.
func (g *Game) applyGravity() {
	g.gravityCounter++
	if g.gravityCounter < g.gravityTicks() {
		return
	}
	g.gravityCounter = 0

	if next, ok := MoveDown(g.piece, g.grid, g.field); ok {
		g.piece = next
		g.lock = g.lock.Released()
		return
	}
	g.lock = g.lock.Grounded(g.now())
}

// lockPiece merges the piece into the grid and resolves everything that
// follows: bomb-piece detonation, gravity, line clears and cascades,
// scoring, and level progression. The grid and score are final when
// this returns; the playback queue replays the resolution visually.
func (g *Game) lockPiece() {
	level := g.level // scoring uses the level at lock time
	piece := g.piece
	g.piece = nil
	g.lock = LockState{}
	g.gravityCounter = 0

	pieceCells := piece.Cells()
	merged := g.grid.Clone()
	for _, a := range pieceCells {
		merged[a] = Cell{Filled: true, Color: piece.Color, Special: piece.Special}
	}
	g.score += LockScore(level)

	var frames []playbackFrame

	if piece.Special == SpecialBomb {
		// A bomb piece detonates on lock: it destroys every filled
		// neighbor of its cells and then its own cells.
		own := make(map[hex.Axial]bool, len(pieceCells))
		for _, a := range pieceCells {
			own[a] = true
		}
		var blast []hex.Axial
		seen := make(map[hex.Axial]bool)
		for _, a := range pieceCells {
			for _, n := range a.Neighbors() {
				if !g.field.Contains(n) || own[n] || seen[n] || !merged.Filled(n) {
					continue
				}
				seen[n] = true
				blast = append(blast, n)
			}
		}
		blast = append(blast, pieceCells...)

		frames = append(frames, playbackFrame{
			grid:  merged.WithClearing(blast, 1),
			ticks: explosionFlashTicks,
		})
		for _, a := range blast {
			merged[a] = Cell{}
		}
		frames = append(frames, playbackFrame{grid: merged, ticks: stagePauseTicks})
	}

	promote := func(gr Grid) Grid {
		if g.mode != ModeClassic {
			return gr
		}
		out, _ := PromoteSpecial(gr, g.field, level, g.cfg.Specials, g.rng)
		return out
	}

	settled, fallFrames := SettleGrid(merged, g.field)
	for _, fr := range fallFrames {
		frames = append(frames, playbackFrame{grid: fr, ticks: gravityFrameTicks})
	}
	settled = promote(settled)

	stages := ResolveCascade(settled, g.field, promote)

	totalLines := 0
	for i, st := range stages {
		n := len(st.Lines)
		g.score += LineScore(n, level, i+1, st.HasMultiplier)
		totalLines += n

		frames = append(frames, playbackFrame{
			grid:  st.Before.WithClearing(lineCellUnion(st.Lines), n),
			ticks: clearFlashTicks,
		})
		if len(st.Exploded) > 0 {
			frames = append(frames, playbackFrame{
				grid:  st.AfterClear.WithClearing(st.Exploded, 1),
				ticks: explosionFlashTicks,
			})
		}
		frames = append(frames, playbackFrame{grid: st.AfterClear, ticks: stagePauseTicks})
		for _, fr := range st.Frames {
			frames = append(frames, playbackFrame{grid: fr, ticks: gravityFrameTicks})
		}
		frames = append(frames, playbackFrame{grid: st.Settled, ticks: stagePauseTicks})
	}

	if len(stages) > 0 {
		g.grid = stages[len(stages)-1].Settled
	} else {
		g.grid = settled
	}

	g.lines += totalLines
	g.level = core.Max(g.startLevel, LevelFor(g.lines))

	g.playback = frames
	if len(g.playback) == 0 {
		g.spawnNext()
	}
}

// advancePlayback consumes one tick of the animation queue and spawns
// the next piece once the queue drains.
func (g *Game) advancePlayback() {
	g.playback[0].ticks--
	if g.playback[0].ticks <= 0 {
		g.playback = g.playback[1:]
	}
	if len(g.playback) == 0 {
		g.spawnNext()
	}
}

// spawnNext promotes the preview piece to the active piece and draws a
// fresh preview. A blocked spawn position ends the game.
func (g *Game) spawnNext() {
	if g.gameOver {
		return
	}

	if g.next == nil {
		g.next = SpawnPiece(g.field, g.level, g.rng, g.recent, g.specialsConfig())
	}
	g.piece = g.next

	g.recent = append(g.recent, g.piece.Type)
	if mem := g.cfg.Game.RecentPieceMemory; mem > 0 && len(g.recent) > mem {
		g.recent = g.recent[len(g.recent)-mem:]
	}

	g.next = SpawnPiece(g.field, g.level, g.rng, g.recent, g.specialsConfig())

	g.lock = LockState{}
	g.gravityCounter = 0

	if !ValidPosition(g.piece, g.grid, g.field) {
		g.gameOver = true
	}
}

// displayGrid returns the grid the renderer should show: the animation
// frame while playback runs, the live grid otherwise.
func (g *Game) displayGrid() Grid {
	if len(g.playback) > 0 {
		return g.playback[0].grid
	}
	return g.grid
}

// ghostPiece returns the hard-drop preview, or nil when disabled or
// not meaningful.
func (g *Game) ghostPiece() *Piece {
	if g.piece == nil || !g.cfg.Game.GhostPiece {
		return nil
	}
	ghost := HardDrop(g.piece, g.grid, g.field)
	if ghost.Pos == g.piece.Pos {
		return nil
	}
	return ghost
}

// Level returns the current progression level.
func (g *Game) Level() int {
	return g.level
}

// Lines returns the total number of cleared lines.
func (g *Game) Lines() int {
	return g.lines
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
