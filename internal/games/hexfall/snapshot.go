package hexfall

import (
	"github.com/nlebedev/hexfall/internal/core"
	"github.com/nlebedev/hexfall/internal/hex"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// SnapshotCell is the externalized state of one filled cell.
type SnapshotCell struct {
	Color         core.Color
	Special       string
	FrozenCleared bool
}

// Snapshot captures the complete game state for determinism testing and
// replay. Filled cells are keyed by the canonical "q,r" coordinate form.
type Snapshot struct {
	Tick  uint64
	Mode  string // "classic" or "pure"
	Score int
	Lines int
	Level int

	PieceType     string
	PiecePos      string
	PieceRotation int
	PieceSpecial  string
	NextType      string

	Cells map[string]SnapshotCell
	State GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.gameOver:
		state = StateGameOver
	case len(g.playback) > 0:
		state = StateResolving
	}

	cells := make(map[string]SnapshotCell)
	for a, c := range g.grid {
		if !c.Filled {
			continue
		}
		cells[a.Key()] = SnapshotCell{
			Color:         c.Color,
			Special:       c.Special.String(),
			FrozenCleared: c.FrozenCleared,
		}
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Score: g.score,
		Lines: g.lines,
		Level: g.level,
		Cells: cells,
		State: state,
	}

	if g.piece != nil {
		snap.PieceType = g.piece.Type.String()
		snap.PiecePos = g.piece.Pos.Key()
		snap.PieceRotation = g.piece.Rotation
		snap.PieceSpecial = g.piece.Special.String()
	}
	if g.next != nil {
		snap.NextType = g.next.Type.String()
	}

	return snap
}

// GridFromSnapshot rebuilds a grid from snapshot cells. Used by replay
// tooling and tests; unknown special names map to plain filled cells.
func GridFromSnapshot(f *Field, cells map[string]SnapshotCell) Grid {
	g := NewGrid(f)
	for key, sc := range cells {
		a := hex.ParseKey(key)
		if !f.Contains(a) {
			continue
		}
		cell := Cell{Filled: true, Color: sc.Color, FrozenCleared: sc.FrozenCleared}
		switch sc.Special {
		case SpecialBomb.String():
			cell.Special = SpecialBomb
		case SpecialMultiplier.String():
			cell.Special = SpecialMultiplier
		case SpecialFrozen.String():
			cell.Special = SpecialFrozen
		}
		g[a] = cell
	}
	return g
}
