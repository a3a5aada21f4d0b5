package hexfall

import (
	"github.com/nlebedev/hexfall/internal/core"
	"github.com/nlebedev/hexfall/internal/hex"
)

// Special identifies the effect attached to a filled cell.
type Special uint8

const (
	SpecialNone Special = iota
	SpecialBomb
	SpecialMultiplier
	SpecialFrozen
)

// String returns a human-readable name for the special type.
func (s Special) String() string {
	switch s {
	case SpecialNone:
		return "none"
	case SpecialBomb:
		return "bomb"
	case SpecialMultiplier:
		return "multiplier"
	case SpecialFrozen:
		return "frozen"
	default:
		return "unknown"
	}
}

// Cell is the state of a single playfield coordinate. The zero value
// is an empty cell.
type Cell struct {
	Filled  bool
	Color   core.Color
	Special Special

	// FrozenCleared marks a former frozen cell that has absorbed one
	// clear and now needs a second clear to be removed.
	FrozenCleared bool

	// Clearing is a transient animation hint (the number of lines in
	// the current clear batch). It is set on display copies only and
	// never participates in gameplay decisions.
	Clearing int
}

// Grid maps every playfield coordinate to its cell state. A Grid's key
// set always equals the Field's coordinate set. Grids are treated as
// immutable values: every engine transition clones before writing.
type Grid map[hex.Axial]Cell

// NewGrid creates an all-empty grid covering the field.
func NewGrid(f *Field) Grid {
	g := make(Grid, len(f.Cells()))
	for _, a := range f.Cells() {
		g[a] = Cell{}
	}
	return g
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for a, c := range g {
		out[a] = c
	}
	return out
}

// Filled reports whether the cell at the coordinate is filled.
func (g Grid) Filled(a hex.Axial) bool {
	return g[a].Filled
}

// CountFilled returns the number of filled cells.
func (g Grid) CountFilled() int {
	n := 0
	for _, c := range g {
		if c.Filled {
			n++
		}
	}
	return n
}

// WithClearing returns a copy of the grid with the clearing hint set on
// the given cells. Used by the playback layer before re-render.
func (g Grid) WithClearing(cells []hex.Axial, lineCount int) Grid {
	out := g.Clone()
	for _, a := range cells {
		c := out[a]
		c.Clearing = lineCount
		out[a] = c
	}
	return out
}
