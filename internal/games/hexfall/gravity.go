package hexfall

import (
	"sort"

	"github.com/nlebedev/hexfall/internal/hex"
)

// GroundedCells classifies every filled cell as grounded or floating.
// A cell is grounded if there is no field cell below it, or if the cell
// directly below is a grounded filled cell. Support propagates strictly
// vertically; adjacency in other directions confers nothing.
func GroundedCells(g Grid, f *Field) map[hex.Axial]bool {
	grounded := make(map[hex.Axial]bool)

	for c := 0; c < f.Columns(); c++ {
		// Walk each column bottom-up; belowOK tracks whether the cell
		// below the current one is the floor or a grounded filled cell.
		belowOK := true
		for k := f.Rows() - 1; k >= 0; k-- {
			a := CellAt(c, k)
			if g.Filled(a) && belowOK {
				grounded[a] = true
				continue
			}
			belowOK = false
		}
	}

	return grounded
}

// ApplyGravityStep is the canonical per-tick physics rule: every
// floating cell attempts to move down by exactly one row
// simultaneously. Ties are broken by resolving bottom-most cells first,
// so a lower block is never passed through by one above it in the same
// step. Reports whether any cell moved.
func ApplyGravityStep(g Grid, f *Field) (Grid, bool) {
	grounded := GroundedCells(g, f)

	next := NewGrid(f)
	var floating []hex.Axial
	for _, a := range f.Cells() {
		if !g.Filled(a) {
			continue
		}
		if grounded[a] {
			next[a] = g[a]
		} else {
			floating = append(floating, a)
		}
	}

	// Bottom-most first; column order only matters for determinism.
	sort.Slice(floating, func(i, j int) bool {
		ri, rj := RowOf(floating[i]), RowOf(floating[j])
		if ri != rj {
			return ri > rj
		}
		return floating[i].Q < floating[j].Q
	})

	moved := false
	for _, a := range floating {
		target := hex.Axial{Q: a.Q, R: a.R + 1}
		if f.Contains(target) && !next.Filled(target) {
			next[target] = g[a]
			moved = true
		} else {
			next[a] = g[a]
		}
	}

	return next, moved
}

// SettleGrid steps gravity until nothing moves, returning the settled
// grid and the ordered intermediate frames. The frames exist for
// animation playback only; gameplay correctness depends solely on the
// settled grid.
func SettleGrid(g Grid, f *Field) (Grid, []Grid) {
	var frames []Grid
	cur := g
	for {
		next, moved := ApplyGravityStep(cur, f)
		if !moved {
			return cur, frames
		}
		frames = append(frames, next)
		cur = next
	}
}
