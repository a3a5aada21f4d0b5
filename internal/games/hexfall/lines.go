package hexfall

import (
	"sort"

	"github.com/nlebedev/hexfall/internal/hex"
)

// LineDirection identifies one of the two diagonal line families.
type LineDirection uint8

const (
	// DiagonalRight lines share a constant r.
	DiagonalRight LineDirection = iota
	// DiagonalLeft lines share a constant q+r.
	DiagonalLeft
)

// String returns a human-readable name for the direction.
func (d LineDirection) String() string {
	if d == DiagonalRight {
		return "diagonal-right"
	}
	return "diagonal-left"
}

// Line is the maximal set of field cells sharing one line constant.
type Line struct {
	Direction LineDirection
	Constant  int
	Cells     []hex.Axial
}

// DetectLines collects every complete line in both direction families.
// A line is complete iff every field cell sharing its constant is
// filled. Simultaneous completions across both families are all
// returned as one detection pass.
func DetectLines(g Grid, f *Field) []Line {
	var lines []Line
	lines = appendCompleteLines(lines, g, DiagonalRight, f.rightLines)
	lines = appendCompleteLines(lines, g, DiagonalLeft, f.leftLines)
	return lines
}

func appendCompleteLines(lines []Line, g Grid, dir LineDirection, family map[int][]hex.Axial) []Line {
	constants := make([]int, 0, len(family))
	for c := range family {
		constants = append(constants, c)
	}
	sort.Ints(constants)

	for _, c := range constants {
		cells := family[c]
		complete := true
		for _, a := range cells {
			if !g.Filled(a) {
				complete = false
				break
			}
		}
		if complete {
			lines = append(lines, Line{Direction: dir, Constant: c, Cells: cells})
		}
	}
	return lines
}

// lineCellUnion returns the distinct cells across a batch of lines in
// deterministic order.
func lineCellUnion(lines []Line) []hex.Axial {
	seen := make(map[hex.Axial]bool)
	var union []hex.Axial
	for _, ln := range lines {
		for _, a := range ln.Cells {
			if !seen[a] {
				seen[a] = true
				union = append(union, a)
			}
		}
	}
	return union
}

// ClearResult describes one batch clear.
type ClearResult struct {
	// Grid is the board after line removal and bomb explosions.
	Grid Grid

	// HasMultiplier reports whether a multiplier cell participated in
	// the batch.
	HasMultiplier bool

	// Removed lists the cells removed by line clearing itself.
	Removed []hex.Axial

	// Exploded lists the additional cells destroyed by bombs, reported
	// for animation purposes.
	Exploded []hex.Axial
}

// ClearLines removes a batch of completed lines.
//
// A frozen cell absorbs its first clear: it stays filled and is
// rewritten to a normal cell with FrozenCleared set. Every other cell
// in the batch, including already frozen-cleared cells, is removed.
// Bomb cells among the removed cells then destroy every field-adjacent
// filled neighbor in the grid after line removal.
func ClearLines(g Grid, f *Field, lines []Line) ClearResult {
	out := ClearResult{Grid: g.Clone()}

	var bombs []hex.Axial
	for _, a := range lineCellUnion(lines) {
		cell := out.Grid[a]
		if cell.Special == SpecialMultiplier {
			out.HasMultiplier = true
		}
		if cell.Special == SpecialFrozen {
			out.Grid[a] = Cell{Filled: true, Color: cell.Color, FrozenCleared: true}
			continue
		}
		if cell.Special == SpecialBomb {
			bombs = append(bombs, a)
		}
		out.Grid[a] = Cell{}
		out.Removed = append(out.Removed, a)
	}

	seen := make(map[hex.Axial]bool)
	for _, b := range bombs {
		for _, n := range b.Neighbors() {
			if !f.Contains(n) || !out.Grid.Filled(n) || seen[n] {
				continue
			}
			seen[n] = true
			out.Grid[n] = Cell{}
			out.Exploded = append(out.Exploded, n)
		}
	}

	return out
}

// ClearStage is one step of a possibly chained clear.
type ClearStage struct {
	// Lines are the completed lines detected at the start of the stage.
	Lines []Line

	// HasMultiplier reports whether a multiplier cell participated.
	HasMultiplier bool

	// Before is the grid the stage started from, used by playback to
	// flash the doomed cells.
	Before Grid

	// AfterClear is the grid after line removal and bomb explosions.
	AfterClear Grid

	// Exploded lists cells destroyed by bombs in this stage.
	Exploded []hex.Axial

	// Frames are the intermediate gravity frames, in order.
	Frames []Grid

	// Settled is the grid once gravity finished.
	Settled Grid
}

// ResolveCascade resolves a full chain of clears: detect lines, clear
// the batch, settle gravity, and repeat on the settled grid for as long
// as new complete lines appear. The returned stages are ordered; an
// empty result means nothing cleared.
//
// The optional afterSettle hook runs on each settled grid before the
// next detection pass (the special-cell promotion point). A nil hook
// keeps the resolution pure.
func ResolveCascade(g Grid, f *Field, afterSettle func(Grid) Grid) []ClearStage {
	var stages []ClearStage

	cur := g
	for {
		lines := DetectLines(cur, f)
		if len(lines) == 0 {
			return stages
		}

		res := ClearLines(cur, f, lines)
		settled, frames := SettleGrid(res.Grid, f)
		if afterSettle != nil {
			settled = afterSettle(settled)
		}

		stages = append(stages, ClearStage{
			Lines:         lines,
			HasMultiplier: res.HasMultiplier,
			Before:        cur,
			AfterClear:    res.Grid,
			Exploded:      res.Exploded,
			Frames:        frames,
			Settled:       settled,
		})
		cur = settled
	}
}
