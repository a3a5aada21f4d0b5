package hexfall

import (
	"testing"

	"github.com/nlebedev/hexfall/internal/hex"
)

func fillAxial(g Grid, cells ...hex.Axial) Grid {
	out := g.Clone()
	for _, a := range cells {
		out[a] = Cell{Filled: true}
	}
	return out
}

func TestDetectDiagonalRightLine(t *testing.T) {
	f := NewFieldSize(3, 3)
	// The r=1 line in a 3x3 field: (0,1), (1,1), (2,1).
	g := fillAxial(NewGrid(f), hex.A(0, 1), hex.A(1, 1), hex.A(2, 1))

	lines := DetectLines(g, f)
	if len(lines) != 1 {
		t.Fatalf("detected %d lines, want 1", len(lines))
	}
	if lines[0].Direction != DiagonalRight || lines[0].Constant != 1 {
		t.Errorf("detected %v line with constant %d, want diagonal-right 1",
			lines[0].Direction, lines[0].Constant)
	}
	if len(lines[0].Cells) != 3 {
		t.Errorf("line has %d cells, want 3", len(lines[0].Cells))
	}
}

func TestDetectDiagonalLeftLine(t *testing.T) {
	f := NewFieldSize(3, 3)
	// The q+r=2 line: (0,2), (1,1), (2,0).
	g := fillAxial(NewGrid(f), hex.A(0, 2), hex.A(1, 1), hex.A(2, 0))

	lines := DetectLines(g, f)
	if len(lines) != 1 {
		t.Fatalf("detected %d lines, want 1", len(lines))
	}
	if lines[0].Direction != DiagonalLeft || lines[0].Constant != 2 {
		t.Errorf("detected %v line with constant %d, want diagonal-left 2",
			lines[0].Direction, lines[0].Constant)
	}
}

func TestDetectIncompleteLine(t *testing.T) {
	f := NewFieldSize(3, 3)
	g := fillAxial(NewGrid(f), hex.A(0, 1), hex.A(1, 1))

	if lines := DetectLines(g, f); len(lines) != 0 {
		t.Errorf("detected %d lines on an incomplete fill, want 0", len(lines))
	}
}

func TestClearLinesRemovesBatch(t *testing.T) {
	f := NewFieldSize(3, 3)
	g := fillAxial(NewGrid(f), hex.A(0, 1), hex.A(1, 1), hex.A(2, 1), hex.A(0, 2))

	lines := DetectLines(g, f)
	res := ClearLines(g, f, lines)

	if len(res.Removed) != 3 {
		t.Errorf("removed %d cells, want 3", len(res.Removed))
	}
	if res.Grid.Filled(hex.A(0, 1)) || res.Grid.Filled(hex.A(1, 1)) || res.Grid.Filled(hex.A(2, 1)) {
		t.Error("line cells should be removed")
	}
	if !res.Grid.Filled(hex.A(0, 2)) {
		t.Error("cell outside the batch should survive")
	}
	if res.HasMultiplier {
		t.Error("no multiplier participated")
	}
}

func TestFrozenCellAbsorbsFirstClear(t *testing.T) {
	f := NewFieldSize(3, 3)
	g := fillAxial(NewGrid(f), hex.A(0, 1), hex.A(2, 1))
	g[hex.A(1, 1)] = Cell{Filled: true, Special: SpecialFrozen}

	lines := DetectLines(g, f)
	if len(lines) != 1 {
		t.Fatalf("detected %d lines, want 1", len(lines))
	}
	res := ClearLines(g, f, lines)

	cell := res.Grid[hex.A(1, 1)]
	if !cell.Filled {
		t.Fatal("frozen cell should survive its first clear")
	}
	if cell.Special != SpecialNone || !cell.FrozenCleared {
		t.Errorf("frozen cell after first clear: %+v", cell)
	}
	if len(res.Removed) != 2 {
		t.Errorf("removed %d cells, want 2", len(res.Removed))
	}

	// The second completed line removes the frozen-cleared cell.
	again := fillAxial(res.Grid, hex.A(0, 1), hex.A(2, 1))
	res2 := ClearLines(again, f, DetectLines(again, f))
	if res2.Grid.Filled(hex.A(1, 1)) {
		t.Error("frozen-cleared cell should be removed on the second clear")
	}
}

func TestBombDestroysFilledNeighbors(t *testing.T) {
	f := NewFieldSize(3, 4)
	// Extras at (1,0) and (2,0) are neighbors of the bomb at (1,1);
	// (0,3) is not adjacent to it.
	g := fillAxial(NewGrid(f), hex.A(0, 1), hex.A(2, 1), hex.A(1, 0), hex.A(2, 0), hex.A(0, 3))
	g[hex.A(1, 1)] = Cell{Filled: true, Special: SpecialBomb}

	lines := DetectLines(g, f)
	if len(lines) != 1 {
		t.Fatalf("detected %d lines, want 1", len(lines))
	}
	res := ClearLines(g, f, lines)

	if len(res.Exploded) != 2 {
		t.Fatalf("exploded %d cells, want 2", len(res.Exploded))
	}
	if res.Grid.Filled(hex.A(1, 0)) || res.Grid.Filled(hex.A(2, 0)) {
		t.Error("bomb should destroy filled neighbors")
	}
	if !res.Grid.Filled(hex.A(0, 3)) {
		t.Error("bomb must not reach non-adjacent cells")
	}
}

func TestMultiplierParticipationRecorded(t *testing.T) {
	f := NewFieldSize(3, 3)
	g := fillAxial(NewGrid(f), hex.A(1, 1), hex.A(2, 1))
	g[hex.A(0, 1)] = Cell{Filled: true, Special: SpecialMultiplier}

	res := ClearLines(g, f, DetectLines(g, f))
	if !res.HasMultiplier {
		t.Error("multiplier participation should be recorded")
	}
	if res.Grid.Filled(hex.A(0, 1)) {
		t.Error("multiplier cell is removed like a normal cell")
	}
}

func TestResolveCascadeChains(t *testing.T) {
	f := NewFieldSize(3, 4)
	// Stage 1 clears the r=2 line; the cell at (1,1) then falls to the
	// bottom of column 1 and completes the short r=3 line with (0,3).
	g := fillAxial(NewGrid(f),
		hex.A(0, 2), hex.A(1, 2), hex.A(2, 2), // r=2 line
		hex.A(1, 1), // falls after the clear
		hex.A(0, 3), // waits for a partner on r=3
	)

	stages := ResolveCascade(g, f, nil)
	if len(stages) != 2 {
		t.Fatalf("cascade produced %d stages, want 2", len(stages))
	}

	if len(stages[0].Lines) != 1 || stages[0].Lines[0].Constant != 2 {
		t.Errorf("stage 1 cleared %v", stages[0].Lines)
	}
	if len(stages[0].Frames) != 2 {
		t.Errorf("stage 1 gravity produced %d frames, want 2", len(stages[0].Frames))
	}

	if len(stages[1].Lines) != 1 || stages[1].Lines[0].Constant != 3 {
		t.Errorf("stage 2 cleared %v", stages[1].Lines)
	}
	if stages[1].Settled.CountFilled() != 0 {
		t.Errorf("final grid has %d filled cells, want 0", stages[1].Settled.CountFilled())
	}
}

func TestResolveCascadeNoLines(t *testing.T) {
	f := NewFieldSize(3, 3)
	g := fillAxial(NewGrid(f), hex.A(0, 2), hex.A(1, 2))

	if stages := ResolveCascade(g, f, nil); len(stages) != 0 {
		t.Errorf("cascade on a line-free grid produced %d stages", len(stages))
	}
}

func TestResolveCascadeAfterSettleHook(t *testing.T) {
	f := NewFieldSize(3, 3)
	g := fillAxial(NewGrid(f), hex.A(0, 1), hex.A(1, 1), hex.A(2, 1), hex.A(1, 0))

	calls := 0
	stages := ResolveCascade(g, f, func(gr Grid) Grid {
		calls++
		return gr
	})

	if len(stages) != 1 {
		t.Fatalf("cascade produced %d stages, want 1", len(stages))
	}
	if calls != 1 {
		t.Errorf("after-settle hook ran %d times, want 1", calls)
	}
}
