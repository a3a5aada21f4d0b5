package hexfall

import (
	"testing"
)

func fillCells(g Grid, cells ...[2]int) Grid {
	out := g.Clone()
	for _, ck := range cells {
		out[CellAt(ck[0], ck[1])] = Cell{Filled: true}
	}
	return out
}

func TestGroundedCells(t *testing.T) {
	f := NewFieldSize(5, 6)
	g := NewGrid(f)

	// Bottom cell, a supported cell above it, and a floating cell with a
	// gap underneath.
	g = fillCells(g, [2]int{2, 5}, [2]int{2, 4}, [2]int{2, 1})

	grounded := GroundedCells(g, f)
	if !grounded[CellAt(2, 5)] {
		t.Error("bottom cell should be grounded")
	}
	if !grounded[CellAt(2, 4)] {
		t.Error("cell resting on a grounded cell should be grounded")
	}
	if grounded[CellAt(2, 1)] {
		t.Error("cell above a gap should be floating")
	}
}

func TestGroundedSupportIsStrictlyVertical(t *testing.T) {
	f := NewFieldSize(5, 6)
	g := NewGrid(f)

	// A grounded stack in column 1 does not support a column 2 cell,
	// whatever the hex adjacency says.
	g = fillCells(g, [2]int{1, 5}, [2]int{1, 4}, [2]int{2, 4})

	grounded := GroundedCells(g, f)
	if grounded[CellAt(2, 4)] {
		t.Error("diagonal adjacency must not confer grounded status")
	}
}

func TestSettleSingleCell(t *testing.T) {
	f := NewFieldSize(5, 6)
	g := fillCells(NewGrid(f), [2]int{2, 0})

	settled, frames := SettleGrid(g, f)

	if !settled.Filled(CellAt(2, 5)) {
		t.Error("cell should settle on the floor")
	}
	if settled.CountFilled() != 1 {
		t.Errorf("settled grid has %d filled cells, want 1", settled.CountFilled())
	}
	if len(frames) != 5 {
		t.Errorf("settling produced %d frames, want 5", len(frames))
	}
}

func TestSettleStacks(t *testing.T) {
	f := NewFieldSize(5, 6)
	g := fillCells(NewGrid(f), [2]int{2, 5}, [2]int{2, 0})

	settled, _ := SettleGrid(g, f)

	if !settled.Filled(CellAt(2, 5)) || !settled.Filled(CellAt(2, 4)) {
		t.Error("falling cell should stack on the grounded cell")
	}
	if settled.CountFilled() != 2 {
		t.Errorf("settled grid has %d filled cells, want 2", settled.CountFilled())
	}
}

func TestGravityStepMovesConnectedColumn(t *testing.T) {
	f := NewFieldSize(5, 6)
	// Two floating cells stacked mid-air fall together, preserving
	// adjacency within one step.
	g := fillCells(NewGrid(f), [2]int{2, 2}, [2]int{2, 3})

	next, moved := ApplyGravityStep(g, f)
	if !moved {
		t.Fatal("floating cells should move")
	}
	if !next.Filled(CellAt(2, 3)) || !next.Filled(CellAt(2, 4)) {
		t.Error("stacked floating cells should both move down one row")
	}
	if next.CountFilled() != 2 {
		t.Errorf("gravity step changed cell count to %d", next.CountFilled())
	}
}

func TestGravityIdempotentOnSettledGrid(t *testing.T) {
	f := NewFieldSize(5, 6)
	g := fillCells(NewGrid(f), [2]int{0, 5}, [2]int{0, 4}, [2]int{3, 5})

	settled, frames := SettleGrid(g, f)
	if len(frames) != 0 {
		t.Errorf("already settled grid produced %d frames", len(frames))
	}

	if _, moved := ApplyGravityStep(settled, f); moved {
		t.Error("gravity step on a settled grid reported movement")
	}
}

func TestGravityPreservesCellState(t *testing.T) {
	f := NewFieldSize(5, 6)
	g := NewGrid(f)
	g[CellAt(2, 0)] = Cell{Filled: true, Special: SpecialBomb}

	settled, _ := SettleGrid(g, f)
	cell := settled[CellAt(2, 5)]
	if !cell.Filled || cell.Special != SpecialBomb {
		t.Errorf("falling cell lost its state: %+v", cell)
	}
}
