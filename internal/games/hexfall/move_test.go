package hexfall

import (
	"testing"
	"time"
)

func TestCheckPosition(t *testing.T) {
	f := NewField()
	g := NewGrid(f)

	p := NewPiece(PieceI, CellAt(5, 2))
	if got := CheckPosition(p, g, f); got != RejectionNone {
		t.Errorf("open position rejected: %v", got)
	}

	// Topmost offset pokes above the field.
	top := NewPiece(PieceI, CellAt(5, 0))
	if got := CheckPosition(top, g, f); got != RejectionOutOfBounds {
		t.Errorf("out-of-bounds position = %v, want %v", got, RejectionOutOfBounds)
	}

	occupied := g.Clone()
	occupied[CellAt(5, 2)] = Cell{Filled: true}
	if got := CheckPosition(p, occupied, f); got != RejectionOverlap {
		t.Errorf("overlapping position = %v, want %v", got, RejectionOverlap)
	}
}

func TestHorizontalMovePreservesRow(t *testing.T) {
	f := NewField()
	g := NewGrid(f)

	// The parallelogram reaches one column right of its origin, so stop
	// a column short of the wall.
	for col := 1; col < FieldColumns-2; col++ {
		p := NewPiece(PieceO, CellAt(col, 5))

		right, ok := MoveRight(p, g, f)
		if !ok {
			t.Fatalf("MoveRight from column %d rejected", col)
		}
		if ColumnOf(right.Pos) != col+1 || RowOf(right.Pos) != 5 {
			t.Errorf("MoveRight from column %d: origin at column %d row %d, want column %d row 5",
				col, ColumnOf(right.Pos), RowOf(right.Pos), col+1)
		}

		left, ok := MoveLeft(p, g, f)
		if !ok {
			t.Fatalf("MoveLeft from column %d rejected", col)
		}
		if ColumnOf(left.Pos) != col-1 || RowOf(left.Pos) != 5 {
			t.Errorf("MoveLeft from column %d: origin at column %d row %d, want column %d row 5",
				col, ColumnOf(left.Pos), RowOf(left.Pos), col-1)
		}
	}
}

func TestMoveRejectedAtWall(t *testing.T) {
	f := NewField()
	g := NewGrid(f)

	p := NewPiece(PieceI, CellAt(0, 5))
	if _, ok := MoveLeft(p, g, f); ok {
		t.Error("MoveLeft at the left wall should be rejected")
	}

	p = NewPiece(PieceI, CellAt(FieldColumns-1, 5))
	if _, ok := MoveRight(p, g, f); ok {
		t.Error("MoveRight at the right wall should be rejected")
	}
}

func TestMoveDown(t *testing.T) {
	f := NewField()
	g := NewGrid(f)

	p := NewPiece(PieceI, CellAt(5, 5))
	next, ok := MoveDown(p, g, f)
	if !ok {
		t.Fatal("MoveDown in open space rejected")
	}
	if RowOf(next.Pos) != 6 || ColumnOf(next.Pos) != 5 {
		t.Errorf("MoveDown: origin at column %d row %d, want column 5 row 6",
			ColumnOf(next.Pos), RowOf(next.Pos))
	}

	// Blocked by a filled cell directly below the bottom offset.
	blocked := g.Clone()
	blocked[CellAt(5, 8)] = Cell{Filled: true} // bottom cell is at row 7
	if _, ok := MoveDown(p, blocked, f); ok {
		t.Error("MoveDown into a filled cell should be rejected")
	}
}

func TestDiagonalTuckMoves(t *testing.T) {
	f := NewField()
	g := NewGrid(f)

	p := NewPiece(PieceO, CellAt(5, 5))

	dl, ok := MoveDownLeft(p, g, f)
	if !ok {
		t.Fatal("MoveDownLeft in open space rejected")
	}
	if ColumnOf(dl.Pos) != 4 || RowOf(dl.Pos) != 6 {
		t.Errorf("MoveDownLeft: origin at column %d row %d, want column 4 row 6",
			ColumnOf(dl.Pos), RowOf(dl.Pos))
	}

	dr, ok := MoveDownRight(p, g, f)
	if !ok {
		t.Fatal("MoveDownRight in open space rejected")
	}
	if ColumnOf(dr.Pos) != 6 || RowOf(dr.Pos) != 6 {
		t.Errorf("MoveDownRight: origin at column %d row %d, want column 6 row 6",
			ColumnOf(dr.Pos), RowOf(dr.Pos))
	}
}

func TestHardDropLandsOnFloor(t *testing.T) {
	f := NewField()
	g := NewGrid(f)

	p := NewPiece(PieceI, CellAt(5, 2))
	dropped := HardDrop(p, g, f)

	bottom := RowOf(dropped.Cells()[0])
	for _, a := range dropped.Cells()[1:] {
		if r := RowOf(a); r > bottom {
			bottom = r
		}
	}
	if bottom != FieldRows-1 {
		t.Errorf("hard drop bottom row = %d, want %d", bottom, FieldRows-1)
	}
	if !ValidPosition(dropped, g, f) {
		t.Error("hard drop result must be a valid position")
	}
	if _, ok := MoveDown(dropped, g, f); ok {
		t.Error("hard drop result must not be able to fall further")
	}
}

func TestHardDropOntoStack(t *testing.T) {
	f := NewField()
	g := NewGrid(f)
	// A one-cell stack in the drop column.
	g[CellAt(5, FieldRows-1)] = Cell{Filled: true}

	p := NewPiece(PieceI, CellAt(5, 2))
	dropped := HardDrop(p, g, f)

	bottom := 0
	for _, a := range dropped.Cells() {
		if r := RowOf(a); r > bottom {
			bottom = r
		}
	}
	if bottom != FieldRows-2 {
		t.Errorf("hard drop onto stack: bottom row = %d, want %d", bottom, FieldRows-2)
	}
}

func TestRotateWithKickOpenSpace(t *testing.T) {
	f := NewField()
	g := NewGrid(f)

	p := NewPiece(PieceL, CellAt(5, 10))
	rotated, ok := RotateWithKick(p, g, f)
	if !ok {
		t.Fatal("rotation in open space rejected")
	}
	if rotated.Rotation != p.Rotation+1 {
		t.Errorf("rotation counter = %d, want %d", rotated.Rotation, p.Rotation+1)
	}
}

func TestRotateWithKickRejectedWhenBoxedIn(t *testing.T) {
	// A one-column field can hold a vertical bar but no rotation of it,
	// even with every kick offset.
	f := NewFieldSize(1, 8)
	g := NewGrid(f)

	p := NewPiece(PieceI, CellAt(0, 3))
	if !ValidPosition(p, g, f) {
		t.Fatal("vertical bar should fit in a one-column field")
	}
	if _, ok := RotateWithKick(p, g, f); ok {
		t.Error("rotation in a one-column field should be rejected")
	}
}

func TestLockStateMachine(t *testing.T) {
	var s LockState

	s = s.Grounded(100 * time.Millisecond)
	if !s.Locking || s.Since != 100*time.Millisecond {
		t.Fatalf("after Grounded: %+v", s)
	}

	// Later grounded ticks keep the running timer.
	s = s.Grounded(300 * time.Millisecond)
	if s.Since != 100*time.Millisecond {
		t.Errorf("second Grounded restarted the timer: %+v", s)
	}

	if s.Expired(400*time.Millisecond, 500*time.Millisecond) {
		t.Error("timer expired early")
	}
	if !s.Expired(600*time.Millisecond, 500*time.Millisecond) {
		t.Error("timer should expire after the delay")
	}

	// A successful move grants fresh tuck time.
	s = s.Restarted(550 * time.Millisecond)
	if s.Expired(600*time.Millisecond, 500*time.Millisecond) {
		t.Error("restarted timer expired early")
	}

	s = s.Released()
	if s.Locking {
		t.Error("Released should clear the locking state")
	}
	if s.Expired(time.Hour, 0) {
		t.Error("a free piece never expires")
	}
}
