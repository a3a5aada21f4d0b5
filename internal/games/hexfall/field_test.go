package hexfall

import (
	"testing"

	"github.com/nlebedev/hexfall/internal/hex"
)

func TestCellAtRowOfRoundTrip(t *testing.T) {
	for c := 0; c < FieldColumns; c++ {
		for k := 0; k < FieldRows; k++ {
			a := CellAt(c, k)
			if RowOf(a) != k {
				t.Errorf("RowOf(CellAt(%d, %d)) = %d, want %d", c, k, RowOf(a), k)
			}
			if ColumnOf(a) != c {
				t.Errorf("ColumnOf(CellAt(%d, %d)) = %d, want %d", c, k, ColumnOf(a), c)
			}
		}
	}
}

func TestFieldContains(t *testing.T) {
	f := NewField()

	if got := len(f.Cells()); got != FieldColumns*FieldRows {
		t.Fatalf("field has %d cells, want %d", got, FieldColumns*FieldRows)
	}

	for c := 0; c < FieldColumns; c++ {
		for k := 0; k < FieldRows; k++ {
			if !f.Contains(CellAt(c, k)) {
				t.Errorf("field should contain column %d row %d", c, k)
			}
		}
	}

	outside := []hex.Axial{
		CellAt(-1, 0),
		CellAt(FieldColumns, 0),
		CellAt(0, -1),
		CellAt(0, FieldRows),
		CellAt(5, -1),
		CellAt(5, FieldRows),
	}
	for _, a := range outside {
		if f.Contains(a) {
			t.Errorf("field should not contain %v", a)
		}
	}
}

func TestFieldSpawnPosition(t *testing.T) {
	f := NewField()
	want := CellAt(FieldColumns/2, SpawnRow)
	if got := f.SpawnPosition(); got != want {
		t.Errorf("SpawnPosition() = %v, want %v", got, want)
	}
	if !f.Contains(f.SpawnPosition()) {
		t.Error("spawn position must be inside the field")
	}
}

func TestFieldLineFamilies(t *testing.T) {
	f := NewField()

	// Every cell belongs to exactly one line per family, and the
	// families partition the field.
	rightTotal, leftTotal := 0, 0
	for _, cells := range f.rightLines {
		rightTotal += len(cells)
	}
	for _, cells := range f.leftLines {
		leftTotal += len(cells)
	}

	if rightTotal != len(f.Cells()) {
		t.Errorf("diagonal-right lines cover %d cells, want %d", rightTotal, len(f.Cells()))
	}
	if leftTotal != len(f.Cells()) {
		t.Errorf("diagonal-left lines cover %d cells, want %d", leftTotal, len(f.Cells()))
	}

	for constant, cells := range f.rightLines {
		for _, a := range cells {
			if a.R != constant {
				t.Errorf("cell %v in diagonal-right line %d has r = %d", a, constant, a.R)
			}
		}
	}
	for constant, cells := range f.leftLines {
		for _, a := range cells {
			if a.Q+a.R != constant {
				t.Errorf("cell %v in diagonal-left line %d has q+r = %d", a, constant, a.Q+a.R)
			}
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{4, 2, 2},
		{5, 2, 2},
		{0, 2, 0},
		{-1, 2, -1},
		{-2, 2, -1},
		{-3, 2, -2},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
