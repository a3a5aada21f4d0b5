// Package hexfall implements a falling-block puzzle played on a
// hexagonal grid. The package is split into a pure engine (field, piece
// catalog, collision, movement, gravity, line clearing, special cells,
// scoring) and a stateful Game wrapper that drives it tick by tick.
package hexfall

import (
	"github.com/nlebedev/hexfall/internal/hex"
)

// Default playfield dimensions.
const (
	FieldColumns = 11
	FieldRows    = 20

	// SpawnRow is the visual row the topmost cell of a freshly spawned
	// piece is aligned to.
	SpawnRow = 0
)

// Field is the immutable set of valid playfield coordinates. Column c,
// row k maps to axial (q=c, r=k-floor(c/2)); the skew keeps columns
// visually vertical for flat-top hexagons. A Field is built once and
// never mutated.
type Field struct {
	cols int
	rows int

	cells   map[hex.Axial]struct{}
	ordered []hex.Axial // column-major, top to bottom

	// Precomputed line membership per direction family, keyed by the
	// line constant (r for diagonal-right, q+r for diagonal-left).
	rightLines map[int][]hex.Axial
	leftLines  map[int][]hex.Axial
}

// NewField creates the standard 11x20 playfield.
func NewField() *Field {
	return NewFieldSize(FieldColumns, FieldRows)
}

// NewFieldSize creates a playfield with the given dimensions.
// Smaller fields are used by tests.
func NewFieldSize(cols, rows int) *Field {
	f := &Field{
		cols:       cols,
		rows:       rows,
		cells:      make(map[hex.Axial]struct{}, cols*rows),
		ordered:    make([]hex.Axial, 0, cols*rows),
		rightLines: make(map[int][]hex.Axial),
		leftLines:  make(map[int][]hex.Axial),
	}

	for c := 0; c < cols; c++ {
		for k := 0; k < rows; k++ {
			a := CellAt(c, k)
			f.cells[a] = struct{}{}
			f.ordered = append(f.ordered, a)
			f.rightLines[a.R] = append(f.rightLines[a.R], a)
			f.leftLines[a.Q+a.R] = append(f.leftLines[a.Q+a.R], a)
		}
	}

	return f
}

// floorDiv divides a by b rounding toward negative infinity. b must be
// positive; piece cells can wander into negative columns during move
// candidates, so plain integer division is not enough.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// CellAt maps a (column, visual row) pair to its axial coordinate.
func CellAt(col, row int) hex.Axial {
	return hex.Axial{Q: col, R: row - floorDiv(col, 2)}
}

// RowOf returns the visual row of an axial coordinate under the
// column-skew encoding.
func RowOf(a hex.Axial) int {
	return a.R + floorDiv(a.Q, 2)
}

// ColumnOf returns the column of an axial coordinate.
func ColumnOf(a hex.Axial) int {
	return a.Q
}

// Contains reports whether the coordinate is part of the playfield.
func (f *Field) Contains(a hex.Axial) bool {
	_, ok := f.cells[a]
	return ok
}

// Columns returns the number of columns.
func (f *Field) Columns() int {
	return f.cols
}

// Rows returns the number of visual rows.
func (f *Field) Rows() int {
	return f.rows
}

// Cells returns every playfield coordinate in deterministic
// column-major order. Callers must not modify the returned slice.
func (f *Field) Cells() []hex.Axial {
	return f.ordered
}

// SpawnPosition returns the origin cell for freshly spawned pieces:
// the middle column at the spawn row.
func (f *Field) SpawnPosition() hex.Axial {
	return CellAt(f.cols/2, SpawnRow)
}
