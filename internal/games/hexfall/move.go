package hexfall

import (
	"github.com/nlebedev/hexfall/internal/hex"
)

// Movement primitives build a candidate piece and accept it only if it
// fits; otherwise they report a rejection (second return false), never
// an error.

// accept returns the candidate if it fits, else nil/false.
func accept(candidate *Piece, g Grid, f *Field) (*Piece, bool) {
	if ValidPosition(candidate, g, f) {
		return candidate, true
	}
	return nil, false
}

// MoveDown moves the piece one row down.
func MoveDown(p *Piece, g Grid, f *Field) (*Piece, bool) {
	return accept(p.translated(hex.Axial{Q: 0, R: 1}), g, f)
}

// horizontalDelta computes the axial delta for a one-column shift that
// preserves the piece origin's visual row under the column-skew
// encoding: the r compensation (0 or +/-1) depends on the destination
// column's parity.
func horizontalDelta(from hex.Axial, dq int) hex.Axial {
	newQ := from.Q + dq
	return hex.Axial{Q: dq, R: floorDiv(from.Q, 2) - floorDiv(newQ, 2)}
}

// MoveLeft moves the piece one column left on the same visual row.
func MoveLeft(p *Piece, g Grid, f *Field) (*Piece, bool) {
	return accept(p.translated(horizontalDelta(p.Pos, -1)), g, f)
}

// MoveRight moves the piece one column right on the same visual row.
func MoveRight(p *Piece, g Grid, f *Field) (*Piece, bool) {
	return accept(p.translated(horizontalDelta(p.Pos, 1)), g, f)
}

// MoveDownLeft moves the piece one column left and one row down in a
// single step. Only offered while the piece is in lock delay, to let it
// tuck under an overhang.
func MoveDownLeft(p *Piece, g Grid, f *Field) (*Piece, bool) {
	d := horizontalDelta(p.Pos, -1)
	d.R++
	return accept(p.translated(d), g, f)
}

// MoveDownRight moves the piece one column right and one row down in a
// single step.
func MoveDownRight(p *Piece, g Grid, f *Field) (*Piece, bool) {
	d := horizontalDelta(p.Pos, 1)
	d.R++
	return accept(p.translated(d), g, f)
}

// HardDrop teleports the piece to the lowest position reachable by
// repeated downward moves. The same path computes the ghost-piece
// preview. The returned piece equals the input when no drop is
// possible.
func HardDrop(p *Piece, g Grid, f *Field) *Piece {
	cur := p
	for {
		next, ok := MoveDown(cur, g, f)
		if !ok {
			return cur
		}
		cur = next
	}
}

// RotateWithKick rotates the piece one state clockwise. When the
// in-place rotation is blocked it tries each of the six unit-neighbor
// offsets in fixed order, then a one-row-down shift; if everything is
// blocked the rotation is rejected.
func RotateWithKick(p *Piece, g Grid, f *Field) (*Piece, bool) {
	rotated := p.rotated()
	if out, ok := accept(rotated, g, f); ok {
		return out, true
	}
	for _, d := range hex.Directions {
		if out, ok := accept(rotated.translated(d), g, f); ok {
			return out, true
		}
	}
	return accept(rotated.translated(hex.Axial{Q: 0, R: 1}), g, f)
}
