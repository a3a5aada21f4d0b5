package hexfall

import (
	"github.com/nlebedev/hexfall/internal/core"
	"github.com/nlebedev/hexfall/internal/hex"
)

// PieceType identifies one of the ten one-sided tetrahexes.
type PieceType uint8

const (
	PieceI PieceType = iota // straight bar
	PieceO                  // parallelogram block
	PieceS                  // right-leaning zigzag
	PieceZ                  // left-leaning zigzag
	PieceL                  // bar with a foot, right
	PieceJ                  // bar with a foot, left
	PieceY                  // propeller
	PieceU                  // ring around an empty center
	PieceP                  // pistol, right
	PieceQ                  // pistol, left

	pieceTypeCount
)

// String returns the single-letter name of the piece type.
func (t PieceType) String() string {
	if int(t) < len(pieceCatalog) {
		return pieceCatalog[t].Name
	}
	return "?"
}

// PieceMeta is the immutable per-type metadata row.
type PieceMeta struct {
	Name string

	// Shape holds the cell offsets from the piece origin. Three
	// offsets for pieces whose origin cell is itself occupied, four
	// for the ring-shaped U piece whose cells orbit an empty center.
	Shape []hex.Axial

	// HasCenter reports whether the origin cell is part of the piece.
	HasCenter bool

	// RotationStates is 3 for pieces with 180-degree rotational
	// symmetry and 6 otherwise. A piece advances 6/RotationStates
	// clockwise 60-degree steps per state so that cycling through all
	// states always returns the exact original shape.
	RotationStates int

	Color       core.Color
	SpawnWeight int
}

// pieceCatalog enumerates every tetrahex. Offsets use the fixed
// neighbor directions N(0,-1) NE(1,-1) SE(1,0) S(0,1) SW(-1,1) NW(-1,0).
var pieceCatalog = [pieceTypeCount]PieceMeta{
	PieceI: {
		Name:           "I",
		Shape:          []hex.Axial{{Q: 0, R: -1}, {Q: 0, R: 1}, {Q: 0, R: 2}},
		HasCenter:      true,
		RotationStates: 3,
		Color:          core.ColorCyan,
		SpawnWeight:    10,
	},
	PieceO: {
		Name:           "O",
		Shape:          []hex.Axial{{Q: 1, R: -1}, {Q: 1, R: 0}, {Q: 0, R: 1}},
		HasCenter:      true,
		RotationStates: 3,
		Color:          core.ColorYellow,
		SpawnWeight:    10,
	},
	PieceS: {
		Name:           "S",
		Shape:          []hex.Axial{{Q: 0, R: -1}, {Q: 1, R: 0}, {Q: 1, R: 1}},
		HasCenter:      true,
		RotationStates: 3,
		Color:          core.ColorGreen,
		SpawnWeight:    10,
	},
	PieceZ: {
		Name:           "Z",
		Shape:          []hex.Axial{{Q: 0, R: -1}, {Q: -1, R: 0}, {Q: -1, R: 1}},
		HasCenter:      true,
		RotationStates: 3,
		Color:          core.ColorRed,
		SpawnWeight:    10,
	},
	PieceL: {
		Name:           "L",
		Shape:          []hex.Axial{{Q: 0, R: -1}, {Q: 0, R: 1}, {Q: 1, R: 1}},
		HasCenter:      true,
		RotationStates: 6,
		Color:          core.ColorOrange,
		SpawnWeight:    10,
	},
	PieceJ: {
		Name:           "J",
		Shape:          []hex.Axial{{Q: 0, R: -1}, {Q: 0, R: 1}, {Q: -1, R: 2}},
		HasCenter:      true,
		RotationStates: 6,
		Color:          core.ColorBlue,
		SpawnWeight:    10,
	},
	PieceY: {
		Name:           "Y",
		Shape:          []hex.Axial{{Q: 0, R: -1}, {Q: 1, R: 0}, {Q: -1, R: 1}},
		HasCenter:      true,
		RotationStates: 6,
		Color:          core.ColorMagenta,
		SpawnWeight:    8,
	},
	PieceU: {
		Name:           "U",
		Shape:          []hex.Axial{{Q: 0, R: -1}, {Q: 1, R: -1}, {Q: 1, R: 0}, {Q: 0, R: 1}},
		HasCenter:      false,
		RotationStates: 6,
		Color:          core.ColorBrightCyan,
		SpawnWeight:    6,
	},
	PieceP: {
		Name:           "P",
		Shape:          []hex.Axial{{Q: 1, R: -1}, {Q: 1, R: 0}, {Q: 1, R: 1}},
		HasCenter:      true,
		RotationStates: 6,
		Color:          core.ColorBrightGreen,
		SpawnWeight:    9,
	},
	PieceQ: {
		Name:           "Q",
		Shape:          []hex.Axial{{Q: -1, R: 0}, {Q: -1, R: 1}, {Q: -1, R: 2}},
		HasCenter:      true,
		RotationStates: 6,
		Color:          core.ColorBrightMagenta,
		SpawnWeight:    9,
	},
}

// Meta returns the metadata row for the type.
func (t PieceType) Meta() PieceMeta {
	return pieceCatalog[t]
}

// PieceTypes returns all piece types in catalog order.
func PieceTypes() []PieceType {
	out := make([]PieceType, pieceTypeCount)
	for i := range out {
		out[i] = PieceType(i)
	}
	return out
}

// Piece is a live falling piece. Pieces are replaced, never mutated:
// every successful move or rotation produces a new instance.
type Piece struct {
	Type     PieceType
	Shape    []hex.Axial
	Color    core.Color
	Pos      hex.Axial
	Rotation int
	Special  Special
}

// NewPiece creates a piece of the given type at the given origin.
func NewPiece(t PieceType, pos hex.Axial) *Piece {
	meta := t.Meta()
	shape := make([]hex.Axial, len(meta.Shape))
	copy(shape, meta.Shape)
	return &Piece{
		Type:  t,
		Shape: shape,
		Color: meta.Color,
		Pos:   pos,
	}
}

// clone returns a copy of the piece sharing the (never written) shape
// slice.
func (p *Piece) clone() *Piece {
	out := *p
	return &out
}

// rotationSteps reduces the unbounded rotation counter to concrete
// clockwise 60-degree steps for the piece's own state count.
func (p *Piece) rotationSteps() int {
	states := p.Type.Meta().RotationStates
	state := p.Rotation % states
	if state < 0 {
		state += states
	}
	return state * (6 / states)
}

// Cells returns the absolute coordinates occupied by the piece: the
// origin itself when the type has a center cell, plus the rotated shape
// offsets. The result always has exactly four cells.
func (p *Piece) Cells() []hex.Axial {
	meta := p.Type.Meta()
	steps := p.rotationSteps()

	cells := make([]hex.Axial, 0, 4)
	if meta.HasCenter {
		cells = append(cells, p.Pos)
	}
	for _, off := range p.Shape {
		cells = append(cells, p.Pos.Add(off.RotateSteps(steps)))
	}
	return cells
}

// translated returns a copy of the piece shifted by the given delta.
func (p *Piece) translated(d hex.Axial) *Piece {
	out := p.clone()
	out.Pos = p.Pos.Add(d)
	return out
}

// rotated returns a copy of the piece advanced by one rotation state.
func (p *Piece) rotated() *Piece {
	out := p.clone()
	out.Rotation = p.Rotation + 1
	return out
}

// TopRow returns the smallest visual row occupied by the piece.
func (p *Piece) TopRow() int {
	top := RowOf(p.Cells()[0])
	for _, c := range p.Cells()[1:] {
		if r := RowOf(c); r < top {
			top = r
		}
	}
	return top
}
