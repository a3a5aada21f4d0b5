package hexfall

import (
	"math/rand"

	"github.com/nlebedev/hexfall/internal/config"
)

// SpawnPiece creates a new piece: a weighted random type draw that
// avoids recently seen types, aligned so the piece's topmost cell
// touches the spawn row, with an optional whole-piece special roll.
// Pass a nil specials config to disable special pieces entirely.
func SpawnPiece(f *Field, level int, rng *rand.Rand, recent []PieceType, specials *config.SpecialsConfig) *Piece {
	t := pickPieceType(rng, recent)
	p := NewPiece(t, f.SpawnPosition())

	// Shift down so the topmost cell sits exactly on the spawn row.
	p.Pos.R += SpawnRow - p.TopRow()

	if specials != nil {
		p.Special = RollPieceSpecial(level, *specials, rng)
	}
	return p
}

// pickPieceType draws a type by spawn weight, skipping non-positive
// weights and recently seen types. If the exclusions empty the pool the
// draw falls back to all weighted types, and finally to a uniform
// choice, so selection never fails.
func pickPieceType(rng *rand.Rand, recent []PieceType) PieceType {
	excluded := make(map[PieceType]bool, len(recent))
	for _, t := range recent {
		excluded[t] = true
	}

	if t, ok := weightedDraw(rng, excluded); ok {
		return t
	}
	if t, ok := weightedDraw(rng, nil); ok {
		return t
	}
	return PieceType(rng.Intn(int(pieceTypeCount)))
}

func weightedDraw(rng *rand.Rand, excluded map[PieceType]bool) (PieceType, bool) {
	total := 0
	for _, t := range PieceTypes() {
		if excluded[t] || t.Meta().SpawnWeight <= 0 {
			continue
		}
		total += t.Meta().SpawnWeight
	}
	if total <= 0 {
		return 0, false
	}

	pick := rng.Intn(total)
	for _, t := range PieceTypes() {
		if excluded[t] || t.Meta().SpawnWeight <= 0 {
			continue
		}
		pick -= t.Meta().SpawnWeight
		if pick < 0 {
			return t, true
		}
	}
	return 0, false
}
