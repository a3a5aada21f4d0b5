package hexfall

import (
	"math/rand"

	"github.com/nlebedev/hexfall/internal/config"
	"github.com/nlebedev/hexfall/internal/hex"
)

// CountSpecials tallies the special cells currently on the field.
func CountSpecials(g Grid) map[Special]int {
	counts := make(map[Special]int)
	for _, c := range g {
		if c.Filled && c.Special != SpecialNone {
			counts[c.Special]++
		}
	}
	return counts
}

// PromoteSpecial promotes at most one eligible cell to a special type.
// Called after each gravity settle, whether from a lock or a cascade
// stage.
//
// Eligible cells are filled and not already special. Candidate types
// are the ones still under their max-on-field cap; the promotion
// chance is the sum of their level curves and the winning type is
// drawn proportionally to its own curve. When every type is at cap or
// no eligible cell exists, the grid is returned unchanged.
func PromoteSpecial(g Grid, f *Field, level int, cfg config.SpecialsConfig, rng *rand.Rand) (Grid, bool) {
	counts := CountSpecials(g)

	type candidate struct {
		special Special
		chance  float64
	}
	var candidates []candidate
	if counts[SpecialBomb] < cfg.Bomb.MaxOnField {
		candidates = append(candidates, candidate{SpecialBomb, cfg.Bomb.Chance(level)})
	}
	if counts[SpecialMultiplier] < cfg.Multiplier.MaxOnField {
		candidates = append(candidates, candidate{SpecialMultiplier, cfg.Multiplier.Chance(level)})
	}
	if counts[SpecialFrozen] < cfg.Frozen.MaxOnField {
		candidates = append(candidates, candidate{SpecialFrozen, cfg.Frozen.Chance(level)})
	}

	total := 0.0
	for _, c := range candidates {
		total += c.chance
	}
	if total <= 0 || rng.Float64() >= total {
		return g, false
	}

	var eligible []hex.Axial
	for _, a := range f.Cells() {
		cell := g[a]
		if cell.Filled && cell.Special == SpecialNone {
			eligible = append(eligible, a)
		}
	}
	if len(eligible) == 0 {
		return g, false
	}

	// Weighted lottery among under-cap types.
	pick := rng.Float64() * total
	chosen := candidates[len(candidates)-1].special
	for _, c := range candidates {
		if pick < c.chance {
			chosen = c.special
			break
		}
		pick -= c.chance
	}

	target := eligible[rng.Intn(len(eligible))]
	out := g.Clone()
	cell := out[target]
	cell.Special = chosen
	cell.FrozenCleared = false
	out[target] = cell
	return out, true
}

// RollPieceSpecial rolls the whole-piece special tag at spawn time.
// Only bomb and multiplier pieces exist; frozen is never rolled here.
func RollPieceSpecial(level int, cfg config.SpecialsConfig, rng *rand.Rand) Special {
	if rng.Float64() < cfg.BombPiece.Chance(level) {
		return SpecialBomb
	}
	if rng.Float64() < cfg.MultiplierPiece.Chance(level) {
		return SpecialMultiplier
	}
	return SpecialNone
}
