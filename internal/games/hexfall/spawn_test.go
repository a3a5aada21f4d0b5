package hexfall

import (
	"math/rand"
	"testing"
)

func TestSpawnAlignsToSpawnRow(t *testing.T) {
	f := NewField()
	g := NewGrid(f)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		p := SpawnPiece(f, 1, rng, nil, nil)
		if got := p.TopRow(); got != SpawnRow {
			t.Fatalf("%s: spawn top row = %d, want %d", p.Type, got, SpawnRow)
		}
		if !ValidPosition(p, g, f) {
			t.Fatalf("%s: spawn position invalid on an empty field", p.Type)
		}
		if p.Special != SpecialNone {
			t.Fatalf("%s: nil specials config produced a %v piece", p.Type, p.Special)
		}
	}
}

func TestSpawnAvoidsRecentTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	recent := make([]PieceType, 0, int(pieceTypeCount)-1)
	for _, pt := range PieceTypes() {
		if pt != PieceY {
			recent = append(recent, pt)
		}
	}

	for i := 0; i < 50; i++ {
		if got := pickPieceType(rng, recent); got != PieceY {
			t.Fatalf("draw %d picked recently seen type %s", i, got)
		}
	}
}

func TestSpawnFallsBackWhenAllTypesRecent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	// Excluding everything must still yield a valid type.
	for i := 0; i < 50; i++ {
		got := pickPieceType(rng, PieceTypes())
		if got >= pieceTypeCount {
			t.Fatalf("fallback draw returned invalid type %d", got)
		}
	}
}

func TestWeightedDrawDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	counts := make(map[PieceType]int)
	for i := 0; i < 5000; i++ {
		pt, ok := weightedDraw(rng, nil)
		if !ok {
			t.Fatal("draw over the full catalog failed")
		}
		counts[pt]++
	}

	for _, pt := range PieceTypes() {
		if counts[pt] == 0 {
			t.Errorf("type %s never drawn in 5000 samples", pt)
		}
	}
	// The heaviest types should be drawn more often than the lightest.
	if counts[PieceI] <= counts[PieceU] {
		t.Errorf("weight 10 type drawn %d times, weight 6 type %d times",
			counts[PieceI], counts[PieceU])
	}
}
