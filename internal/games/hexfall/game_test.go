package hexfall

import (
	"reflect"
	"testing"

	"github.com/nlebedev/hexfall/internal/config"
	"github.com/nlebedev/hexfall/internal/core"
	"github.com/nlebedev/hexfall/internal/registry"
)

func testRuntimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistryRegistration(t *testing.T) {
	if !registry.Exists("hexfall") {
		t.Error("classic variant not registered")
	}
	if !registry.Exists("hexfall_pure") {
		t.Error("pure variant not registered")
	}
}

func TestGameIdentity(t *testing.T) {
	if New().ID() != "hexfall" || New().Title() != "Hexfall" {
		t.Error("classic identity mismatch")
	}
	if NewPure().ID() != "hexfall_pure" || NewPure().Title() != "Hexfall (Pure)" {
		t.Error("pure identity mismatch")
	}
}

func TestGameReset(t *testing.T) {
	SetDifficulty(config.DifficultyEasy)
	g := NewPure()
	g.Reset(testRuntimeConfig(42))

	state := g.State()
	if state.Score != 0 || state.GameOver || state.Paused {
		t.Errorf("fresh game state: %+v", state)
	}
	if g.piece == nil || g.next == nil {
		t.Fatal("fresh game must have an active piece and a preview")
	}
	if g.Level() != 1 {
		t.Errorf("easy preset start level = %d, want 1", g.Level())
	}
	if g.grid.CountFilled() != 0 {
		t.Error("fresh grid must be empty")
	}
}

func TestSoftDropMovesOneRow(t *testing.T) {
	SetDifficulty(config.DifficultyEasy)
	g := NewPure()
	g.Reset(testRuntimeConfig(42))

	before := RowOf(g.piece.Pos)
	g.Step(frame(core.ActionDown))
	if got := RowOf(g.piece.Pos); got != before+1 {
		t.Errorf("soft drop moved origin from row %d to %d", before, got)
	}
}

func TestHardDropLocksImmediately(t *testing.T) {
	SetDifficulty(config.DifficultyEasy)
	g := NewPure()
	g.Reset(testRuntimeConfig(42))

	g.Step(frame(core.ActionHardDrop))

	if got := g.State().Score; got != LockScore(1) {
		t.Errorf("score after first lock = %d, want %d", got, LockScore(1))
	}
	if g.grid.CountFilled() != 4 {
		t.Errorf("grid has %d filled cells after one lock, want 4", g.grid.CountFilled())
	}

	// An overhanging lock animates its cells settling; drain that
	// playback before expecting the next spawn.
	for i := 0; i < 100 && g.piece == nil; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.piece == nil {
		t.Error("a new piece should spawn once the lock resolution finishes")
	}
}

func TestPauseToggle(t *testing.T) {
	SetDifficulty(config.DifficultyEasy)
	g := NewPure()
	g.Reset(testRuntimeConfig(42))

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should pause")
	}

	// Movement input is ignored while paused.
	before := RowOf(g.piece.Pos)
	g.Step(frame(core.ActionDown))
	if RowOf(g.piece.Pos) != before {
		t.Error("piece moved while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("game should unpause")
	}
}

func TestStackingToTopEndsGame(t *testing.T) {
	SetDifficulty(config.DifficultyEasy)
	g := NewPure()
	g.Reset(testRuntimeConfig(42))

	for i := 0; i < 400 && !g.State().GameOver; i++ {
		g.Step(frame(core.ActionHardDrop))
	}

	if !g.State().GameOver {
		t.Fatal("endless hard drops should eventually top out")
	}

	// Reset starts a fresh run.
	g.Reset(testRuntimeConfig(43))
	if g.State().GameOver || g.State().Score != 0 {
		t.Error("reset should clear the game-over state")
	}
}

func TestDeterministicReplay(t *testing.T) {
	SetDifficulty(config.DifficultyNormal)

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntimeConfig(99))
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			switch {
			case i%37 == 0:
				in.Set(core.ActionHardDrop)
			case i%5 == 0:
				in.Set(core.ActionLeft)
			case i%7 == 0:
				in.Set(core.ActionRotate)
			case i%3 == 0:
				in.Set(core.ActionDown)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", first, second)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	SetDifficulty(config.DifficultyEasy)
	g := NewPure()
	g.Reset(testRuntimeConfig(42))
	g.Step(frame(core.ActionHardDrop))

	snap := g.Snapshot()
	if len(snap.Cells) != 4 {
		t.Fatalf("snapshot has %d cells, want 4", len(snap.Cells))
	}

	rebuilt := GridFromSnapshot(g.field, snap.Cells)
	if rebuilt.CountFilled() != g.grid.CountFilled() {
		t.Errorf("rebuilt grid has %d filled cells, want %d",
			rebuilt.CountFilled(), g.grid.CountFilled())
	}
	for a, c := range g.grid {
		if c.Filled != rebuilt.Filled(a) {
			t.Errorf("cell %v filled mismatch after round trip", a)
		}
	}
}

func TestLevelNeverDropsBelowStart(t *testing.T) {
	SetDifficulty(config.DifficultyHard)
	g := NewPure()
	g.Reset(testRuntimeConfig(42))

	if g.Level() != config.StartLevelForPreset(config.DifficultyHard) {
		t.Errorf("hard preset start level = %d, want %d",
			g.Level(), config.StartLevelForPreset(config.DifficultyHard))
	}
	if g.Lines() != 0 {
		t.Errorf("fresh game lines = %d, want 0", g.Lines())
	}
}
