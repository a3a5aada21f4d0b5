package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadHexfallEmbeddedDefault(t *testing.T) {
	// Run from a temp dir so no local configs/ directory interferes.
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tmpDir)
	defer os.Chdir(oldWd)

	cfg, err := LoadHexfall("")
	if err != nil {
		t.Fatalf("LoadHexfall() failed: %v", err)
	}

	// Embedded YAML must agree with the hardcoded fallback.
	want := DefaultHexfallConfig()
	if cfg.Game.LockDelayMS != want.Game.LockDelayMS {
		t.Errorf("LockDelayMS = %d, want %d", cfg.Game.LockDelayMS, want.Game.LockDelayMS)
	}
	if cfg.Game.RecentPieceMemory != want.Game.RecentPieceMemory {
		t.Errorf("RecentPieceMemory = %d, want %d",
			cfg.Game.RecentPieceMemory, want.Game.RecentPieceMemory)
	}
	if !cfg.Game.GhostPiece {
		t.Error("GhostPiece should default to true")
	}
	if cfg.Specials.Bomb != want.Specials.Bomb {
		t.Errorf("Bomb rate = %+v, want %+v", cfg.Specials.Bomb, want.Specials.Bomb)
	}
	if cfg.Specials.Frozen.MaxOnField != want.Specials.Frozen.MaxOnField {
		t.Errorf("Frozen.MaxOnField = %d, want %d",
			cfg.Specials.Frozen.MaxOnField, want.Specials.Frozen.MaxOnField)
	}
}

func TestLoadHexfallCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	custom := `
game:
  lock_delay_ms: 250
  recent_piece_memory: 5
  ghost_piece: false
specials:
  bomb:
    base: 0.5
    per_level: 0.0
    cap: 0.5
    max_on_field: 1
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("cannot write custom config: %v", err)
	}

	cfg, err := LoadHexfall(path)
	if err != nil {
		t.Fatalf("LoadHexfall() failed: %v", err)
	}

	if cfg.Game.LockDelayMS != 250 {
		t.Errorf("LockDelayMS = %d, want 250", cfg.Game.LockDelayMS)
	}
	if cfg.Game.GhostPiece {
		t.Error("GhostPiece should be disabled by the custom config")
	}
	if cfg.Specials.Bomb.Base != 0.5 {
		t.Errorf("Bomb.Base = %f, want 0.5", cfg.Specials.Bomb.Base)
	}
}

func TestLoadHexfallMissingCustomPath(t *testing.T) {
	_, err := LoadHexfall("/nonexistent/path/hexfall.yaml")
	if err == nil {
		t.Error("an explicit but unreadable config path should be an error")
	}
}

func TestLoadHexfallMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("game: [not a map"), 0o644); err != nil {
		t.Fatalf("cannot write bad config: %v", err)
	}

	if _, err := LoadHexfall(path); err == nil {
		t.Error("malformed explicit config should be an error")
	}
}

func TestSpecialRateChance(t *testing.T) {
	r := SpecialRate{Base: 0.02, PerLevel: 0.005, Cap: 0.05}

	tests := []struct {
		level int
		want  float64
	}{
		{1, 0.02},
		{2, 0.025},
		{5, 0.04},
		{7, 0.05},  // exactly at cap
		{20, 0.05}, // capped
	}

	for _, tt := range tests {
		if got := r.Chance(tt.level); got != tt.want {
			t.Errorf("Chance(%d) = %f, want %f", tt.level, got, tt.want)
		}
	}

	// A negative curve clamps to zero.
	falling := SpecialRate{Base: 0.01, PerLevel: -0.01, Cap: 0.05}
	if got := falling.Chance(10); got != 0 {
		t.Errorf("negative curve Chance(10) = %f, want 0", got)
	}
}

func TestStartLevelForPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   int
	}{
		{DifficultyEasy, 1},
		{DifficultyNormal, 3},
		{DifficultyHard, 5},
		{DifficultyPreset("unknown"), 1},
	}

	for _, tt := range tests {
		if got := StartLevelForPreset(tt.preset); got != tt.want {
			t.Errorf("StartLevelForPreset(%q) = %d, want %d", tt.preset, got, tt.want)
		}
	}
}

func TestApplyHexfallPreset(t *testing.T) {
	base := DefaultHexfallConfig()

	easy := DefaultHexfallConfig()
	ApplyHexfallPreset(&easy, DifficultyEasy)
	if easy.Specials.Multiplier.Base <= base.Specials.Multiplier.Base {
		t.Error("easy preset should raise the multiplier rate")
	}
	if easy.Specials.Frozen.Base >= base.Specials.Frozen.Base {
		t.Error("easy preset should lower the frozen rate")
	}

	hard := DefaultHexfallConfig()
	ApplyHexfallPreset(&hard, DifficultyHard)
	if hard.Specials.Multiplier.Base >= base.Specials.Multiplier.Base {
		t.Error("hard preset should lower the multiplier rate")
	}
	if hard.Specials.Frozen.Base <= base.Specials.Frozen.Base {
		t.Error("hard preset should raise the frozen rate")
	}

	// Normal leaves the config untouched.
	normal := DefaultHexfallConfig()
	ApplyHexfallPreset(&normal, DifficultyNormal)
	if normal.Specials != base.Specials {
		t.Error("normal preset should not change special rates")
	}
}
