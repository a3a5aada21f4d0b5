// Package config provides YAML-based gameplay configuration loading
// and difficulty presets for Hexfall.
package config

// HexfallConfig contains all tunable gameplay parameters.
type HexfallConfig struct {
	Game     GameConfig     `yaml:"game"`
	Specials SpecialsConfig `yaml:"specials"`
}

// GameConfig defines core timing and quality-of-life parameters.
type GameConfig struct {
	// LockDelayMS is the grace period in milliseconds between a piece
	// touching down and locking in place.
	LockDelayMS int `yaml:"lock_delay_ms"`

	// RecentPieceMemory is how many recently spawned piece types are
	// excluded from the next weighted draw to discourage repeats.
	RecentPieceMemory int `yaml:"recent_piece_memory"`

	// GhostPiece toggles the hard-drop preview outline.
	GhostPiece bool `yaml:"ghost_piece"`
}

// SpecialsConfig defines the spawn model for special cells and
// special-tagged pieces.
type SpecialsConfig struct {
	Bomb       SpecialRate `yaml:"bomb"`
	Multiplier SpecialRate `yaml:"multiplier"`
	Frozen     SpecialRate `yaml:"frozen"`

	// Whole-piece tags rolled at spawn time. Only bomb and multiplier
	// pieces exist; frozen is a cell-level effect only.
	BombPiece       SpecialRate `yaml:"bomb_piece"`
	MultiplierPiece SpecialRate `yaml:"multiplier_piece"`
}

// SpecialRate is one spawn-rate curve: base + (level-1)*per_level,
// capped at cap, with an independent maximum count on the field.
type SpecialRate struct {
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Cap      float64 `yaml:"cap"`

	// MaxOnField limits simultaneous cells of this type. Ignored for
	// the whole-piece curves.
	MaxOnField int `yaml:"max_on_field"`
}

// Chance returns the spawn chance at the given level.
func (r SpecialRate) Chance(level int) float64 {
	c := r.Base + float64(level-1)*r.PerLevel
	if c > r.Cap {
		c = r.Cap
	}
	if c < 0 {
		c = 0
	}
	return c
}
