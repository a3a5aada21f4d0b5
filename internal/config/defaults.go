package config

import (
	_ "embed"
)

//go:embed defaults/hexfall.yaml
var defaultHexfallYAML []byte

// DefaultHexfallConfig returns the hardcoded default configuration,
// used as the last-resort fallback when the embedded YAML cannot be
// parsed.
func DefaultHexfallConfig() HexfallConfig {
	return HexfallConfig{
		Game: GameConfig{
			LockDelayMS:       500,
			RecentPieceMemory: 3,
			GhostPiece:        true,
		},
		Specials: SpecialsConfig{
			Bomb: SpecialRate{
				Base:       0.020,
				PerLevel:   0.005,
				Cap:        0.10,
				MaxOnField: 3,
			},
			Multiplier: SpecialRate{
				Base:       0.015,
				PerLevel:   0.004,
				Cap:        0.08,
				MaxOnField: 2,
			},
			Frozen: SpecialRate{
				Base:       0.020,
				PerLevel:   0,
				Cap:        0.020,
				MaxOnField: 4,
			},
			BombPiece: SpecialRate{
				Base:     0.010,
				PerLevel: 0.002,
				Cap:      0.05,
			},
			MultiplierPiece: SpecialRate{
				Base:     0.008,
				PerLevel: 0.002,
				Cap:      0.04,
			},
		},
	}
}
