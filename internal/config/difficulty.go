package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the progression level a new game starts
// at for a difficulty preset.
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyHard:
		return 5
	case DifficultyNormal:
		return 3
	default:
		return 1
	}
}

// ApplyHexfallPreset scales the special-cell spawn model for a preset.
// Easy games see slightly more multipliers and fewer frozen cells;
// hard games the reverse.
func ApplyHexfallPreset(cfg *HexfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Specials.Multiplier.Base *= 1.5
		cfg.Specials.Frozen.Base *= 0.5
		cfg.Specials.Frozen.Cap *= 0.5
	case DifficultyHard:
		cfg.Specials.Multiplier.Base *= 0.5
		cfg.Specials.Frozen.Base *= 1.5
		cfg.Specials.Frozen.Cap *= 1.5
	}
}
