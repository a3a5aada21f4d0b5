package hexfall

// MaxLevel caps progression.
const MaxLevel = 20

// LockScore is the score awarded for locking a piece.
func LockScore(level int) int {
	return 10 * level
}

// ComboMultiplier rewards simultaneous lines within one clear pass.
func ComboMultiplier(lines int) int {
	switch {
	case lines <= 1:
		return 1
	case lines == 2:
		return 3
	case lines == 3:
		return 5
	default:
		return 8
	}
}

// CascadeFactor scales a cascade stage: 1 is the initial clear, 2+ are
// the chain reactions triggered by the same lock.
func CascadeFactor(stage int) float64 {
	switch {
	case stage <= 1:
		return 1
	case stage == 2:
		return 1.5
	case stage == 3:
		return 2
	case stage == 4:
		return 2.5
	default:
		return 3
	}
}

// LineScore computes the score for one clear stage: the base
// 100*n*combo(n)*level scaled by the cascade factor, floored to an
// integer, then doubled if a multiplier cell participated.
func LineScore(lines, level, stage int, hasMultiplier bool) int {
	base := 100 * lines * ComboMultiplier(lines) * level
	score := int(float64(base) * CascadeFactor(stage))
	if hasMultiplier {
		score *= 2
	}
	return score
}

// LevelFor returns the progression level for a total line count,
// capped at MaxLevel.
func LevelFor(totalLines int) int {
	level := totalLines/10 + 1
	if level > MaxLevel {
		level = MaxLevel
	}
	return level
}

// SpeedMS returns the automatic drop interval in milliseconds for a
// level, floored at 100ms.
func SpeedMS(level int) int {
	ms := 1000 - (level-1)*50
	if ms < 100 {
		ms = 100
	}
	return ms
}
