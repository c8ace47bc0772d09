package config

// DifficultyPreset represents a named difficulty band of enemy_spawn_rate.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Spawn rate bounds.
const (
	MinSpawnRate = 1
	MaxSpawnRate = 10
)

// PresetForSpawnRate maps a spawn rate to its band: 1-3 easy, 4-6 normal,
// 7-10 hard. Out-of-range rates are clamped first.
func PresetForSpawnRate(rate int) DifficultyPreset {
	rate = clampSpawnRate(rate)
	switch {
	case rate <= 3:
		return DifficultyEasy
	case rate <= 6:
		return DifficultyNormal
	default:
		return DifficultyHard
	}
}

// SpawnRateForPreset returns the representative spawn rate of a preset.
// ok is false for unknown preset names.
func SpawnRateForPreset(preset DifficultyPreset) (int, bool) {
	switch preset {
	case DifficultyEasy:
		return 2, true
	case DifficultyNormal:
		return 4, true
	case DifficultyHard:
		return 8, true
	default:
		return 0, false
	}
}

// EnemyAdjustment returns how many enemies the preset adds to a normal level.
func (p DifficultyPreset) EnemyAdjustment() int {
	switch p {
	case DifficultyEasy:
		return -1
	case DifficultyHard:
		return 1
	default:
		return 0
	}
}

func clampSpawnRate(rate int) int {
	return max(MinSpawnRate, min(MaxSpawnRate, rate))
}
