package config

import "math"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// The empty string means no preset; unknown names report ok=false.
func ParseDifficultyPreset(s string) (preset DifficultyPreset, ok bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyCatchPreset modifies the config based on a difficulty preset.
// Normal and the empty preset leave the config untouched.
func ApplyCatchPreset(cfg *CatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Spawn.Decrement /= 2
		cfg.Player.Width += 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Spawn.Interval = math.Max(cfg.Spawn.MinInterval, cfg.Spawn.Interval*0.75)
		cfg.Spawn.Decrement *= 1.5
	case DifficultyFixed:
		cfg.Spawn.Decrement = 0
	}
}

// RampLevel reports how far the spawn interval has ramped, from 0.0 at the
// initial interval to 1.0 at the floor.
func RampLevel(spawn CatchSpawn, current float64) float64 {
	span := spawn.Interval - spawn.MinInterval
	if span <= 0 {
		return 0
	}
	return clampF((spawn.Interval-current)/span, 0.0, 1.0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
