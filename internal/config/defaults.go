package config

import (
	_ "embed"
)

//go:embed defaults/catch.yaml
var defaultCatchYAML []byte

// DefaultCatchConfig returns the built-in catch configuration.
// It mirrors defaults/catch.yaml and is used when the embedded file cannot be parsed.
func DefaultCatchConfig() CatchConfig {
	return CatchConfig{
		Player: CatchPlayer{
			Width:     9,
			Height:    1,
			Step:      1.5,
			Smoothing: 0.25,
		},
		Objects: CatchObjects{
			Margin:   2,
			StartY:   -2,
			MinSpeed: 0.08,
			MaxSpeed: 0.18,
			MinSize:  1,
			MaxSize:  2,
			Gravity:  0.002,
		},
		Spawn: CatchSpawn{
			Interval:    60,
			Decrement:   0.5,
			MinInterval: 18,
		},
		Gameplay: CatchGameplay{
			Lives:          3,
			Reward:         10,
			CatchTolerance: 1,
			MissMargin:     2,
		},
		Difficulty: CatchDifficulty{
			ResetOnRestart: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catch":
		return defaultCatchYAML
	default:
		return nil
	}
}
