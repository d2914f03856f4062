// Package config provides YAML-based game configuration loading and
// difficulty presets for the catch game.
package config

import (
	"errors"
	"fmt"
)

// CatchConfig contains all configuration for the catch game.
type CatchConfig struct {
	Player     CatchPlayer     `yaml:"player"`
	Objects    CatchObjects    `yaml:"objects"`
	Spawn      CatchSpawn      `yaml:"spawn"`
	Gameplay   CatchGameplay   `yaml:"gameplay"`
	Difficulty CatchDifficulty `yaml:"difficulty"`
}

// CatchPlayer defines the catcher's size and movement.
type CatchPlayer struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Step      float64 `yaml:"step"`      // Keyboard nudge per tick while a direction is held
	Smoothing float64 `yaml:"smoothing"` // Fraction of the distance to target covered per tick
}

// CatchObjects defines how falling objects are created and moved.
type CatchObjects struct {
	Margin   float64 `yaml:"margin"`  // Spawn keeps centers this far from the side walls
	StartY   float64 `yaml:"start_y"` // Spawn row, negative is above the field
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	MinSize  float64 `yaml:"min_size"`
	MaxSize  float64 `yaml:"max_size"`
	Gravity  float64 `yaml:"gravity"`
}

// CatchSpawn defines the spawn cadence and its ramp, in ticks.
type CatchSpawn struct {
	Interval    float64 `yaml:"interval"`
	Decrement   float64 `yaml:"decrement"`
	MinInterval float64 `yaml:"min_interval"`
}

// CatchGameplay defines scoring and failure rules.
type CatchGameplay struct {
	Lives          int     `yaml:"lives"`
	Reward         int     `yaml:"reward"`
	CatchTolerance float64 `yaml:"catch_tolerance"`
	MissMargin     float64 `yaml:"miss_margin"`
}

// CatchDifficulty holds session-level difficulty behavior.
type CatchDifficulty struct {
	ResetOnRestart bool `yaml:"reset_on_restart"` // Restore the spawn interval on every new session
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c CatchConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Player.Width > 0, "player.width must be positive, got %v", c.Player.Width)
	check(c.Player.Height > 0, "player.height must be positive, got %v", c.Player.Height)
	check(c.Player.Step >= 0, "player.step must not be negative, got %v", c.Player.Step)
	check(c.Player.Smoothing > 0 && c.Player.Smoothing <= 1,
		"player.smoothing must be in (0, 1], got %v", c.Player.Smoothing)

	check(c.Objects.Margin >= 0, "objects.margin must not be negative, got %v", c.Objects.Margin)
	check(c.Objects.MinSpeed >= 0 && c.Objects.MinSpeed <= c.Objects.MaxSpeed,
		"objects speed range [%v, %v] is invalid", c.Objects.MinSpeed, c.Objects.MaxSpeed)
	check(c.Objects.MinSize > 0 && c.Objects.MinSize <= c.Objects.MaxSize,
		"objects size range [%v, %v] is invalid", c.Objects.MinSize, c.Objects.MaxSize)
	check(c.Objects.Gravity >= 0, "objects.gravity must not be negative, got %v", c.Objects.Gravity)

	check(c.Spawn.MinInterval >= 1, "spawn.min_interval must be at least 1, got %v", c.Spawn.MinInterval)
	check(c.Spawn.Interval >= c.Spawn.MinInterval,
		"spawn.interval %v is below spawn.min_interval %v", c.Spawn.Interval, c.Spawn.MinInterval)
	check(c.Spawn.Decrement >= 0, "spawn.decrement must not be negative, got %v", c.Spawn.Decrement)

	check(c.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.Reward >= 0, "gameplay.reward must not be negative, got %d", c.Gameplay.Reward)
	check(c.Gameplay.CatchTolerance >= 0, "gameplay.catch_tolerance must not be negative, got %v", c.Gameplay.CatchTolerance)
	check(c.Gameplay.MissMargin >= 0, "gameplay.miss_margin must not be negative, got %v", c.Gameplay.MissMargin)

	return errors.Join(errs...)
}
