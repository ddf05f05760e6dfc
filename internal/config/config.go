// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"fmt"
	"math"
)

// BlockfallConfig contains all configuration for the Blockfall game.
type BlockfallConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the well dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the fall-speed curve. All values are seconds.
type GravityConfig struct {
	BaseInterval float64 `yaml:"base_interval"` // Interval at level 1
	PerLevel     float64 `yaml:"per_level"`     // Shaved off per level gained
	MinInterval  float64 `yaml:"min_interval"`  // Floor the interval never goes below
}

// DisplayConfig toggles optional presentation features.
type DisplayConfig struct {
	Ghost       bool `yaml:"ghost"`        // Show the hard-drop landing preview
	NextPreview bool `yaml:"next_preview"` // Show the upcoming piece
}

// Interval returns the gravity interval in seconds for the given level:
// base - (level-1)*per_level, floored at min_interval.
func (g GravityConfig) Interval(level int) float64 {
	interval := g.BaseInterval - float64(level-1)*g.PerLevel
	return math.Max(g.MinInterval, interval)
}

// Validate checks that the configuration describes a playable game.
func (c BlockfallConfig) Validate() error {
	if c.Board.Width < 4 {
		return fmt.Errorf("config: board width %d is too narrow (minimum 4)", c.Board.Width)
	}
	if c.Board.Height < 4 {
		return fmt.Errorf("config: board height %d is too short (minimum 4)", c.Board.Height)
	}
	if c.Gravity.MinInterval <= 0 {
		return fmt.Errorf("config: min_interval must be positive, got %g", c.Gravity.MinInterval)
	}
	if c.Gravity.BaseInterval < c.Gravity.MinInterval {
		return fmt.Errorf("config: base_interval %g is below min_interval %g",
			c.Gravity.BaseInterval, c.Gravity.MinInterval)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyBlockfallPreset adjusts the gravity curve for a difficulty preset.
// "fixed" keeps the starting speed for the whole game; unknown presets
// leave the config untouched.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseInterval = 0.8
	case DifficultyHard:
		cfg.Gravity.BaseInterval = 0.45
	case DifficultyFixed:
		cfg.Gravity.PerLevel = 0
	}
}
