// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid         GridConfig        `yaml:"grid"`
	Difficulties []DifficultyLevel `yaml:"difficulties"`
	Fruit        FruitConfig       `yaml:"fruit"`
	Leaderboard  LeaderboardConfig `yaml:"leaderboard"`
	MenuTickRate int               `yaml:"menu_tick_rate"` // Ticks per second before a difficulty is chosen
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DifficultyLevel is one selectable difficulty.
type DifficultyLevel struct {
	Name       string `yaml:"name"`
	TickRate   int    `yaml:"tick_rate"`  // Moves per second
	Multiplier int    `yaml:"multiplier"` // Score scaling factor
	Lives      int    `yaml:"lives"`
	Walls      int    `yaml:"walls"` // Wall cells placed at round start
}

// FruitConfig defines scoring and timing for the three fruit kinds.
type FruitConfig struct {
	NormalPoints  int           `yaml:"normal_points"`
	BonusPoints   int           `yaml:"bonus_points"`
	PowerPoints   int           `yaml:"power_points"`
	BonusEvery    int           `yaml:"bonus_every"` // Normal fruits eaten between bonus spawns
	PowerEvery    int           `yaml:"power_every"`
	BonusLifetime time.Duration `yaml:"bonus_lifetime"`
	PowerLifetime time.Duration `yaml:"power_lifetime"`
	SlowDuration  time.Duration `yaml:"slow_duration"`
}

// LeaderboardConfig defines the score file and panel size.
type LeaderboardConfig struct {
	Path       string `yaml:"path"`
	Top        int    `yaml:"top"`          // Entries shown in the panel
	MaxNameLen int    `yaml:"max_name_len"` // Buffer size; names hold at most MaxNameLen-1 characters
}

// NameLimit returns the maximum number of characters in a player name.
func (c LeaderboardConfig) NameLimit() int {
	return c.MaxNameLen - 1
}

// Difficulty returns the difficulty at index i, clamped to the valid range.
func (c SnakeConfig) Difficulty(i int) DifficultyLevel {
	if i < 0 {
		i = 0
	}
	if i >= len(c.Difficulties) {
		i = len(c.Difficulties) - 1
	}
	return c.Difficulties[i]
}

// Validate reports the first problem that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if len(c.Difficulties) == 0 {
		return errors.New("config: at least one difficulty is required")
	}
	for _, d := range c.Difficulties {
		if d.TickRate <= 0 || d.Multiplier <= 0 || d.Lives <= 0 {
			return fmt.Errorf("config: difficulty %q needs positive tick_rate, multiplier and lives", d.Name)
		}
		if d.Walls < 0 {
			return fmt.Errorf("config: difficulty %q has negative walls", d.Name)
		}
	}
	if c.Fruit.BonusEvery <= 0 || c.Fruit.PowerEvery <= 0 {
		return errors.New("config: fruit bonus_every and power_every must be positive")
	}
	if c.Leaderboard.MaxNameLen < 2 {
		return fmt.Errorf("config: max_name_len must be at least 2, got %d", c.Leaderboard.MaxNameLen)
	}
	if c.MenuTickRate <= 0 {
		return fmt.Errorf("config: menu_tick_rate must be positive, got %d", c.MenuTickRate)
	}
	return nil
}
