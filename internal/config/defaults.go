package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

// DefaultSnakeConfig returns the hard-coded default configuration.
// It matches defaults/snake.yaml and is used when the embedded file fails to parse.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		Difficulties: []DifficultyLevel{
			{Name: "easy", TickRate: 8, Multiplier: 1, Lives: 3, Walls: 0},
			{Name: "medium", TickRate: 12, Multiplier: 2, Lives: 5, Walls: 8},
			{Name: "hard", TickRate: 18, Multiplier: 3, Lives: 8, Walls: 8},
		},
		Fruit: FruitConfig{
			NormalPoints:  10,
			BonusPoints:   20,
			PowerPoints:   15,
			BonusEvery:    8,
			PowerEvery:    12,
			BonusLifetime: 5 * time.Second,
			PowerLifetime: 7 * time.Second,
			SlowDuration:  5 * time.Second,
		},
		Leaderboard: LeaderboardConfig{
			Path:       "leaderboard.txt",
			Top:        10,
			MaxNameLen: 30,
		},
		MenuTickRate: 10,
	}
}
