package core

import "time"

// RuntimeConfig contains configuration passed to the game at reset.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay, 0 for random
}

// Seeded returns c with a zero Seed replaced by the current time, so runs
// without an explicit seed differ from each other.
func (c RuntimeConfig) Seeded() RuntimeConfig {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Sound identifies a sound effect requested by the game.
type Sound int

const (
	SoundEat   Sound = iota // normal fruit eaten
	SoundHit                // fatal collision
	SoundBonus              // bonus fruit appeared
)

// GameState represents the current state of the game as seen by a frontend.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the round has ended
	Paused   bool // Whether the game is paused
	Typing   bool // Whether the game is collecting text (keys are characters)
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Sounds []Sound // Sound effects triggered this tick, in order
}
