// Package core provides the fundamental types shared by the arcade
// platform and the game prototypes: the screen cell buffer, the input
// action abstraction, and runtime configuration. It has no external
// dependencies so game logic stays pure and testable.
package core

// RuntimeConfig is passed to games at initialization. Games use it to
// adapt to the screen size and to seed deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // screen width in cells
	ScreenH  int   // screen height in cells
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState communicates a game's status to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
