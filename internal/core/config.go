package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW      int           // Terminal width in characters
	ScreenH      int           // Terminal height in characters (includes the status line)
	TickInterval time.Duration // Fixed simulation cadence
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultTickInterval is the fixed simulation cadence.
const DefaultTickInterval = 60 * time.Millisecond

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: DefaultTickInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// FieldHeight returns the number of rows available to the playfield.
// The bottom terminal row is reserved for the status line.
func (c RuntimeConfig) FieldHeight() int {
	return c.ScreenH - 1
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // The bird died and the end prompt is showing
	Paused   bool // Whether the game is paused
	Exited   bool // The session reached its terminal exit state
	TooSmall bool // The screen cannot fit a valid playfield
}

// Event is something noteworthy that happened during a tick.
// Platforms use events for side effects like sound and score persistence.
type Event int

const (
	EventNone    Event = iota
	EventFlap          // The bird received a jump impulse
	EventScore         // An obstacle gap was passed
	EventCrash         // The bird hit a boundary or an obstacle
	EventRestart       // A fresh session replaced a dead one
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventFlap:
		return "flap"
	case EventScore:
		return "score"
	case EventCrash:
		return "crash"
	case EventRestart:
		return "restart"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the given event occurred during the tick.
func (r StepResult) Has(e Event) bool {
	for _, ev := range r.Events {
		if ev == e {
			return true
		}
	}
	return false
}
