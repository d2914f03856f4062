package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	Running  bool // Whether the session is active
	GameOver bool // Whether the session has ended (not set before the first start)
	Paused   bool // Whether the game is paused
}

// EventType identifies something that happened during a tick.
type EventType int

const (
	EventSpawn    EventType = iota // A falling object entered the field
	EventCatch                     // An object was caught; Value holds the reward
	EventMiss                      // An object was missed; Value holds the lives left
	EventGameOver                  // The session ended; Value holds the final score
	EventStart                     // A new session started
)

// String returns a human-readable name for the event type.
func (e EventType) String() string {
	switch e {
	case EventSpawn:
		return "spawn"
	case EventCatch:
		return "catch"
	case EventMiss:
		return "miss"
	case EventGameOver:
		return "game_over"
	case EventStart:
		return "start"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a simulation tick.
type Event struct {
	Type  EventType
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given type occurred this tick.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
