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

// TickSeconds returns the simulated duration of one tick.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Best     int  // Best score known to the game, including this run
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies an outbound game event.
type EventKind int

const (
	EventScoreChanged EventKind = iota
	EventGameOver
	EventCurrencyAward
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventScoreChanged:
		return "score_changed"
	case EventGameOver:
		return "game_over"
	case EventCurrencyAward:
		return "currency_award"
	default:
		return "unknown"
	}
}

// Event is something the platform must react to: persist a score,
// credit the wallet, update a HUD.
type Event struct {
	Kind    EventKind
	Value   int  // Score for score/game-over events, coin amount for awards
	NewBest bool // Game over only: the final score beat the previous best
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
