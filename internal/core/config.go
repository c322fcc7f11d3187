package core

// RuntimeConfig is handed to a game at Reset time. The screen size lets
// the game decide whether the playfield fits; the tick rate and seed pin
// down the simulation so two runs with the same inputs play identically.
type RuntimeConfig struct {
	ScreenW  int   // terminal width in characters
	ScreenH  int   // terminal height in characters
	TickRate int   // simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the game pick its own
}

// DefaultConfig returns the runtime defaults: an 80x24 terminal at 60
// ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the game's lifecycle report to the platform, refreshed
// every tick.
type GameState struct {
	Score    int  // current score in displayed units
	Round    int  // 1-based round the player is on
	Lives    int  // lives remaining, including the one in play
	GameOver bool // set while the game-over sequence runs
	Paused   bool
}

// StepResult is what one simulation tick produces.
type StepResult struct {
	State GameState

	// Sounds lists the sound events emitted during this tick, in order.
	// Empty on ticks with no audio activity.
	Sounds []SoundEvent
}
