package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	Width    int   // Play-area width in world units
	Height   int   // Play-area height in world units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic particles
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Width:    800,
		Height:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DeltaTime returns the fixed frame duration in seconds.
func (c RuntimeConfig) DeltaTime() float32 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float32(c.TickRate)
}

// GameState summarizes progress for hosts and persistence.
type GameState struct {
	Score     int  // Points from destroyed bricks
	BallsLost int  // Times the ball fell past the bottom
	Won       bool // Whether the current level was just cleared
}
