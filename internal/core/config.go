package core

// RuntimeConfig contains host settings passed to the game loop.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal host) or pixels (window host)
	ScreenH  int   // Screen height in characters (terminal host) or pixels (window host)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
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
