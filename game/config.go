package game

import (
	"time"

	"isoshooter/arena"
)

// Config holds the window settings and the rules of the arena
type Config struct {
	// Arena holds the rule constants and arena size
	Arena arena.Config

	// ScreenWidth is the logical screen width in pixels (one pixel per world unit)
	ScreenWidth int

	// ScreenHeight is the logical screen height in pixels
	ScreenHeight int

	// WindowScale shrinks or grows the initial window relative to the logical screen
	WindowScale float64

	// Title is the window title
	Title string

	// TPS is the number of updates per second
	TPS int

	// MaxFrameTime clamps the simulated time of a single frame
	MaxFrameTime time.Duration

	// Seed seeds the session random source; 0 picks one from the clock
	Seed int64

	// Debug starts with the debug overlay on
	Debug bool

	// Profile enables frame-rate monitoring with CPU profile capture
	Profile bool

	// ProfileDir is where captured profiles are written
	ProfileDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	a := arena.DefaultConfig()
	return Config{
		Arena:        a,
		ScreenWidth:  int(a.Width),
		ScreenHeight: int(a.Height),
		WindowScale:  0.75,
		Title:        "Arena Shooter",
		TPS:          60,
		MaxFrameTime: 100 * time.Millisecond,
		ProfileDir:   "profiles",
	}
}

// WindowSize returns the initial window size in pixels
func (c Config) WindowSize() (int, int) {
	s := c.WindowScale
	if s <= 0 {
		s = 1
	}
	return int(float64(c.ScreenWidth) * s), int(float64(c.ScreenHeight) * s)
}
