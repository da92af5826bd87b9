// Package sim provides thread-safe simulation time management for the
// viewer: a clock mapping wall time to a TDB Julian date under a variable
// time scale.
package sim

import (
	"sync"
	"time"

	"github.com/litescript/ls-frames/astro"
)

// Scale bounds keep the clock usable: at the maximum, a real second sweeps
// about three years of simulation time.
const (
	MinScale = 0.1
	MaxScale = 1e8
)

// Config holds configuration for the clock.
type Config struct {
	// StartTDB is the initial simulation time as a TDB Julian date; zero
	// means the current wall clock time.
	StartTDB float64
	// Scale is the initial time scale in simulated seconds per real second.
	Scale float64
}

// DefaultConfig returns a clock starting at the current time, running in
// real time.
func DefaultConfig() Config {
	return Config{Scale: 1}
}

// Clock tracks the simulation's current TDB Julian date. Advancing and
// adjusting are safe to call from multiple goroutines; the TUI advances the
// clock on its tick while headless commands read it once.
type Clock struct {
	mu     sync.RWMutex
	tdb    float64
	scale  float64
	paused bool
}

// NewClock creates a clock from cfg, clamping the scale into range.
func NewClock(cfg Config) *Clock {
	tdb := cfg.StartTDB
	if tdb == 0 {
		tdb = astro.TimeToJD(time.Now())
	}
	return &Clock{tdb: tdb, scale: clampScale(cfg.Scale)}
}

// TDB returns the current simulation time.
func (c *Clock) TDB() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tdb
}

// SetTDB jumps the simulation to a specific time.
func (c *Clock) SetTDB(tdb float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tdb = tdb
}

// Advance moves the simulation forward by a wall-clock interval, scaled by
// the current time scale. A paused clock does not move.
func (c *Clock) Advance(real time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		return
	}
	c.tdb += astro.SecondsToDays(real.Seconds() * c.scale)
}

// Step moves the simulation by a fixed number of days regardless of pause
// state or scale. Used for manual scrubbing.
func (c *Clock) Step(days float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tdb += days
}

// Scale returns the current time scale.
func (c *Clock) Scale() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.scale
}

// SetScale replaces the time scale, clamped into [MinScale, MaxScale].
func (c *Clock) SetScale(scale float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = clampScale(scale)
}

// ScaleBy multiplies the time scale, clamped into range. Factors below one
// slow the simulation down.
func (c *Clock) ScaleBy(factor float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scale = clampScale(c.scale * factor)
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// TogglePause flips the pause state and returns the new value.
func (c *Clock) TogglePause() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = !c.paused
	return c.paused
}

// Snapshot is a consistent view of the clock for rendering.
type Snapshot struct {
	TDB    float64
	Time   time.Time
	Scale  float64
	Paused bool
}

// Snapshot returns the clock's state at one instant.
func (c *Clock) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Snapshot{
		TDB:    c.tdb,
		Time:   astro.JDToTime(c.tdb),
		Scale:  c.scale,
		Paused: c.paused,
	}
}

func clampScale(s float64) float64 {
	switch {
	case s < MinScale:
		return MinScale
	case s > MaxScale:
		return MaxScale
	default:
		return s
	}
}
