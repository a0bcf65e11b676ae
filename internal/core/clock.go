package core

import "time"

// Clock supplies monotonic time with millisecond resolution. Engines use
// it for the timers that run on longer intervals than the simulation tick
// (alien movement, alien fire, button debounce), so the same logic can be
// driven by real time or by a manual clock in tests.
type Clock interface {
	NowMS() int64
}

// SinceMS returns the elapsed milliseconds between then and the clock's
// current time, saturating at zero so a rewound clock never yields a
// negative interval.
func SinceMS(c Clock, then int64) int64 {
	d := c.NowMS() - then
	if d < 0 {
		return 0
	}
	return d
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock anchored at the current time.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMS returns milliseconds since the clock was created.
func (c *SystemClock) NowMS() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is a test clock advanced explicitly.
type ManualClock struct {
	ms int64
}

// NewManualClock creates a manual clock starting at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// NowMS returns the current manual time.
func (c *ManualClock) NowMS() int64 {
	return c.ms
}

// Advance moves the clock forward by the given number of milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.ms += ms
}
