package animation

import "time"

// Clock is the time source behind every ticker in this package. The default
// implementation reads system time; tests swap in a controllable clock via
// SetClock so flights and transitions can be stepped frame by frame.
type Clock interface {
	Now() time.Time
}

// realClock uses system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock replaces the animation clock. Returns the previous clock
// so callers can restore it during cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Now() }

// Since returns the time elapsed since t on the active clock.
func Since(t time.Time) time.Duration { return clock.Now().Sub(t) }
