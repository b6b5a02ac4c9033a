// Package motiontest provides deterministic test support for animation code:
// a controllable clock and a frame pump that steps tickers and flushes
// post-frame callbacks the way a real host frame does.
package motiontest

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/core"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Env couples a fake clock with the animation package for one test. Create
// with NewEnv; the cleanup registered on t restores the real clock.
type Env struct {
	Clock *FakeClock
}

// testingT is the subset of *testing.T that Env needs.
type testingT interface {
	Cleanup(func())
	Helper()
}

// NewEnv installs a fake clock for the duration of the test and returns the
// environment driving it.
func NewEnv(t testingT) *Env {
	t.Helper()
	clock := NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return &Env{Clock: clock}
}

// Frame advances the clock by d and runs one host frame: tickers step at the
// new time, then post-frame callbacks flush. Use Pump to run several frames.
func (e *Env) Frame(d time.Duration) {
	e.Clock.Advance(d)
	animation.StepTickers()
	core.FlushPostFrame()
}

// Pump runs n frames of d each.
func (e *Env) Pump(n int, d time.Duration) {
	for i := 0; i < n; i++ {
		e.Frame(d)
	}
}

// Settle pumps frames of d until the animation system is quiet: no active
// tickers, no pending post-frame work, and the given conditions all true.
// It gives up after a bounded number of frames and returns false.
func (e *Env) Settle(d time.Duration, conditions ...func() bool) bool {
	const maxFrames = 1000
	for i := 0; i < maxFrames; i++ {
		e.Frame(d)
		if animation.HasActiveTickers() || core.PendingPostFrame() {
			continue
		}
		done := true
		for _, cond := range conditions {
			if !cond() {
				done = false
				break
			}
		}
		if done {
			return true
		}
	}
	return false
}
