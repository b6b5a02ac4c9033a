// Package animation provides the animation clock primitives that drive
// route transitions and shared-element flights.
//
// # Core Components
//
//   - [AnimationController]: Drives animations over time, managing value progression
//     from 0.0 to 1.0 with configurable duration and easing curves.
//
//   - [Tween]: Interpolates between begin and end values of any type using the
//     controller's current value. Generic tweens support float64, Offset, Size, Rect.
//
//   - [CurvedAnimation]: Derives a curved or interval-limited sub-animation from a
//     parent controller, so a flight can ease independently of its page transition.
//
//   - Curves: Easing functions that transform linear progress into natural-feeling
//     motion. Includes standard curves like [EaseIn], [EaseOut], [EaseInOut], plus
//     [FromEase] to adapt easing functions from the gween/ease library.
//
// # Basic Usage
//
// Create a controller, configure a tween, and use AddListener to repaint on changes:
//
//	controller := animation.NewAnimationController(300 * time.Millisecond)
//	controller.Curve = animation.EaseInOut
//	rectTween := animation.TweenRect(sourceRect, targetRect)
//	controller.AddListener(func() {
//	    frame := rectTween.Transform(controller)
//	    // reposition the overlay to frame
//	})
//	controller.Forward()
//
// Hosts drive all active controllers by calling [StepTickers] once per frame.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
	lastTickTime  time.Time
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the engine's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Since(t.start)
}

// StepTickers advances all active tickers.
// The host calls this once per frame, after advancing its clock.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(Since(ticker.start))
		}
	}
}

// HasActiveTickers reports whether any animation is still running. Hosts use
// it to decide whether the next frame needs scheduling; motiontest.Settle
// pumps frames until it returns false.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// After runs fn once the given delay has elapsed, driven by the frame loop
// rather than a timer goroutine. It returns the ticker so callers can cancel
// the pending callback with Stop. A zero or negative delay fires on the next
// frame step.
func After(delay time.Duration, fn func()) *Ticker {
	var t *Ticker
	t = NewTicker(func(elapsed time.Duration) {
		if elapsed < delay {
			return
		}
		t.Stop()
		if fn != nil {
			fn()
		}
	})
	t.Start()
	return t
}
