package sharedelement

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/geometry"
)

// TransitionState tracks a transition's lifecycle.
//
//	Idle ──Start()──► Active ──clock completes──► Completed
//	                    │
//	                 Cancel()
//	                    ▼
//	                Cancelled
//
// Start is a no-op unless Idle; Cancel is a no-op unless Active.
type TransitionState int

const (
	TransitionIdle TransitionState = iota
	TransitionActive
	TransitionCompleted
	TransitionCancelled
)

// String returns a human-readable representation of the state.
func (s TransitionState) String() string {
	switch s {
	case TransitionIdle:
		return "idle"
	case TransitionActive:
		return "active"
	case TransitionCompleted:
		return "completed"
	case TransitionCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("TransitionState(%d)", int(s))
	}
}

// TransitionOptions configure a planned transition. Use
// [DefaultTransitionOptions] as a starting point; the zero value disables
// morphing and elevation.
type TransitionOptions struct {
	Duration       time.Duration
	Curve          func(float64) float64
	EnableMorphing bool
	UseElevation   bool
	// Path is an optional custom flight trajectory.
	Path *geometry.Path
	// OnComplete runs exactly once when the transition completes naturally.
	// Cancellation does not invoke it.
	OnComplete func()
}

// DefaultTransitionOptions returns the options used when the caller passes nil.
func DefaultTransitionOptions() *TransitionOptions {
	return &TransitionOptions{
		Duration:       300 * time.Millisecond,
		Curve:          animation.FlightCurve,
		EnableMorphing: true,
		UseElevation:   true,
	}
}

// TransitionOptimization is the coordinator's late-bound annotation on a
// transition: explicit typed fields rather than a side table keyed by id, so
// nothing outlives the transition. Cleared on completion or cancellation.
type TransitionOptimization struct {
	// Rasterize asks the host to wrap the flight widget in a repaint
	// boundary (and lets the overlay substitute a cached raster).
	Rasterize bool
	// Placeholder stands in for complex content when geometry is
	// simplified.
	Placeholder core.Widget
	// OptimizedDuration is the frame-rate-compensated duration; zero means
	// the planned duration stands.
	OptimizedDuration time.Duration
	// FrameRate is the recommended cap (0 = uncapped/60).
	FrameRate int
	// Clipping is the analyzer's classification for this flight.
	Clipping ClipStrategy

	// Renderer hints translated from Clipping and the profile.
	HardClip      bool // clip strictly at container bounds
	FadeClip      bool // fade out near the clipped end instead of hard clipping
	ScaleClip     bool // shrink into bounds rather than clipping content
	AllowOverflow bool // let the flight paint outside the container
}

// SharedElementTransition is one element's flight from its source screen to
// its target screen.
type SharedElementTransition struct {
	// ID is the shared element id.
	ID string
	// Source is the element record on the outgoing screen at plan time.
	Source *ElementRecord
	// Target is the matching record on the incoming screen, nil when the
	// element only exists on the source screen.
	Target *ElementRecord

	Duration       time.Duration
	Curve          func(float64) float64
	EnableMorphing bool
	UseElevation   bool
	Path           *geometry.Path
	OnComplete     func()

	// Optimization is attached by the coordinator after creation.
	Optimization TransitionOptimization

	state       TransitionState
	controller  *animation.AnimationController
	registry    *Registry
	pendingTick *animation.Ticker // stagger delay, nil once started
	onFinished  func(*SharedElementTransition)
}

// State returns the transition's lifecycle state.
func (t *SharedElementTransition) State() TransitionState {
	return t.state
}

// Controller returns the transition's animation controller, nil until Start.
func (t *SharedElementTransition) Controller() *animation.AnimationController {
	return t.controller
}

// EffectiveDuration returns the optimized duration when the coordinator set
// one, otherwise the planned duration.
func (t *SharedElementTransition) EffectiveDuration() time.Duration {
	if t.Optimization.OptimizedDuration > 0 {
		return t.Optimization.OptimizedDuration
	}
	return t.Duration
}

// Start begins the flight. No-op unless the transition is Idle.
func (t *SharedElementTransition) Start() {
	if t.state != TransitionIdle {
		return
	}
	if t.pendingTick != nil {
		t.pendingTick.Stop()
		t.pendingTick = nil
	}
	t.state = TransitionActive

	t.controller = animation.NewAnimationController(t.EffectiveDuration())
	if t.Curve != nil {
		t.controller.Curve = t.Curve
	}
	t.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted {
			t.complete()
		}
	})
	t.controller.Forward()
}

// Cancel stops the flight without invoking OnComplete. No-op unless Active.
// Idempotent: a second call (or a call on a never-started transition) does
// nothing.
func (t *SharedElementTransition) Cancel() {
	if t.pendingTick != nil {
		t.pendingTick.Stop()
		t.pendingTick = nil
	}
	if t.state != TransitionActive {
		return
	}
	t.state = TransitionCancelled
	t.teardown()
}

func (t *SharedElementTransition) complete() {
	if t.state != TransitionActive {
		return
	}
	t.state = TransitionCompleted
	onComplete := t.OnComplete
	t.teardown()
	if onComplete != nil {
		onComplete()
	}
}

// teardown stops the clock, deactivates the id, and clears the optimization
// annotation. Shared by both terminal paths.
func (t *SharedElementTransition) teardown() {
	if t.controller != nil {
		t.controller.Stop()
	}
	if t.registry != nil {
		t.registry.Deactivate(t.ID)
	}
	t.Optimization = TransitionOptimization{}
	if t.onFinished != nil {
		t.onFinished(t)
	}
}

// Manager owns the set of in-flight transitions and enforces the one-flight-
// per-id invariant.
type Manager struct {
	registry *Registry
	active   map[string]*SharedElementTransition
}

// NewManager creates a manager backed by the given registry.
func NewManager(registry *Registry) *Manager {
	return &Manager{
		registry: registry,
		active:   make(map[string]*SharedElementTransition),
	}
}

var defaultManager = NewManager(DefaultRegistry())

// DefaultManager returns the process-wide manager backed by [DefaultRegistry].
func DefaultManager() *Manager {
	return defaultManager
}

// CreateTransition plans a flight for id from sourceScreen to targetScreen.
//
// If id is already in flight the existing transition is returned unchanged;
// requesting a duplicate is a normal occurrence, not an error. Returns nil
// when no source record exists for id, which callers treat as "nothing to
// animate". A nil opts uses [DefaultTransitionOptions].
func (m *Manager) CreateTransition(sourceScreen, targetScreen core.ScreenContext, id string, opts *TransitionOptions) *SharedElementTransition {
	if existing, ok := m.active[id]; ok {
		return existing
	}

	source := m.registry.lookup(sourceScreen, id)
	if source == nil {
		return nil
	}
	target := m.registry.lookup(targetScreen, id)

	if opts == nil {
		opts = DefaultTransitionOptions()
	}

	t := &SharedElementTransition{
		ID:             id,
		Source:         source,
		Target:         target,
		Duration:       opts.Duration,
		Curve:          opts.Curve,
		EnableMorphing: opts.EnableMorphing,
		UseElevation:   opts.UseElevation,
		Path:           opts.Path,
		OnComplete:     opts.OnComplete,
		registry:       m.registry,
	}
	t.onFinished = func(tr *SharedElementTransition) {
		if m.active[tr.ID] == tr {
			delete(m.active, tr.ID)
		}
	}

	m.active[id] = t
	m.registry.Activate(id)
	return t
}

// CreateMultiElementTransition plans one transition per id. When
// staggerDelay is positive each transition's Start is scheduled at
// i*staggerDelay after this call, in slice order, producing a cascading
// flight; with a zero delay the caller starts the batch itself.
//
// onAllComplete fires exactly once, when the last transition of the batch
// completes naturally.
func (m *Manager) CreateMultiElementTransition(sourceScreen, targetScreen core.ScreenContext, ids []string, staggerDelay time.Duration, opts *TransitionOptions, onAllComplete func()) []*SharedElementTransition {
	if opts == nil {
		opts = DefaultTransitionOptions()
	}

	transitions := make([]*SharedElementTransition, 0, len(ids))
	for _, id := range ids {
		perElement := *opts
		t := m.CreateTransition(sourceScreen, targetScreen, id, &perElement)
		if t != nil {
			transitions = append(transitions, t)
		}
	}

	if len(transitions) == 0 {
		if onAllComplete != nil {
			onAllComplete()
		}
		return transitions
	}

	// Shared completion counter across the batch.
	remaining := len(transitions)
	for _, t := range transitions {
		userComplete := t.OnComplete
		t.OnComplete = func() {
			if userComplete != nil {
				userComplete()
			}
			remaining--
			if remaining == 0 && onAllComplete != nil {
				onAllComplete()
			}
		}
	}

	if staggerDelay > 0 {
		for i, t := range transitions {
			if i == 0 {
				t.Start()
				continue
			}
			tr := t
			tr.pendingTick = animation.After(time.Duration(i)*staggerDelay, func() {
				tr.pendingTick = nil
				tr.Start()
			})
		}
	}

	return transitions
}

// CancelTransition cancels the in-flight transition for id, if any: the
// clock stops, the id deactivates, optimization metadata clears, and the
// completion callback is not invoked. Safe to call for unknown ids.
func (m *Manager) CancelTransition(id string) {
	t, ok := m.active[id]
	if !ok {
		return
	}
	delete(m.active, id)
	t.Cancel()
	// A transition still waiting on its stagger delay never became Active;
	// Cancel only stopped its pending ticker. Deactivate it here so the
	// registry does not leak the id.
	if t.state == TransitionIdle {
		t.state = TransitionCancelled
		m.registry.Deactivate(id)
	}
}

// CancelAllTransitions cancels every in-flight transition.
func (m *Manager) CancelAllTransitions() {
	for id := range m.active {
		m.CancelTransition(id)
	}
}

// IsTransitioning reports whether id currently has a transition (including
// one still waiting on its stagger delay).
func (m *Manager) IsTransitioning(id string) bool {
	_, ok := m.active[id]
	return ok
}

// ActiveCount returns the number of owned transitions.
func (m *Manager) ActiveCount() int {
	return len(m.active)
}
