// Package transition composes effects into route transitions.
//
// A [RouteTransition] is an ordered effect chain plus a duration and curve.
// Build one fluently:
//
//	push := transition.NewBuilder().
//	    SlideFrom(effect.SlideFromRight, screenWidth).
//	    Fade(0.4, 1).
//	    Duration(350 * time.Millisecond).
//	    Curve(animation.IOSNavigationCurve).
//	    Build()
//
// then drive it with an [animation.AnimationController] (see [PageTransition])
// and render the widget with the props from Frame each tick.
//
// Transitions can also be loaded from YAML preset files; see [LoadConfig].
package transition

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/effect"
	"github.com/go-drift/motion/pkg/geometry"
)

// DefaultDuration is the duration used when a builder does not set one.
const DefaultDuration = 450 * time.Millisecond

// RouteTransition is an immutable, composed page transition.
type RouteTransition struct {
	// Effects are applied in order to each frame's props.
	Effects []effect.Effect
	// Duration is the transition length.
	Duration time.Duration
	// Curve eases the overall clock before effects apply their own timing.
	Curve func(float64) float64
}

// Frame evaluates the transition at overall progress t, returning the props
// the host should render the page with.
func (rt *RouteTransition) Frame(t float64) effect.RenderProps {
	if rt.Curve != nil {
		t = rt.Curve(t)
	}
	props := effect.NewRenderProps()
	for _, e := range rt.Effects {
		e.Apply(t, &props)
	}
	return props
}

// NewController creates an animation controller matching the transition's
// duration. The curve is left linear because Frame applies rt.Curve itself.
func (rt *RouteTransition) NewController() *animation.AnimationController {
	return animation.NewAnimationController(rt.Duration)
}

// Builder assembles a RouteTransition through a fluent chain. Each chained
// effect method appends one effect; Timing modifiers (During, EasedBy) apply
// to the most recently added effect.
type Builder struct {
	effects  []effect.Effect
	duration time.Duration
	curve    func(float64) float64
}

// NewBuilder returns an empty builder with the default duration.
func NewBuilder() *Builder {
	return &Builder{duration: DefaultDuration}
}

// Fade appends an opacity effect from from to to.
func (b *Builder) Fade(from, to float64) *Builder {
	b.effects = append(b.effects, effect.Fade{From: from, To: to})
	return b
}

// SlideFrom appends a slide entering from the given direction over distance
// pixels.
func (b *Builder) SlideFrom(direction effect.SlideDirection, distance float64) *Builder {
	b.effects = append(b.effects, effect.Slide{Direction: direction, Distance: distance})
	return b
}

// Scale appends a uniform scale effect from from to to.
func (b *Builder) Scale(from, to float64) *Builder {
	b.effects = append(b.effects, effect.Scale{From: from, To: to})
	return b
}

// Rotate appends a rotation effect measured in turns.
func (b *Builder) Rotate(fromTurns, toTurns float64) *Builder {
	b.effects = append(b.effects, effect.Rotate{FromTurns: fromTurns, ToTurns: toTurns})
	return b
}

// Blur appends a gaussian blur effect animating between sigmas.
func (b *Builder) Blur(from, to float64) *Builder {
	b.effects = append(b.effects, effect.Blur{From: from, To: to})
	return b
}

// RevealCircle appends a circular clip reveal growing from the widget center.
func (b *Builder) RevealCircle() *Builder {
	b.effects = append(b.effects, effect.ClipReveal{Shape: effect.ClipCircle})
	return b
}

// Parallax appends a background lag against the given slide.
func (b *Builder) Parallax(direction effect.SlideDirection, distance, depth float64) *Builder {
	b.effects = append(b.effects, effect.Parallax{Direction: direction, Distance: distance, Depth: depth})
	return b
}

// FollowPath appends motion along a custom path.
func (b *Builder) FollowPath(path *geometry.Path) *Builder {
	b.effects = append(b.effects, &effect.PathMotion{Path: path})
	return b
}

// With appends an arbitrary effect.
func (b *Builder) With(e effect.Effect) *Builder {
	b.effects = append(b.effects, e)
	return b
}

// During windows the most recently added effect to the [begin, end] slice of
// the transition. No-op on an empty chain.
func (b *Builder) During(begin, end float64) *Builder {
	if len(b.effects) == 0 {
		return b
	}
	last := len(b.effects) - 1
	b.effects[last] = retime(b.effects[last], func(tm *effect.Timing) {
		tm.Begin = begin
		tm.End = end
	})
	return b
}

// EasedBy sets the easing curve of the most recently added effect.
// No-op on an empty chain.
func (b *Builder) EasedBy(curve func(float64) float64) *Builder {
	if len(b.effects) == 0 {
		return b
	}
	last := len(b.effects) - 1
	b.effects[last] = retime(b.effects[last], func(tm *effect.Timing) {
		tm.Curve = curve
	})
	return b
}

// Duration sets the transition duration.
func (b *Builder) Duration(d time.Duration) *Builder {
	b.duration = d
	return b
}

// Curve sets the overall easing applied before per-effect timing.
func (b *Builder) Curve(curve func(float64) float64) *Builder {
	b.curve = curve
	return b
}

// Build finalizes the chain. The builder remains usable; Build copies the
// effect slice so later chaining does not mutate built transitions.
func (b *Builder) Build() *RouteTransition {
	effects := make([]effect.Effect, len(b.effects))
	copy(effects, b.effects)
	return &RouteTransition{
		Effects:  effects,
		Duration: b.duration,
		Curve:    b.curve,
	}
}

// retime rewrites the Timing of a known effect type via mutate.
func retime(e effect.Effect, mutate func(*effect.Timing)) effect.Effect {
	switch v := e.(type) {
	case effect.Fade:
		mutate(&v.Timing)
		return v
	case effect.Slide:
		mutate(&v.Timing)
		return v
	case effect.Scale:
		mutate(&v.Timing)
		return v
	case effect.Rotate:
		mutate(&v.Timing)
		return v
	case effect.Shear:
		mutate(&v.Timing)
		return v
	case effect.Blur:
		mutate(&v.Timing)
		return v
	case effect.Tint:
		mutate(&v.Timing)
		return v
	case effect.ClipReveal:
		mutate(&v.Timing)
		return v
	case effect.Parallax:
		mutate(&v.Timing)
		return v
	case *effect.PathMotion:
		mutate(&v.Timing)
		return v
	default:
		return e
	}
}
