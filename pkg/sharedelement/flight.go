package sharedelement

import (
	stderrors "errors"
	"math"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/effect"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/geometry"
)

// FlightElevation is the shadow depth an elevated flight reaches at its
// destination, in pixels.
const FlightElevation = 8.0

// FlightFrame is one frame of an in-flight element, ready for the host to
// paint in the overlay layer above both pages.
type FlightFrame struct {
	// ID is the shared element id.
	ID string
	// Widget is the content to paint: the source widget, its rasterized
	// stand-in, or the simplified placeholder.
	Widget core.Widget
	// Rect is the widget's screen-space box this frame.
	Rect geometry.Rect
	// Transform morphs a source-sized box onto Rect. Identity when
	// morphing is disabled.
	Transform geometry.Matrix
	// Props carries opacity, elevation, blur, and clip state accumulated
	// from the flight and its extra effects.
	Props effect.RenderProps
}

// FlightOverlay evaluates the per-frame geometry of one shared-element
// flight. The host inserts it in the overlay layer on Start and calls Frame
// each tick until Done reports true.
type FlightOverlay struct {
	// Transition is the flight being rendered. Required.
	Transition *SharedElementTransition
	// Parent optionally nests the flight inside an outer clock (the page
	// transition). When nil the transition's own controller drives it.
	Parent animation.Animation
	// Bounds is the clipping container, used by the hard-clip and
	// scale-clip optimizations. Optional.
	Bounds geometry.Rect
	// Effects are extra per-frame effects composed on top of the flight
	// (a tint, a blur).
	Effects []effect.Effect

	anim     animation.Animation
	source   geometry.Rect
	target   geometry.Rect
	metrics  *geometry.PathMetrics
	pin      *geometry.Offset
	hidden   bool
	restored bool
}

// NewFlightOverlay prepares an overlay for the transition. Path metrics are
// computed once here; a degenerate custom path is reported and the element
// stays parked at the path's origin with no motion.
func NewFlightOverlay(t *SharedElementTransition) *FlightOverlay {
	f := &FlightOverlay{Transition: t}
	f.source = t.Source.SourceRect
	f.target = f.source
	if t.Target != nil {
		f.target = t.Target.SourceRect
	} else if t.Source.TargetRect != nil {
		f.target = *t.Source.TargetRect
	}

	if t.Path != nil {
		metrics := geometry.NewPathMetrics(t.Path)
		if metrics.IsDegenerate() {
			errors.Report(&errors.MotionError{
				Op:        "sharedelement.NewFlightOverlay",
				Kind:      errors.KindPath,
				Err:       stderrors.New("flight path has no length"),
				ElementID: t.ID,
			})
			start := t.Path.Start()
			if t.Path.IsEmpty() {
				start = f.source.Center()
			}
			f.pin = &start
		} else {
			f.metrics = metrics
		}
	}
	return f
}

// Start hides the original instances and starts the transition clock if the
// caller has not already. Idempotent.
func (f *FlightOverlay) Start() {
	t := f.Transition
	if !f.hidden {
		f.hidden = true
		if t.Source.Hide != nil {
			t.Source.Hide.SetHidden(true)
		}
		if t.Target != nil && t.Target.Hide != nil {
			t.Target.Hide.SetHidden(true)
		}
	}

	if t.State() == TransitionIdle {
		t.Start()
	}
	if f.Parent != nil {
		f.anim = animation.NewCurvedAnimation(f.Parent, t.Curve)
	} else {
		f.anim = t.Controller()
	}
}

// Done reports whether the flight has reached a terminal state. Once done the
// originals have been restored and Frame keeps returning the final frame.
func (f *FlightOverlay) Done() bool {
	if f.anim == nil {
		return f.Transition.State() == TransitionCompleted ||
			f.Transition.State() == TransitionCancelled
	}
	status := f.anim.Status()
	return status == animation.AnimationCompleted || status == animation.AnimationDismissed
}

// Frame evaluates the overlay at the current clock value. It is safe to call
// before Start (returns the element parked at its source) and after the
// flight ends (returns the element at its destination).
func (f *FlightOverlay) Frame() FlightFrame {
	t := 0.0
	if f.anim != nil {
		t = f.anim.CurrentValue()
	}
	if f.Done() {
		f.restore()
	}

	tr := f.Transition
	rect := f.rectAt(t)
	props := effect.NewRenderProps()

	transform := geometry.IdentityMatrix()
	if tr.EnableMorphing {
		transform = morphTransform(f.source.Size(), rect)
	}

	if tr.UseElevation {
		// Shadow depth ramps up as the element lifts toward the incoming page.
		props.Elevation = FlightElevation * t
	}

	f.applyClipping(t, rect, &props)

	for _, e := range f.Effects {
		e.Apply(t, &props)
	}

	return FlightFrame{
		ID:        tr.ID,
		Widget:    f.widget(),
		Rect:      rect,
		Transform: transform,
		Props:     props,
	}
}

// rectAt returns the flight box at progress t: size always interpolates
// linearly, the center follows the custom path when one is set. A pinned
// flight (degenerate path) holds its source-sized box at the pin point.
func (f *FlightOverlay) rectAt(t float64) geometry.Rect {
	if f.pin != nil {
		return geometry.RectFromCenter(*f.pin, f.source.Size())
	}
	if f.metrics == nil {
		return geometry.LerpRect(f.source, f.target, t)
	}
	center, _ := f.metrics.PositionAt(t * f.metrics.Length())
	size := geometry.LerpSize(f.source.Size(), f.target.Size(), t)
	return geometry.RectFromCenter(center, size)
}

// widget returns the content to paint: the coordinator's placeholder when
// geometry was simplified, otherwise the source widget.
func (f *FlightOverlay) widget() core.Widget {
	if f.Transition.Optimization.Placeholder != nil {
		return f.Transition.Optimization.Placeholder
	}
	return f.Transition.Source.Widget
}

// applyClipping folds the coordinator's clip decision into the frame props.
func (f *FlightOverlay) applyClipping(t float64, rect geometry.Rect, props *effect.RenderProps) {
	opt := f.Transition.Optimization
	switch {
	case opt.HardClip && !f.Bounds.IsEmpty():
		visible := rect.Intersect(f.Bounds)
		if visible.IsEmpty() || rect.IsEmpty() {
			props.Opacity = 0
			return
		}
		// Unit coordinates relative to the flight box.
		unit := geometry.Rect{
			Left:   (visible.Left - rect.Left) / rect.Width(),
			Top:    (visible.Top - rect.Top) / rect.Height(),
			Right:  (visible.Right - rect.Left) / rect.Width(),
			Bottom: (visible.Bottom - rect.Top) / rect.Height(),
		}
		props.ClipRect = &unit
	case opt.FadeClip:
		// Fade through the clipped portion of the journey rather than
		// cutting content at a hard edge.
		clipping := f.Transition.Optimization.Clipping
		switch clipping {
		case ClipSource:
			props.Opacity *= clampUnit(t / fadeClipWindow)
		case ClipTarget:
			props.Opacity *= clampUnit((1 - t) / fadeClipWindow)
		}
	case opt.ScaleClip && !f.Bounds.IsEmpty():
		if fit := fitScale(rect, f.Bounds); fit < 1 {
			props.ScaleX *= fit
			props.ScaleY *= fit
		}
	}
}

// fadeClipWindow is the fraction of the flight spent fading near a clipped end.
const fadeClipWindow = 0.3

// fitScale returns the uniform scale (≤ 1) that fits rect inside bounds.
func fitScale(rect, bounds geometry.Rect) float64 {
	if rect.IsEmpty() {
		return 1
	}
	fit := 1.0
	if rect.Width() > bounds.Width() {
		fit = math.Min(fit, bounds.Width()/rect.Width())
	}
	if rect.Height() > bounds.Height() {
		fit = math.Min(fit, bounds.Height()/rect.Height())
	}
	return fit
}

// restore un-hides the original instances. Runs exactly once.
func (f *FlightOverlay) restore() {
	if f.restored || !f.hidden {
		return
	}
	f.restored = true
	t := f.Transition
	if t.Source.Hide != nil {
		t.Source.Hide.SetHidden(false)
	}
	if t.Target != nil && t.Target.Hide != nil {
		t.Target.Hide.SetHidden(false)
	}
}

// Stop cancels the flight and restores the originals immediately, for hosts
// tearing down the overlay mid-flight.
func (f *FlightOverlay) Stop() {
	f.Transition.Cancel()
	f.restore()
}

// morphTransform maps a box of the source's size, centered in rect, onto rect.
func morphTransform(sourceSize geometry.Size, rect geometry.Rect) geometry.Matrix {
	if sourceSize.IsEmpty() {
		return geometry.IdentityMatrix()
	}
	sx := rect.Width() / sourceSize.Width
	sy := rect.Height() / sourceSize.Height
	return geometry.ScaleAbout(sx, sy, rect.Center())
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
