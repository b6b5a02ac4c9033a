// Package effect provides the composable visual effects that route
// transitions are built from.
//
// An [Effect] is a pure function from animation progress to changes on a
// [RenderProps] value. Effects do not paint; the host renders a widget with
// the accumulated props each frame. Because effects only mutate props, any
// number of them compose into a single transition (see pkg/transition).
//
// Each effect carries a [Timing] that windows and eases its own progress, so
// one transition clock can drive effects that start late, end early, or ease
// differently.
package effect

import (
	"image/color"
	"math"

	"github.com/go-drift/motion/pkg/geometry"
)

// RenderProps accumulates the renderable state produced by a chain of
// effects at one animation progress value. Hosts translate it into their
// own paint operations.
type RenderProps struct {
	// Opacity in [0, 1]. Effects multiply into it.
	Opacity float64
	// Offset is a translation applied to the widget, in pixels.
	Offset geometry.Offset
	// ScaleX and ScaleY scale the widget about its center.
	ScaleX float64
	ScaleY float64
	// Rotation is applied about the widget center, in radians.
	Rotation float64
	// ShearX and ShearY skew the widget about its center.
	ShearX float64
	ShearY float64
	// BlurSigma is a gaussian blur radius in pixels. Zero means no blur.
	BlurSigma float64
	// TintColor and TintStrength blend a color over the widget.
	TintColor    color.Color
	TintStrength float64
	// Elevation is the shadow depth in pixels.
	Elevation float64
	// ClipRect clips the widget to a rectangle in unit coordinates
	// relative to the widget bounds ((0,0,1,1) is no clip).
	ClipRect *geometry.Rect
	// ClipPath clips the widget to a path in unit coordinates. Takes
	// precedence over ClipRect when both are set.
	ClipPath *geometry.Path
}

// NewRenderProps returns props representing an untouched widget.
func NewRenderProps() RenderProps {
	return RenderProps{Opacity: 1, ScaleX: 1, ScaleY: 1}
}

// Transform composes the props' scale, rotation, and shear about the center
// of bounds, followed by the translation offset, into a single matrix.
func (p *RenderProps) Transform(bounds geometry.Rect) geometry.Matrix {
	m := geometry.TranslationMatrix(p.Offset.X, p.Offset.Y)
	center := bounds.Center()
	if p.ScaleX != 1 || p.ScaleY != 1 {
		m = m.Multiply(geometry.ScaleAbout(p.ScaleX, p.ScaleY, center))
	}
	if p.Rotation != 0 {
		sin, cos := math.Sin(p.Rotation), math.Cos(p.Rotation)
		rot := geometry.TranslationMatrix(center.X, center.Y).
			Multiply(geometry.Matrix{A: cos, B: sin, C: -sin, D: cos}).
			Multiply(geometry.TranslationMatrix(-center.X, -center.Y))
		m = m.Multiply(rot)
	}
	if p.ShearX != 0 || p.ShearY != 0 {
		shear := geometry.TranslationMatrix(center.X, center.Y).
			Multiply(geometry.Matrix{A: 1, B: p.ShearY, C: p.ShearX, D: 1}).
			Multiply(geometry.TranslationMatrix(-center.X, -center.Y))
		m = m.Multiply(shear)
	}
	return m
}

// Effect transforms render props as a function of animation progress.
// Implementations must be stateless with respect to progress: Apply with the
// same t always produces the same change.
type Effect interface {
	// Name identifies the effect for diagnostics.
	Name() string
	// Apply folds the effect at progress t (0 to 1) into props.
	Apply(t float64, props *RenderProps)
}

// Timing windows and eases an effect's share of the transition clock.
// The zero value spans the whole transition with linear easing.
type Timing struct {
	// Curve eases the windowed progress (optional).
	Curve func(float64) float64
	// Begin is the transition progress at which the effect starts.
	Begin float64
	// End is the transition progress at which the effect completes.
	// Zero means 1.
	End float64
}

// Progress maps overall transition progress onto this effect's eased local
// progress in [0, 1].
func (tm Timing) Progress(t float64) float64 {
	begin, end := tm.Begin, tm.End
	if end <= begin {
		end = 1
		if begin >= 1 {
			begin = 0
		}
	}
	t = (t - begin) / (end - begin)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	if tm.Curve != nil {
		t = tm.Curve(t)
	}
	return t
}
