package effect

import (
	"image/color"
	"math"

	"github.com/go-drift/motion/pkg/geometry"
)

// SlideDirection determines the direction a slide effect enters from.
type SlideDirection int

const (
	// SlideFromRight slides content in from the right.
	SlideFromRight SlideDirection = iota
	// SlideFromLeft slides content in from the left.
	SlideFromLeft
	// SlideFromBottom slides content in from the bottom.
	SlideFromBottom
	// SlideFromTop slides content in from the top.
	SlideFromTop
)

// Fade interpolates opacity from From to To.
type Fade struct {
	Timing
	From float64
	To   float64
}

// Name identifies the effect.
func (Fade) Name() string { return "fade" }

// Apply multiplies the faded opacity into props.
func (f Fade) Apply(t float64, props *RenderProps) {
	props.Opacity *= f.From + (f.To-f.From)*f.Progress(t)
}

// Slide translates content in from a direction. At progress 0 the content is
// Distance pixels away in the given direction; at 1 it is in place.
type Slide struct {
	Timing
	Direction SlideDirection
	// Distance is how far the content travels, typically the screen extent
	// along the slide axis.
	Distance float64
}

// Name identifies the effect.
func (Slide) Name() string { return "slide" }

// Apply adds the remaining travel to the props offset.
func (s Slide) Apply(t float64, props *RenderProps) {
	remaining := s.Distance * (1 - s.Progress(t))
	switch s.Direction {
	case SlideFromRight:
		props.Offset.X += remaining
	case SlideFromLeft:
		props.Offset.X -= remaining
	case SlideFromBottom:
		props.Offset.Y += remaining
	case SlideFromTop:
		props.Offset.Y -= remaining
	}
}

// Scale interpolates a uniform scale about the widget center.
type Scale struct {
	Timing
	From float64
	To   float64
}

// Name identifies the effect.
func (Scale) Name() string { return "scale" }

// Apply multiplies the scale into props.
func (s Scale) Apply(t float64, props *RenderProps) {
	factor := s.From + (s.To-s.From)*s.Progress(t)
	props.ScaleX *= factor
	props.ScaleY *= factor
}

// Rotate interpolates a rotation about the widget center, measured in turns
// (1.0 = a full revolution).
type Rotate struct {
	Timing
	FromTurns float64
	ToTurns   float64
}

// Name identifies the effect.
func (Rotate) Name() string { return "rotate" }

// Apply adds the rotation to props.
func (r Rotate) Apply(t float64, props *RenderProps) {
	turns := r.FromTurns + (r.ToTurns-r.FromTurns)*r.Progress(t)
	props.Rotation += turns * 2 * math.Pi
}

// Shear interpolates a skew about the widget center.
type Shear struct {
	Timing
	FromX, ToX float64
	FromY, ToY float64
}

// Name identifies the effect.
func (Shear) Name() string { return "shear" }

// Apply adds the shear to props.
func (s Shear) Apply(t float64, props *RenderProps) {
	p := s.Progress(t)
	props.ShearX += s.FromX + (s.ToX-s.FromX)*p
	props.ShearY += s.FromY + (s.ToY-s.FromY)*p
}

// Blur interpolates a gaussian blur sigma. Entering content typically blurs
// From a positive sigma To zero.
type Blur struct {
	Timing
	From float64
	To   float64
}

// Name identifies the effect.
func (Blur) Name() string { return "blur" }

// Apply sets the larger of the current and interpolated sigma.
func (b Blur) Apply(t float64, props *RenderProps) {
	sigma := b.From + (b.To-b.From)*b.Progress(t)
	if sigma > props.BlurSigma {
		props.BlurSigma = sigma
	}
}

// Tint blends a color over the content with animated strength.
type Tint struct {
	Timing
	Color color.Color
	From  float64
	To    float64
}

// Name identifies the effect.
func (Tint) Name() string { return "tint" }

// Apply sets the tint color and interpolated strength.
func (tn Tint) Apply(t float64, props *RenderProps) {
	props.TintColor = tn.Color
	props.TintStrength = tn.From + (tn.To-tn.From)*tn.Progress(t)
}

// Parallax shifts content against the travel direction at a fraction of the
// primary slide, the classic depth cue for background layers during a push.
type Parallax struct {
	Timing
	Direction SlideDirection
	// Depth is the fraction of Distance the content lags behind (0.3 is
	// the usual background factor).
	Depth float64
	// Distance is the primary slide distance being lagged against.
	Distance float64
}

// Name identifies the effect.
func (Parallax) Name() string { return "parallax" }

// Apply offsets the content opposite the slide direction, scaled by depth.
func (p Parallax) Apply(t float64, props *RenderProps) {
	lag := p.Distance * p.Depth * (1 - p.Progress(t))
	switch p.Direction {
	case SlideFromRight:
		props.Offset.X -= lag
	case SlideFromLeft:
		props.Offset.X += lag
	case SlideFromBottom:
		props.Offset.Y -= lag
	case SlideFromTop:
		props.Offset.Y += lag
	}
}

// PathMotion moves content along a custom path instead of a straight line.
// Progress maps to arc length, so speed along the path is uniform regardless
// of how the path's control points are spaced.
type PathMotion struct {
	Timing
	Path *geometry.Path

	metrics *geometry.PathMetrics
}

// Name identifies the effect.
func (*PathMotion) Name() string { return "path" }

// Apply sets the props offset to the path position at the current arc length.
// A degenerate path pins the content at the path origin.
func (pm *PathMotion) Apply(t float64, props *RenderProps) {
	if pm.metrics == nil {
		pm.metrics = geometry.NewPathMetrics(pm.Path)
	}
	if pm.metrics.IsDegenerate() {
		start := pm.Path.Start()
		props.Offset = props.Offset.Add(start)
		return
	}
	distance := pm.metrics.Length() * pm.Progress(t)
	position, _ := pm.metrics.PositionAt(distance)
	props.Offset = props.Offset.Add(position)
}
