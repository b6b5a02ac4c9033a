package effect

import (
	"math"

	"github.com/go-drift/motion/pkg/geometry"
)

// ClipShape selects the geometry of a clip reveal.
type ClipShape int

const (
	// ClipCircle reveals content through a circle growing from the center.
	ClipCircle ClipShape = iota
	// ClipRectCenter reveals content through a rectangle growing from the center.
	ClipRectCenter
	// ClipRectLeading reveals content with a wipe from the leading edge.
	ClipRectLeading
	// ClipRectTrailing reveals content with a wipe from the trailing edge.
	ClipRectTrailing
)

// ClipReveal progressively unclips content as the transition runs. All clip
// geometry is expressed in unit coordinates relative to the widget bounds,
// so the effect needs no knowledge of layout.
type ClipReveal struct {
	Timing
	Shape ClipShape
	// Origin is the reveal center in unit coordinates (default 0.5, 0.5).
	// Only used by ClipCircle and ClipRectCenter.
	Origin geometry.Offset
}

// Name identifies the effect.
func (ClipReveal) Name() string { return "clip_reveal" }

// Apply sets the clip for the current progress. At progress 1 the clip is
// removed entirely so fully revealed content pays no clip cost.
func (c ClipReveal) Apply(t float64, props *RenderProps) {
	p := c.Progress(t)
	if p >= 1 {
		return
	}

	origin := c.Origin
	if origin == (geometry.Offset{}) {
		origin = geometry.Offset{X: 0.5, Y: 0.5}
	}

	switch c.Shape {
	case ClipCircle:
		props.ClipPath = circlePath(origin, p*coveringRadius(origin))
		props.ClipRect = nil
	case ClipRectCenter:
		half := p * 0.5
		rect := geometry.Rect{
			Left:   origin.X - half,
			Top:    origin.Y - half,
			Right:  origin.X + half,
			Bottom: origin.Y + half,
		}
		props.ClipRect = &rect
	case ClipRectLeading:
		rect := geometry.RectFromLTWH(0, 0, p, 1)
		props.ClipRect = &rect
	case ClipRectTrailing:
		rect := geometry.RectFromLTWH(1-p, 0, p, 1)
		props.ClipRect = &rect
	}
}

// coveringRadius returns the radius needed to cover the unit square from origin.
func coveringRadius(origin geometry.Offset) float64 {
	dx := math.Max(origin.X, 1-origin.X)
	dy := math.Max(origin.Y, 1-origin.Y)
	return math.Hypot(dx, dy)
}

// kappa is the cubic bezier circle approximation constant.
const kappa = 0.5522847498

// circlePath approximates a circle with four cubic bezier segments.
func circlePath(center geometry.Offset, radius float64) *geometry.Path {
	if radius <= 0 {
		// Degenerate clip hides everything.
		p := geometry.NewPath()
		p.MoveTo(center.X, center.Y)
		p.Close()
		return p
	}
	k := radius * kappa
	p := geometry.NewPath()
	p.MoveTo(center.X+radius, center.Y)
	p.CubicTo(center.X+radius, center.Y+k, center.X+k, center.Y+radius, center.X, center.Y+radius)
	p.CubicTo(center.X-k, center.Y+radius, center.X-radius, center.Y+k, center.X-radius, center.Y)
	p.CubicTo(center.X-radius, center.Y-k, center.X-k, center.Y-radius, center.X, center.Y-radius)
	p.CubicTo(center.X+k, center.Y-radius, center.X+radius, center.Y-k, center.X+radius, center.Y)
	p.Close()
	return p
}
