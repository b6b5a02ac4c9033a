package animation

import "github.com/tanema/gween/ease"

// FromEase adapts a gween/ease easing function into a curve usable by
// [AnimationController] and [CurvedAnimation]. The gween functions take
// (time, begin, change, duration); normalizing all of those to the unit
// range turns them into plain progress curves.
func FromEase(fn ease.TweenFunc) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// FlightCurve is the default easing for shared-element flights: a cubic
// ease-in-out that accelerates out of the source position and settles into
// the target.
var FlightCurve = FromEase(ease.InOutCubic)

// GradualMorphCurve eases the intermediate frames of a gradual aspect-ratio
// morph (see the sharedelement analyzer).
var GradualMorphCurve = FromEase(ease.InOutCubic)
