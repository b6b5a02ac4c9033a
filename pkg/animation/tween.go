package animation

import (
	"github.com/go-drift/motion/pkg/geometry"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to any value range or
// type. Use the helper constructors ([TweenFloat64], [TweenOffset], [TweenSize],
// [TweenRect]) for common types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin value,
	// end value, and progress t in [0, 1]. Returns the interpolated value.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end geometry.Offset) *Tween[geometry.Offset] {
	return &Tween[geometry.Offset]{
		Begin: begin,
		End:   end,
		Lerp:  geometry.LerpOffset,
	}
}

// TweenSize creates a tween for Size values.
func TweenSize(begin, end geometry.Size) *Tween[geometry.Size] {
	return &Tween[geometry.Size]{
		Begin: begin,
		End:   end,
		Lerp:  geometry.LerpSize,
	}
}

// TweenRect creates a tween for Rect values. Each edge interpolates
// independently, matching the motion of a widget whose bounding box travels
// and resizes at once.
func TweenRect(begin, end geometry.Rect) *Tween[geometry.Rect] {
	return &Tween[geometry.Rect]{
		Begin: begin,
		End:   end,
		Lerp:  geometry.LerpRect,
	}
}
