package animation

// Animation is a read-only view of an animated value and its status.
// [AnimationController] is the root implementation; [CurvedAnimation]
// derives further animations from a parent.
type Animation interface {
	// CurrentValue returns the animated value, normally in [0, 1].
	CurrentValue() float64
	// Status returns the animation status.
	Status() AnimationStatus
}

// CurrentValue returns the controller's current value, satisfying [Animation].
func (c *AnimationController) CurrentValue() float64 {
	return c.Value
}

// CurvedAnimation derives a sub-animation from a parent by applying an easing
// curve and an optional interval window.
//
// The interval maps parent progress [Begin, End] onto [0, 1]: the derived
// value stays at 0 until the parent reaches Begin and clamps to 1 after End.
// This is how a shared-element flight eases independently while nested inside
// the host page-transition clock, and how staggered batch members occupy
// successive slices of one episode.
type CurvedAnimation struct {
	// Parent supplies the raw progress.
	Parent Animation
	// Curve eases the windowed progress (optional).
	Curve func(float64) float64
	// Begin is the parent value at which this animation starts (default 0).
	Begin float64
	// End is the parent value at which this animation completes (default 1).
	End float64
}

// NewCurvedAnimation derives a curved animation spanning the parent's full range.
func NewCurvedAnimation(parent Animation, curve func(float64) float64) *CurvedAnimation {
	return &CurvedAnimation{Parent: parent, Curve: curve, Begin: 0, End: 1}
}

// NewIntervalAnimation derives an animation active only while the parent's
// value is inside [begin, end].
func NewIntervalAnimation(parent Animation, begin, end float64, curve func(float64) float64) *CurvedAnimation {
	return &CurvedAnimation{Parent: parent, Curve: curve, Begin: begin, End: end}
}

// CurrentValue returns the windowed, eased value in [0, 1].
func (a *CurvedAnimation) CurrentValue() float64 {
	t := a.Parent.CurrentValue()
	begin, end := a.Begin, a.End
	if end <= begin {
		end = begin + 1
	}
	t = (t - begin) / (end - begin)
	t = clampUnit(t)
	if a.Curve != nil {
		t = a.Curve(t)
	}
	return t
}

// Status mirrors the parent's status, except that a forward-running parent
// reports completed once the interval is exhausted and dismissed before the
// interval begins.
func (a *CurvedAnimation) Status() AnimationStatus {
	status := a.Parent.Status()
	if status != AnimationForward {
		return status
	}
	t := a.Parent.CurrentValue()
	if t >= a.End {
		return AnimationCompleted
	}
	if t < a.Begin {
		return AnimationDismissed
	}
	return AnimationForward
}
