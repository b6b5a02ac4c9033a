package animation_test

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/motiontest"
)

func TestAnimationController_ForwardCompletes(t *testing.T) {
	env := motiontest.NewEnv(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	if c.Status() != animation.AnimationForward {
		t.Fatalf("expected forward status, got %v", c.Status())
	}

	env.Frame(50 * time.Millisecond)
	if c.Value <= 0 || c.Value >= 1 {
		t.Errorf("expected mid-flight value, got %v", c.Value)
	}

	env.Frame(60 * time.Millisecond)
	if c.Status() != animation.AnimationCompleted {
		t.Errorf("expected completed, got %v", c.Status())
	}
	if c.Value != 1 {
		t.Errorf("expected value 1, got %v", c.Value)
	}
}

func TestAnimationController_Reverse(t *testing.T) {
	env := motiontest.NewEnv(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	env.Frame(200 * time.Millisecond)

	c.Reverse()
	env.Frame(200 * time.Millisecond)
	if c.Status() != animation.AnimationDismissed {
		t.Errorf("expected dismissed, got %v", c.Status())
	}
	if c.Value != 0 {
		t.Errorf("expected value 0, got %v", c.Value)
	}
}

func TestAnimationController_StatusListener(t *testing.T) {
	env := motiontest.NewEnv(t)
	c := animation.NewAnimationController(50 * time.Millisecond)
	defer c.Dispose()

	var statuses []animation.AnimationStatus
	c.AddStatusListener(func(s animation.AnimationStatus) {
		statuses = append(statuses, s)
	})

	c.Forward()
	env.Frame(100 * time.Millisecond)

	if len(statuses) != 2 ||
		statuses[0] != animation.AnimationForward ||
		statuses[1] != animation.AnimationCompleted {
		t.Errorf("unexpected status sequence %v", statuses)
	}
}

func TestAfter_FiresOnceAfterDelay(t *testing.T) {
	env := motiontest.NewEnv(t)

	fired := 0
	animation.After(100*time.Millisecond, func() { fired++ })

	env.Frame(50 * time.Millisecond)
	if fired != 0 {
		t.Fatal("callback fired before the delay elapsed")
	}

	env.Frame(60 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected one firing, got %d", fired)
	}

	// The ticker stopped itself; further frames must not re-fire.
	env.Pump(3, 100*time.Millisecond)
	if fired != 1 {
		t.Errorf("callback re-fired, count %d", fired)
	}
}

func TestAfter_Cancel(t *testing.T) {
	env := motiontest.NewEnv(t)

	fired := false
	ticker := animation.After(100*time.Millisecond, func() { fired = true })
	ticker.Stop()

	env.Pump(3, 100*time.Millisecond)
	if fired {
		t.Error("cancelled callback still fired")
	}
}

func TestHasActiveTickers_DrainsOnCompletion(t *testing.T) {
	env := motiontest.NewEnv(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	c.Forward()
	if !animation.HasActiveTickers() {
		t.Fatal("expected an active ticker while animating")
	}

	if !env.Settle(16*time.Millisecond, c.IsCompleted) {
		t.Fatal("animation never settled")
	}
	if animation.HasActiveTickers() {
		t.Error("expected the ticker pool drained after completion")
	}
}

func TestCurvedAnimation_Interval(t *testing.T) {
	parent := animation.NewAnimationController(time.Second)
	defer parent.Dispose()
	interval := animation.NewIntervalAnimation(parent, 0.5, 1.0, nil)

	parent.Value = 0.25
	if interval.CurrentValue() != 0 {
		t.Errorf("expected 0 before the interval, got %v", interval.CurrentValue())
	}

	parent.Value = 0.75
	if interval.CurrentValue() != 0.5 {
		t.Errorf("expected 0.5 mid-interval, got %v", interval.CurrentValue())
	}

	parent.Value = 1
	if interval.CurrentValue() != 1 {
		t.Errorf("expected 1 past the interval, got %v", interval.CurrentValue())
	}
}

func TestCurvedAnimation_AppliesCurve(t *testing.T) {
	parent := animation.NewAnimationController(time.Second)
	defer parent.Dispose()
	curved := animation.NewCurvedAnimation(parent, func(v float64) float64 { return v * v })

	parent.Value = 0.5
	if curved.CurrentValue() != 0.25 {
		t.Errorf("expected squared value 0.25, got %v", curved.CurrentValue())
	}
}

func TestTweenRect(t *testing.T) {
	env := motiontest.NewEnv(t)
	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()
	c.Curve = animation.LinearCurve

	tween := animation.TweenRect(
		geometry.RectFromLTWH(0, 0, 100, 100),
		geometry.RectFromLTWH(100, 100, 200, 200),
	)

	c.Forward()
	env.Frame(50 * time.Millisecond)

	got := tween.Transform(c)
	if got.Left != 50 || got.Top != 50 {
		t.Errorf("expected midpoint origin (50,50), got (%v,%v)", got.Left, got.Top)
	}
}

func TestFromEase_Endpoints(t *testing.T) {
	curve := animation.FlightCurve
	if curve(0) != 0 {
		t.Errorf("expected curve(0)=0, got %v", curve(0))
	}
	if curve(1) != 1 {
		t.Errorf("expected curve(1)=1, got %v", curve(1))
	}
}
