package transition

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/effect"
)

func TestBuilder_ComposesEffects(t *testing.T) {
	rt := NewBuilder().
		SlideFrom(effect.SlideFromRight, 400).
		Fade(0, 1).
		Build()

	if len(rt.Effects) != 2 {
		t.Fatalf("expected 2 effects, got %d", len(rt.Effects))
	}
	if rt.Effects[0].Name() != "slide" || rt.Effects[1].Name() != "fade" {
		t.Errorf("unexpected effect order: %s, %s",
			rt.Effects[0].Name(), rt.Effects[1].Name())
	}
	if rt.Duration != DefaultDuration {
		t.Errorf("expected default duration, got %v", rt.Duration)
	}
}

func TestBuilder_Frame(t *testing.T) {
	rt := NewBuilder().
		SlideFrom(effect.SlideFromRight, 400).
		Fade(0, 1).
		Build()

	props := rt.Frame(0.5)
	if props.Offset.X != 200 {
		t.Errorf("expected offset 200 mid-transition, got %v", props.Offset.X)
	}
	if props.Opacity != 0.5 {
		t.Errorf("expected opacity 0.5 mid-transition, got %v", props.Opacity)
	}
}

func TestBuilder_During(t *testing.T) {
	rt := NewBuilder().
		Fade(0, 1).During(0.5, 1).
		Build()

	// Before the window, the fade holds its start value.
	props := rt.Frame(0.25)
	if props.Opacity != 0 {
		t.Errorf("expected opacity 0 before the window, got %v", props.Opacity)
	}
	props = rt.Frame(1)
	if props.Opacity != 1 {
		t.Errorf("expected opacity 1 at the end, got %v", props.Opacity)
	}
}

func TestBuilder_EasedBy(t *testing.T) {
	rt := NewBuilder().
		Fade(0, 1).EasedBy(func(v float64) float64 { return v * v }).
		Build()

	props := rt.Frame(0.5)
	if props.Opacity != 0.25 {
		t.Errorf("expected eased opacity 0.25, got %v", props.Opacity)
	}
}

func TestBuilder_ModifiersOnEmptyChain(t *testing.T) {
	// Timing modifiers on an empty chain must not panic.
	rt := NewBuilder().During(0, 0.5).EasedBy(nil).Build()
	if len(rt.Effects) != 0 {
		t.Errorf("expected no effects, got %d", len(rt.Effects))
	}
}

func TestBuilder_BuildCopiesEffects(t *testing.T) {
	b := NewBuilder().Fade(0, 1)
	first := b.Build()
	b.Scale(0.5, 1)
	second := b.Build()

	if len(first.Effects) != 1 {
		t.Errorf("first build mutated by later chaining: %d effects", len(first.Effects))
	}
	if len(second.Effects) != 2 {
		t.Errorf("expected 2 effects in second build, got %d", len(second.Effects))
	}
}

func TestBuilder_DurationAndCurve(t *testing.T) {
	curve := func(v float64) float64 { return v * v }
	rt := NewBuilder().
		Fade(0, 1).
		Duration(250 * time.Millisecond).
		Curve(curve).
		Build()

	if rt.Duration != 250*time.Millisecond {
		t.Errorf("expected 250ms, got %v", rt.Duration)
	}
	// The overall curve eases the clock before effects run.
	props := rt.Frame(0.5)
	if props.Opacity != 0.25 {
		t.Errorf("expected curved opacity 0.25, got %v", props.Opacity)
	}
}

func TestRouteTransition_NewController(t *testing.T) {
	rt := NewBuilder().Fade(0, 1).Duration(123 * time.Millisecond).Build()
	c := rt.NewController()
	defer c.Dispose()

	if c.Duration != 123*time.Millisecond {
		t.Errorf("expected controller duration 123ms, got %v", c.Duration)
	}
}
