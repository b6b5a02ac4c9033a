package effect

import (
	"math"
	"testing"

	"github.com/go-drift/motion/pkg/geometry"
)

func TestFade_Apply(t *testing.T) {
	props := NewRenderProps()
	Fade{From: 0, To: 1}.Apply(0.5, &props)

	if props.Opacity != 0.5 {
		t.Errorf("expected opacity 0.5, got %v", props.Opacity)
	}
}

func TestFade_Compounds(t *testing.T) {
	// Two fades multiply rather than overwrite.
	props := NewRenderProps()
	Fade{From: 0, To: 1}.Apply(0.5, &props)
	Fade{From: 1, To: 0}.Apply(0.5, &props)

	if props.Opacity != 0.25 {
		t.Errorf("expected compounded opacity 0.25, got %v", props.Opacity)
	}
}

func TestSlide_Directions(t *testing.T) {
	cases := []struct {
		direction SlideDirection
		wantX     float64
		wantY     float64
	}{
		{SlideFromRight, 200, 0},
		{SlideFromLeft, -200, 0},
		{SlideFromBottom, 0, 200},
		{SlideFromTop, 0, -200},
	}
	for _, tc := range cases {
		props := NewRenderProps()
		Slide{Direction: tc.direction, Distance: 400}.Apply(0.5, &props)
		if props.Offset.X != tc.wantX || props.Offset.Y != tc.wantY {
			t.Errorf("%v: expected offset (%v,%v), got %+v",
				tc.direction, tc.wantX, tc.wantY, props.Offset)
		}
	}
}

func TestSlide_InPlaceAtEnd(t *testing.T) {
	props := NewRenderProps()
	Slide{Direction: SlideFromRight, Distance: 400}.Apply(1, &props)

	if props.Offset != (geometry.Offset{}) {
		t.Errorf("expected zero offset at progress 1, got %+v", props.Offset)
	}
}

func TestScale_Apply(t *testing.T) {
	props := NewRenderProps()
	Scale{From: 0.5, To: 1}.Apply(0.5, &props)

	if props.ScaleX != 0.75 || props.ScaleY != 0.75 {
		t.Errorf("expected uniform scale 0.75, got %v %v", props.ScaleX, props.ScaleY)
	}
}

func TestRotate_TurnsToRadians(t *testing.T) {
	props := NewRenderProps()
	Rotate{FromTurns: 0, ToTurns: 0.5}.Apply(1, &props)

	if math.Abs(props.Rotation-math.Pi) > 1e-9 {
		t.Errorf("expected half turn = pi radians, got %v", props.Rotation)
	}
}

func TestBlur_KeepsLargerSigma(t *testing.T) {
	props := NewRenderProps()
	Blur{From: 10, To: 0}.Apply(0.5, &props)
	Blur{From: 2, To: 0}.Apply(0.5, &props)

	if props.BlurSigma != 5 {
		t.Errorf("expected the larger sigma 5 to win, got %v", props.BlurSigma)
	}
}

func TestParallax_LagsBehind(t *testing.T) {
	props := NewRenderProps()
	Parallax{Direction: SlideFromRight, Depth: 0.3, Distance: 100}.Apply(0, &props)

	if props.Offset.X != -30 {
		t.Errorf("expected lag -30, got %v", props.Offset.X)
	}

	done := NewRenderProps()
	Parallax{Direction: SlideFromRight, Depth: 0.3, Distance: 100}.Apply(1, &done)
	if done.Offset.X != 0 {
		t.Errorf("expected no lag at progress 1, got %v", done.Offset.X)
	}
}

func TestTiming_Window(t *testing.T) {
	// An effect windowed to [0.5, 1] stays at its start until halfway.
	fade := Fade{Timing: Timing{Begin: 0.5, End: 1}, From: 0, To: 1}

	props := NewRenderProps()
	fade.Apply(0.25, &props)
	if props.Opacity != 0 {
		t.Errorf("expected opacity 0 before the window, got %v", props.Opacity)
	}

	props = NewRenderProps()
	fade.Apply(0.75, &props)
	if props.Opacity != 0.5 {
		t.Errorf("expected opacity 0.5 mid-window, got %v", props.Opacity)
	}
}

func TestTiming_Curve(t *testing.T) {
	fade := Fade{
		Timing: Timing{Curve: func(v float64) float64 { return v * v }},
		From:   0,
		To:     1,
	}

	props := NewRenderProps()
	fade.Apply(0.5, &props)
	if props.Opacity != 0.25 {
		t.Errorf("expected eased opacity 0.25, got %v", props.Opacity)
	}
}

func TestClipReveal_Circle(t *testing.T) {
	props := NewRenderProps()
	ClipReveal{Shape: ClipCircle}.Apply(0.5, &props)

	if props.ClipPath == nil {
		t.Fatal("expected a clip path mid-reveal")
	}

	// Fully revealed content carries no clip.
	props = NewRenderProps()
	ClipReveal{Shape: ClipCircle}.Apply(1, &props)
	if props.ClipPath != nil || props.ClipRect != nil {
		t.Error("expected no clip at progress 1")
	}
}

func TestClipReveal_RectLeading(t *testing.T) {
	props := NewRenderProps()
	ClipReveal{Shape: ClipRectLeading}.Apply(0.25, &props)

	if props.ClipRect == nil {
		t.Fatal("expected a clip rect")
	}
	want := geometry.RectFromLTWH(0, 0, 0.25, 1)
	if *props.ClipRect != want {
		t.Errorf("expected %+v, got %+v", want, *props.ClipRect)
	}
}

func TestPathMotion_FollowsPath(t *testing.T) {
	path := geometry.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(100, 0)

	pm := &PathMotion{Path: path}
	props := NewRenderProps()
	pm.Apply(0.5, &props)

	if props.Offset != (geometry.Offset{X: 50, Y: 0}) {
		t.Errorf("expected midpoint (50,0), got %+v", props.Offset)
	}
}

func TestPathMotion_DegeneratePinsAtStart(t *testing.T) {
	path := geometry.NewPath()
	path.MoveTo(30, 40)

	pm := &PathMotion{Path: path}
	props := NewRenderProps()
	pm.Apply(0.5, &props)

	if props.Offset != (geometry.Offset{X: 30, Y: 40}) {
		t.Errorf("expected pin at path start, got %+v", props.Offset)
	}
}

func TestRenderProps_Transform(t *testing.T) {
	props := NewRenderProps()
	props.ScaleX = 2
	props.ScaleY = 2
	bounds := geometry.RectFromLTWH(0, 0, 100, 100)

	m := props.Transform(bounds)
	// The bounds center is the scale pivot.
	if got := m.Apply(geometry.Offset{X: 50, Y: 50}); got != (geometry.Offset{X: 50, Y: 50}) {
		t.Errorf("pivot moved: %+v", got)
	}
	if got := m.Apply(geometry.Offset{X: 100, Y: 50}); got != (geometry.Offset{X: 150, Y: 50}) {
		t.Errorf("expected (150,50), got %+v", got)
	}
}
