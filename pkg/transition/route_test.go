package transition_test

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/effect"
	"github.com/go-drift/motion/pkg/geometry"
	"github.com/go-drift/motion/pkg/motiontest"
	"github.com/go-drift/motion/pkg/sharedelement"
	"github.com/go-drift/motion/pkg/transition"
)

// heroFixture sets up a list-to-detail navigation with one shared element
// registered on both screens.
type heroFixture struct {
	registry    *sharedelement.Registry
	coordinator *sharedelement.Coordinator
	list        *core.Screen
	detail      *core.Screen
	page        *transition.PageTransition
}

func newHeroFixture(t *testing.T) *heroFixture {
	t.Helper()
	registry := sharedelement.NewRegistry()
	manager := sharedelement.NewManager(registry)

	f := &heroFixture{
		registry:    registry,
		coordinator: sharedelement.NewCoordinator(registry, manager),
		list:        core.NewScreen("list"),
		detail:      core.NewScreen("detail"),
	}

	f.registry.Register("avatar",
		core.StaticGeometry(geometry.RectFromLTWH(10, 10, 50, 50)),
		f.list, core.ColorBox{})
	f.registry.Register("avatar",
		core.StaticGeometry(geometry.RectFromLTWH(100, 100, 100, 100)),
		f.detail, core.ColorBox{})
	core.FlushPostFrame()

	f.page = &transition.PageTransition{
		Enter: transition.NewBuilder().
			SlideFrom(effect.SlideFromRight, 400).
			Fade(0.4, 1).
			Duration(300 * time.Millisecond).
			Build(),
		Exit: transition.NewBuilder().
			Parallax(effect.SlideFromRight, 400, 0.3).
			Build(),
		FromScreen:  f.list,
		ToScreen:    f.detail,
		Coordinator: f.coordinator,
	}
	return f
}

func TestPageTransition_DidPushRunsEnterAndFlights(t *testing.T) {
	env := motiontest.NewEnv(t)
	f := newHeroFixture(t)

	f.page.DidPush()
	if f.page.Controller() == nil {
		t.Fatal("expected a controller after DidPush")
	}

	// Flight planning waits for the destination layout; the first frame's
	// post-frame flush triggers it.
	env.Frame(16 * time.Millisecond)
	if !f.registry.IsActive("avatar") {
		t.Error("expected the shared element in flight after the first frame")
	}
	if _, ok := f.coordinator.Profile("detail"); !ok {
		t.Error("expected an episode profile keyed by the destination screen")
	}

	// Mid-transition the incoming page is partially slid and faded.
	props := f.page.EnterFrame()
	if props.Offset.X <= 0 || props.Offset.X >= 400 {
		t.Errorf("expected partial slide, got offset %v", props.Offset.X)
	}
	if props.Opacity <= 0.4 || props.Opacity >= 1 {
		t.Errorf("expected partial fade, got opacity %v", props.Opacity)
	}
	exit := f.page.ExitFrame()
	if exit.Offset.X >= 0 {
		t.Errorf("expected the outgoing page lagging left, got %v", exit.Offset.X)
	}

	// Run the navigation to completion.
	env.Pump(30, 100*time.Millisecond)
	if f.page.Progress() != 1 {
		t.Errorf("expected progress 1, got %v", f.page.Progress())
	}
	if _, ok := f.coordinator.Profile("detail"); ok {
		t.Error("expected the episode profile released on completion")
	}
	if f.registry.IsActive("avatar") {
		t.Error("expected the shared element released on completion")
	}
}

func TestPageTransition_DidPopReverses(t *testing.T) {
	env := motiontest.NewEnv(t)
	f := newHeroFixture(t)

	f.page.DidPush()
	env.Frame(100 * time.Millisecond)

	f.page.DidPop()
	if f.page.Controller().Status() != animation.AnimationReverse {
		t.Errorf("expected reversing controller, got %v", f.page.Controller().Status())
	}
	// The pop cancels the flights rather than flying them backwards.
	if f.registry.IsActive("avatar") {
		t.Error("expected flights cancelled on pop")
	}

	env.Pump(10, 100*time.Millisecond)
	if f.page.Progress() != 0 {
		t.Errorf("expected progress back to 0, got %v", f.page.Progress())
	}
}

func TestPageTransition_DidPushIdempotent(t *testing.T) {
	env := motiontest.NewEnv(t)
	f := newHeroFixture(t)

	f.page.DidPush()
	c := f.page.Controller()
	env.Frame(16 * time.Millisecond)

	f.page.DidPush()
	if f.page.Controller() != c {
		t.Error("expected the original controller to survive a second DidPush")
	}
}

func TestPageTransition_DisposeMidFlight(t *testing.T) {
	env := motiontest.NewEnv(t)
	f := newHeroFixture(t)

	f.page.DidPush()
	env.Frame(16 * time.Millisecond)

	f.page.Dispose()
	if f.page.Controller() != nil {
		t.Error("expected the controller released on dispose")
	}
	if f.registry.IsActive("avatar") {
		t.Error("expected flights cancelled on dispose")
	}

	// Frames after disposal must not panic or restart anything.
	env.Pump(3, 100*time.Millisecond)
	if f.page.Progress() != 0 {
		t.Errorf("expected zero progress after dispose, got %v", f.page.Progress())
	}
}

func TestPageTransition_NoCoordinator(t *testing.T) {
	env := motiontest.NewEnv(t)
	page := &transition.PageTransition{
		Enter: transition.NewBuilder().
			Fade(0, 1).
			Duration(100 * time.Millisecond).
			Build(),
	}

	page.DidPush()
	env.Pump(3, 100*time.Millisecond)
	if page.Progress() != 1 {
		t.Errorf("expected plain enter transition to finish, got %v", page.Progress())
	}
	if props := page.ExitFrame(); props.Opacity != 1 {
		t.Errorf("expected untouched exit props, got %+v", props)
	}
}
