package transition

import (
	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/effect"
	"github.com/go-drift/motion/pkg/sharedelement"
)

// PageTransition drives one navigation episode: the incoming page's enter
// transition, the outgoing page's exit transition, and (optionally) the
// shared-element flights between the two screens.
//
// Hosts call DidPush when the destination route is pushed and DidPop when it
// is popped, mirroring route lifecycle hooks. Each frame they render the two
// pages with EnterFrame and ExitFrame.
type PageTransition struct {
	// Enter is applied to the incoming page. Required.
	Enter *RouteTransition
	// Exit is applied to the outgoing page (optional; nil leaves the
	// outgoing page untouched).
	Exit *RouteTransition

	// FromScreen and ToScreen identify the two screens for shared-element
	// matching. Optional; when either is nil no flights are coordinated.
	FromScreen core.ScreenContext
	ToScreen   core.ScreenContext
	// Coordinator plans shared-element flights. Optional.
	Coordinator *sharedelement.Coordinator
	// TransitionID names the episode for the coordinator's bookkeeping.
	// Defaults to the ToScreen's id.
	TransitionID string

	controller *animation.AnimationController
	flights    []*sharedelement.SharedElementTransition
	finished   bool
}

// Controller returns the episode's animation controller, nil before DidPush.
func (p *PageTransition) Controller() *animation.AnimationController {
	return p.controller
}

// Progress returns the current transition progress in [0, 1].
func (p *PageTransition) Progress() float64 {
	if p.controller == nil {
		return 0
	}
	return p.controller.Value
}

// EnterFrame returns the render props for the incoming page at the current
// progress.
func (p *PageTransition) EnterFrame() effect.RenderProps {
	if p.Enter == nil {
		return effect.NewRenderProps()
	}
	return p.Enter.Frame(p.Progress())
}

// ExitFrame returns the render props for the outgoing page at the current
// progress.
func (p *PageTransition) ExitFrame() effect.RenderProps {
	if p.Exit == nil {
		return effect.NewRenderProps()
	}
	return p.Exit.Frame(p.Progress())
}

// DidPush starts the enter animation and, once the destination frame has
// laid out, coordinates shared-element flights. Safe to call once per
// episode; later calls are no-ops.
func (p *PageTransition) DidPush() {
	if p.controller != nil || p.Enter == nil {
		return
	}
	p.controller = p.Enter.NewController()
	p.controller.AddStatusListener(func(status animation.AnimationStatus) {
		if status == animation.AnimationCompleted || status == animation.AnimationDismissed {
			p.finish()
		}
	})
	p.controller.Forward()

	if p.Coordinator == nil || p.FromScreen == nil || p.ToScreen == nil {
		return
	}
	// Geometry on the destination screen exists only after its first
	// layout, so flight planning waits for the post-frame callback.
	core.Schedule(func() {
		if p.finished {
			return
		}
		p.flights = p.Coordinator.CoordinateTransition(p.FromScreen, p.ToScreen, p.episodeID())
		for _, flight := range p.flights {
			flight.Start()
		}
	})
}

// DidPop reverses the enter animation. The shared-element flights for the
// episode are cancelled; the pop renders without the flourish.
func (p *PageTransition) DidPop() {
	if p.Coordinator != nil && len(p.flights) > 0 {
		p.Coordinator.CancelTransition(p.episodeID())
		p.flights = nil
	}
	if p.controller != nil {
		p.controller.Reverse()
	}
}

// Dispose releases the episode. Hosts must call this when the route is torn
// down mid-flight; the library has no timeout of its own.
func (p *PageTransition) Dispose() {
	if p.Coordinator != nil && len(p.flights) > 0 {
		p.Coordinator.CancelTransition(p.episodeID())
		p.flights = nil
	}
	if p.controller != nil {
		p.controller.Dispose()
		p.controller = nil
	}
	p.finished = true
}

func (p *PageTransition) finish() {
	if p.finished {
		return
	}
	p.finished = true
	if p.Coordinator != nil {
		p.Coordinator.CompleteTransition(p.episodeID())
	}
	p.flights = nil
}

func (p *PageTransition) episodeID() string {
	if p.TransitionID != "" {
		return p.TransitionID
	}
	if p.ToScreen != nil {
		return p.ToScreen.ScreenID()
	}
	return "transition"
}
