package sharedelement

import (
	"math"
	"time"

	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/geometry"
)

// Coordinator orchestrates one shared-element episode: discovery, analysis,
// planning, optimization, and bookkeeping. One profile (derived from the
// most complex pair) governs every element in a batch; per-element profiles
// were judged not worth the extra planning cost.
type Coordinator struct {
	registry *Registry
	manager  *Manager

	// ScreenBounds is the container used for clip classification. Hosts
	// set it once (and on resize); when empty, clipping is not analyzed.
	ScreenBounds geometry.Rect

	// profiles caches each episode's profile until CompleteTransition,
	// never longer.
	profiles map[string]OptimizationProfile
	// episodes maps an episode id to the element ids it planned.
	episodes map[string][]string
}

// NewCoordinator creates a coordinator over the given registry and manager.
func NewCoordinator(registry *Registry, manager *Manager) *Coordinator {
	return &Coordinator{
		registry: registry,
		manager:  manager,
		profiles: make(map[string]OptimizationProfile),
		episodes: make(map[string][]string),
	}
}

var defaultCoordinator = NewCoordinator(DefaultRegistry(), DefaultManager())

// DefaultCoordinator returns the process-wide coordinator wired to
// [DefaultRegistry] and [DefaultManager].
func DefaultCoordinator() *Coordinator {
	return defaultCoordinator
}

// CoordinateTransition plans the shared-element flights between two screens.
//
// The five steps run strictly in order, each feeding the next:
//
//  1. discover matched pairs and analyze the most complex one into a single
//     optimization profile for the batch,
//  2. (discovery is shared with step 1: one registry join),
//  3. plan one transition per pair with the profile's duration and curve,
//  4. annotate each transition with the profile's optimization metadata,
//  5. record the episode for CompleteTransition.
//
// No matched pairs is a normal outcome and returns an empty slice.
func (c *Coordinator) CoordinateTransition(fromScreen, toScreen core.ScreenContext, transitionID string) []*SharedElementTransition {
	pairs := c.registry.FindMatchingPairs(fromScreen, toScreen)
	if len(pairs) == 0 {
		return nil
	}

	// Step 1: profile the worst-case pair.
	worst := mostComplexPair(pairs)
	profile := AnalyzePerformanceRequirements(
		worst.Source.SourceRect, worst.Target.SourceRect,
		worst.Source.Widget, worst.Target.Widget,
	)
	if !c.ScreenBounds.IsEmpty() {
		profile.Clipping = ComputeClippingStrategy(
			worst.Source.SourceRect, c.ScreenBounds, worst.Target.SourceRect)
	}

	// Step 3: plan one transition per pair. Optimization and visual
	// richness are inversely coupled: a simplified transition forgoes
	// morphing, a rasterized one forgoes elevation.
	transitions := make([]*SharedElementTransition, 0, len(pairs))
	ids := make([]string, 0, len(pairs))
	for _, pair := range pairs {
		opts := &TransitionOptions{
			Duration:       profile.RecommendedDuration,
			Curve:          profile.RecommendedCurve,
			EnableMorphing: !profile.UseSimplifiedGeometry,
			UseElevation:   !profile.UseRasterization,
		}
		t := c.manager.CreateTransition(fromScreen, toScreen, pair.Source.ID, opts)
		if t == nil {
			continue
		}
		// Step 4: attach the optimization annotation.
		c.applyOptimization(t, profile)
		transitions = append(transitions, t)
		ids = append(ids, t.ID)
	}

	if len(transitions) == 0 {
		return nil
	}

	// Step 5: bookkeeping for later completion and introspection.
	c.registry.Activate(transitionID)
	c.profiles[transitionID] = profile
	c.episodes[transitionID] = ids
	return transitions
}

// mostComplexPair picks the pair with the highest weighted complexity:
// size ratio + distance/100 + 10x aspect-ratio delta.
func mostComplexPair(pairs []MatchedPair) MatchedPair {
	best := pairs[0]
	bestScore := -1.0
	for _, pair := range pairs {
		if score := pairComplexity(pair); score > bestScore {
			bestScore = score
			best = pair
		}
	}
	return best
}

func pairComplexity(pair MatchedPair) float64 {
	src := pair.Source.SourceRect
	dst := pair.Target.SourceRect

	sizeRatio := 0.0
	if src.Area() > 0 {
		sizeRatio = dst.Area() / src.Area()
	}
	distance := src.Center().Distance(dst.Center())
	aspectDelta := math.Abs(src.AspectRatio() - dst.AspectRatio())

	return sizeRatio + distance/100 + aspectDelta*10
}

// applyOptimization translates the profile into the transition's typed
// annotation fields.
func (c *Coordinator) applyOptimization(t *SharedElementTransition, profile OptimizationProfile) {
	opt := TransitionOptimization{
		Rasterize: profile.UseRasterization,
		FrameRate: profile.RecommendedFrameRate,
		Clipping:  profile.Clipping,
	}

	if profile.UseSimplifiedGeometry {
		opt.Placeholder = SimplifiedPlaceholder(t.Source)
	}

	// A capped frame rate stretches the clock so the flight covers the
	// same distance with fewer, cheaper frames.
	if profile.RecommendedFrameRate > 0 && profile.RecommendedFrameRate < defaultFrameRate {
		scale := float64(defaultFrameRate) / float64(profile.RecommendedFrameRate)
		opt.OptimizedDuration = time.Duration(float64(profile.RecommendedDuration) * scale)
	}

	switch profile.Clipping {
	case ClipBoth:
		opt.HardClip = true
	case ClipSource, ClipTarget:
		opt.FadeClip = true
	default:
		opt.AllowOverflow = true
	}
	if profile.UseSimplifiedGeometry && profile.Clipping != ClipNone {
		// Simplified placeholders carry no interior detail worth
		// preserving, so shrinking beats clipping.
		opt.ScaleClip = true
	}

	t.Optimization = opt
}

// CompleteTransition ends an episode: drops its cached profile, releases the
// episode id, and sweeps stale registry records now that their flights no
// longer pin them.
func (c *Coordinator) CompleteTransition(transitionID string) {
	delete(c.profiles, transitionID)
	delete(c.episodes, transitionID)
	c.registry.Deactivate(transitionID)
	c.registry.CleanupStale()
}

// CancelTransition cancels every flight in an episode through the manager's
// per-transition cancel path, then clears the episode's bookkeeping.
func (c *Coordinator) CancelTransition(transitionID string) {
	for _, id := range c.episodes[transitionID] {
		c.manager.CancelTransition(id)
	}
	delete(c.profiles, transitionID)
	delete(c.episodes, transitionID)
	c.registry.Deactivate(transitionID)
}

// Profile returns the cached profile for an episode, if still active.
func (c *Coordinator) Profile(transitionID string) (OptimizationProfile, bool) {
	profile, ok := c.profiles[transitionID]
	return profile, ok
}

// GetPerformanceMetrics returns a diagnostics snapshot for debugging
// overlays and tests.
func (c *Coordinator) GetPerformanceMetrics() map[string]any {
	episodes := make(map[string]any, len(c.profiles))
	for id, profile := range c.profiles {
		episodes[id] = map[string]any{
			"level":         profile.Level.String(),
			"rasterize":     profile.UseRasterization,
			"simplified":    profile.UseSimplifiedGeometry,
			"frame_rate":    profile.RecommendedFrameRate,
			"duration_ms":   profile.RecommendedDuration.Milliseconds(),
			"clipping":      profile.Clipping.String(),
			"element_count": len(c.episodes[id]),
		}
	}
	return map[string]any{
		"active_episodes":     len(c.episodes),
		"registered_elements": c.registry.Count(),
		"active_elements":     c.registry.ActiveCount(),
		"active_transitions":  c.manager.ActiveCount(),
		"episodes":            episodes,
	}
}
