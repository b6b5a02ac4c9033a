package sharedelement

import (
	"fmt"
	"math"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/geometry"
)

// The analyzer is a set of pure functions: same inputs, same outputs, no
// hidden state. The coordinator calls them to plan a batch; tests and
// alternative coordinators can call them directly.

// AspectRatioStrategy selects how mismatched aspect ratios reconcile
// mid-flight.
type AspectRatioStrategy int

const (
	// AspectScaleToFit preserves the source aspect ratio throughout,
	// interpolating the center and the dominant dimension. No distortion.
	AspectScaleToFit AspectRatioStrategy = iota
	// AspectCrop interpolates all four edges independently, distorting the
	// aspect ratio mid-flight for a crop-reveal look.
	AspectCrop
	// AspectLetterbox fits a source-ratio box inside the traveling bounds,
	// padding the axis that needs it.
	AspectLetterbox
	// AspectMorphGradual is crop with eased progress and more frames for a
	// smoother perceptual morph.
	AspectMorphGradual
)

// String returns a human-readable representation of the strategy.
func (s AspectRatioStrategy) String() string {
	switch s {
	case AspectScaleToFit:
		return "scale_to_fit"
	case AspectCrop:
		return "crop"
	case AspectLetterbox:
		return "letterbox"
	case AspectMorphGradual:
		return "morph_gradual"
	default:
		return fmt.Sprintf("AspectRatioStrategy(%d)", int(s))
	}
}

// aspectRatioTolerance is the aspect delta below which no reconciliation is
// planned.
const aspectRatioTolerance = 0.01

// Frame counts for the intermediate-rectangle plans.
const (
	aspectPlanFrames        = 8
	aspectPlanGradualFrames = 12
)

// AspectRatioPlan is the precomputed sequence of intermediate rectangles
// reconciling a source/target aspect mismatch.
type AspectRatioPlan struct {
	NeedsHandling bool
	Strategy      AspectRatioStrategy
	// Frames are intermediate rectangles between (exclusive of) source and
	// target. Empty when NeedsHandling is false.
	Frames []geometry.Rect
}

// ComputeAspectRatioPlan plans intermediate rectangles between source and
// target. Aspect ratios within 1% of each other need no handling.
func ComputeAspectRatioPlan(source, target geometry.Rect, strategy AspectRatioStrategy) AspectRatioPlan {
	sourceAspect := source.AspectRatio()
	targetAspect := target.AspectRatio()
	if math.Abs(sourceAspect-targetAspect) < aspectRatioTolerance {
		return AspectRatioPlan{NeedsHandling: false, Strategy: strategy}
	}

	frameCount := aspectPlanFrames
	if strategy == AspectMorphGradual {
		frameCount = aspectPlanGradualFrames
	}

	frames := make([]geometry.Rect, 0, frameCount)
	for i := 1; i <= frameCount; i++ {
		t := float64(i) / float64(frameCount+1)
		frames = append(frames, aspectFrame(source, target, t, strategy))
	}
	return AspectRatioPlan{
		NeedsHandling: true,
		Strategy:      strategy,
		Frames:        frames,
	}
}

func aspectFrame(source, target geometry.Rect, t float64, strategy AspectRatioStrategy) geometry.Rect {
	switch strategy {
	case AspectCrop:
		return geometry.LerpRect(source, target, t)
	case AspectMorphGradual:
		return geometry.LerpRect(source, target, animation.GradualMorphCurve(t))
	case AspectLetterbox:
		return letterboxFrame(source, target, t)
	default:
		return scaleToFitFrame(source, target, t)
	}
}

// scaleToFitFrame keeps the source aspect ratio while interpolating the
// center and the dominant dimension. If the source is wider than the target
// (by aspect ratio) the height drives the scale; otherwise the width does.
// This keeps the non-dominant axis from overshooting the target bound.
func scaleToFitFrame(source, target geometry.Rect, t float64) geometry.Rect {
	center := geometry.LerpOffset(source.Center(), target.Center(), t)
	aspect := source.AspectRatio()
	if aspect <= 0 {
		return geometry.RectFromCenter(center, geometry.LerpSize(source.Size(), target.Size(), t))
	}

	var size geometry.Size
	if aspect > target.AspectRatio() {
		height := geometry.LerpSize(source.Size(), target.Size(), t).Height
		size = geometry.Size{Width: height * aspect, Height: height}
	} else {
		width := geometry.LerpSize(source.Size(), target.Size(), t).Width
		size = geometry.Size{Width: width, Height: width / aspect}
	}
	return geometry.RectFromCenter(center, size)
}

// letterboxFrame fits a source-ratio box inside the linearly traveling
// bounds, padding whichever axis the bounds leave slack on.
func letterboxFrame(source, target geometry.Rect, t float64) geometry.Rect {
	bounds := geometry.LerpRect(source, target, t)
	aspect := source.AspectRatio()
	if aspect <= 0 || bounds.IsEmpty() {
		return bounds
	}

	var size geometry.Size
	if bounds.AspectRatio() > aspect {
		// Bounds are wider than the content: pad left/right.
		size = geometry.Size{Width: bounds.Height() * aspect, Height: bounds.Height()}
	} else {
		// Bounds are taller than the content: pad top/bottom.
		size = geometry.Size{Width: bounds.Width(), Height: bounds.Width() / aspect}
	}
	return geometry.RectFromCenter(bounds.Center(), size)
}

// ClipStrategy classifies which ends of a flight need clipping.
type ClipStrategy int

const (
	// ClipNone means both rects sit acceptably within the container.
	ClipNone ClipStrategy = iota
	// ClipSource means only the source rect is clipped by the container.
	ClipSource
	// ClipTarget means only the target rect is clipped by the container.
	ClipTarget
	// ClipBoth means both rects are clipped by the container.
	ClipBoth
)

// String returns a human-readable representation of the clip strategy.
func (s ClipStrategy) String() string {
	switch s {
	case ClipNone:
		return "none"
	case ClipSource:
		return "source"
	case ClipTarget:
		return "target"
	case ClipBoth:
		return "both"
	default:
		return fmt.Sprintf("ClipStrategy(%d)", int(s))
	}
}

// clipOverlapThreshold is the minimum visible fraction below which a rect
// that escapes the container counts as clipped.
const clipOverlapThreshold = 0.5

// isClipped reports whether rect is neither fully contained in container nor
// acceptably overlapping it.
func isClipped(rect, container geometry.Rect) bool {
	if container.ContainsRect(rect) {
		return false
	}
	return rect.OverlapFraction(container) < clipOverlapThreshold
}

// ComputeClippingStrategy classifies the clipping needs of a flight whose
// element travels from elementRect to targetRect within containerRect.
func ComputeClippingStrategy(elementRect, containerRect, targetRect geometry.Rect) ClipStrategy {
	sourceClipped := isClipped(elementRect, containerRect)
	targetClipped := isClipped(targetRect, containerRect)
	switch {
	case sourceClipped && targetClipped:
		return ClipBoth
	case sourceClipped:
		return ClipSource
	case targetClipped:
		return ClipTarget
	default:
		return ClipNone
	}
}

// OptimizationLevel grades how aggressively a transition should trade visual
// richness for render cost.
type OptimizationLevel int

const (
	OptimizationNone OptimizationLevel = iota
	OptimizationLow
	OptimizationMedium
	OptimizationHigh
)

// String returns a human-readable representation of the level.
func (l OptimizationLevel) String() string {
	switch l {
	case OptimizationNone:
		return "none"
	case OptimizationLow:
		return "low"
	case OptimizationMedium:
		return "medium"
	case OptimizationHigh:
		return "high"
	default:
		return fmt.Sprintf("OptimizationLevel(%d)", int(l))
	}
}

// OptimizationProfile is the analyzer's advice for rendering a transition.
// It is a pure value derived from its inputs; the analyzer never applies it.
type OptimizationProfile struct {
	Level                 OptimizationLevel
	UseRasterization      bool
	UseReducedFrameRate   bool
	UseSimplifiedGeometry bool
	// RecommendedFrameRate is 60 unless the transition is long enough to
	// justify dropping to 30.
	RecommendedFrameRate int
	RecommendedDuration  time.Duration
	RecommendedCurve     func(float64) float64
	Clipping             ClipStrategy
	AspectPlan           AspectRatioPlan
}

// Performance thresholds. Later conditions upgrade but never downgrade the
// level already established by earlier ones.
const (
	rasterAreaHigh     = 500000.0 // px²
	rasterAreaMedium   = 100000.0 // px²
	complexityHigh     = 50.0
	complexityMedium   = 20.0
	longDurationCutoff = 1000 * time.Millisecond
	reducedFrameRate   = 30
	defaultFrameRate   = 60
)

// PerformanceOptimization derives an optimization profile from element size,
// widget complexity, and transition duration. The heuristics are additive:
// each condition can raise the level but none lowers it.
func PerformanceOptimization(elementSize geometry.Size, complexityScore float64, transitionDuration time.Duration) OptimizationProfile {
	profile := OptimizationProfile{
		Level:                OptimizationNone,
		RecommendedFrameRate: defaultFrameRate,
		RecommendedDuration:  transitionDuration,
		RecommendedCurve:     animation.FlightCurve,
	}

	area := elementSize.Area()
	switch {
	case area > rasterAreaHigh:
		profile.UseRasterization = true
		profile.Level = raiseLevel(profile.Level, OptimizationHigh)
	case area > rasterAreaMedium:
		profile.UseRasterization = true
		profile.Level = raiseLevel(profile.Level, OptimizationMedium)
	}

	switch {
	case complexityScore > complexityHigh:
		profile.UseSimplifiedGeometry = true
		profile.Level = raiseLevel(profile.Level, OptimizationHigh)
	case complexityScore > complexityMedium:
		profile.Level = raiseLevel(profile.Level, OptimizationMedium)
	}

	if transitionDuration > longDurationCutoff {
		profile.UseReducedFrameRate = true
		profile.RecommendedFrameRate = reducedFrameRate
	}

	return profile
}

func raiseLevel(current, candidate OptimizationLevel) OptimizationLevel {
	if candidate > current {
		return candidate
	}
	return current
}

// Widget complexity table, keyed by content category.
var categoryComplexity = map[core.ContentCategory]float64{
	core.CategoryImage:      15,
	core.CategoryScrollable: 25,
	core.CategoryFlex:       10,
	core.CategoryStack:      20,
	core.CategoryBox:        5,
	core.CategoryText:       3,
	core.CategoryUnknown:    8,
}

// ComplexityScore estimates the render cost of a widget from its content
// category. Nil widgets score as unknown content.
func ComplexityScore(w core.Widget) float64 {
	if w == nil {
		return categoryComplexity[core.CategoryUnknown]
	}
	if score, ok := categoryComplexity[w.Category()]; ok {
		return score
	}
	return categoryComplexity[core.CategoryUnknown]
}

// Suggested-duration model: a base plus travel distance and growth terms,
// clamped to a sane range.
const (
	durationBase    = 300 * time.Millisecond
	durationMin     = 200 * time.Millisecond
	durationMax     = 1000 * time.Millisecond
	distanceDivisor = 2.0
	sizeRatioWeight = 100.0
)

// AnalyzePerformanceRequirements is the coordinator-facing entry point: it
// scores both widgets, suggests a duration from travel distance and size
// change, and folds everything into one profile. The larger of the two rects
// drives the rasterization thresholds.
func AnalyzePerformanceRequirements(sourceRect, targetRect geometry.Rect, sourceWidget, targetWidget core.Widget) OptimizationProfile {
	complexity := ComplexityScore(sourceWidget) + ComplexityScore(targetWidget)

	distance := sourceRect.Center().Distance(targetRect.Center())
	sizeChangeRatio := 0.0
	if sourceRect.Area() > 0 {
		sizeChangeRatio = targetRect.Area() / sourceRect.Area()
	}

	suggested := durationBase +
		time.Duration(distance/distanceDivisor)*time.Millisecond +
		time.Duration(sizeChangeRatio*sizeRatioWeight)*time.Millisecond
	if suggested < durationMin {
		suggested = durationMin
	}
	if suggested > durationMax {
		suggested = durationMax
	}

	size := sourceRect.Size()
	if targetRect.Area() > sourceRect.Area() {
		size = targetRect.Size()
	}

	profile := PerformanceOptimization(size, complexity, suggested)
	profile.AspectPlan = ComputeAspectRatioPlan(sourceRect, targetRect, AspectScaleToFit)
	return profile
}

// FallbackStrategy is the analyzer's recommended degradation when a
// transition's geometry is unsafe. The caller decides whether to apply it.
type FallbackStrategy int

const (
	// FallbackNone means the transition can run as planned.
	FallbackNone FallbackStrategy = iota
	// FallbackFadeOnly replaces the flight with a cross-fade.
	FallbackFadeOnly
	// FallbackSlideOnly replaces the flight with the plain slide transition.
	FallbackSlideOnly
	// FallbackTeleport skips the flight and fades in at the final position.
	FallbackTeleport
	// FallbackScaleLimit clamps the scale change instead of animating it fully.
	FallbackScaleLimit
)

// String returns a human-readable representation of the fallback.
func (f FallbackStrategy) String() string {
	switch f {
	case FallbackNone:
		return "none"
	case FallbackFadeOnly:
		return "fade_only"
	case FallbackSlideOnly:
		return "slide_only"
	case FallbackTeleport:
		return "teleport"
	case FallbackScaleLimit:
		return "scale_limit"
	default:
		return fmt.Sprintf("FallbackStrategy(%d)", int(f))
	}
}

// ValidationResult reports whether a transition's geometry is animatable and
// how to degrade if not.
type ValidationResult struct {
	IsValid  bool
	Warnings []string
	Errors   []string
	Fallback FallbackStrategy
}

// Validation thresholds.
const (
	sizeRatioMin       = 0.1
	sizeRatioMax       = 10.0
	travelScreenFactor = 2.0
	durationWarnShort  = 100 * time.Millisecond
	durationWarnLong   = 2000 * time.Millisecond
)

// ValidateTransition sanity-checks a planned flight. Empty rects are hard
// errors; everything else is advisory. The first triggered condition sets
// the fallback; the analyzer never applies it.
func ValidateTransition(sourceRect, targetRect geometry.Rect, duration time.Duration, screenSize geometry.Size) ValidationResult {
	result := ValidationResult{IsValid: true, Fallback: FallbackNone}

	setFallback := func(f FallbackStrategy) {
		if result.Fallback == FallbackNone {
			result.Fallback = f
		}
	}

	if sourceRect.IsEmpty() || targetRect.IsEmpty() {
		result.IsValid = false
		result.Errors = append(result.Errors, "empty source or target rect")
		setFallback(FallbackFadeOnly)
		return result
	}

	screen := geometry.RectFromLTWH(0, 0, screenSize.Width, screenSize.Height)
	if !screen.IsEmpty() {
		if sourceRect.Intersect(screen).IsEmpty() || targetRect.Intersect(screen).IsEmpty() {
			result.Warnings = append(result.Warnings, "element rect is off screen")
			setFallback(FallbackSlideOnly)
		}

		longest := math.Max(screenSize.Width, screenSize.Height)
		distance := sourceRect.Center().Distance(targetRect.Center())
		if distance > travelScreenFactor*longest {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("travel distance %.0fpx exceeds %.0fx screen extent", distance, travelScreenFactor))
			setFallback(FallbackTeleport)
		}
	}

	ratio := targetRect.Area() / sourceRect.Area()
	if ratio < sizeRatioMin || ratio > sizeRatioMax {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("size ratio %.2fx outside [%.1f, %.0f]", ratio, sizeRatioMin, sizeRatioMax))
		setFallback(FallbackScaleLimit)
	}

	if duration > durationWarnLong {
		result.Warnings = append(result.Warnings, "transition duration unusually long")
	} else if duration > 0 && duration < durationWarnShort {
		result.Warnings = append(result.Warnings, "transition duration unusually short")
	}

	return result
}
