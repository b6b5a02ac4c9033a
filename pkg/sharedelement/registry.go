package sharedelement

import (
	"sort"
	"time"

	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/geometry"
)

// ElementRecord tracks one registered shared element on one screen.
type ElementRecord struct {
	// ID is the caller-supplied identifier, unique within a screen and
	// shared with the matching element on the other screen.
	ID string
	// Widget is the visual content rendered during flight. Ownership
	// belongs to whichever screen registered most recently.
	Widget core.Widget
	// SourceRect is the screen-space bounding box from the most recent
	// post-layout capture.
	SourceRect geometry.Rect
	// TargetRect is the matching element's box on the other screen; nil
	// until a match is found.
	TargetRect *geometry.Rect
	// Screen is a back-reference to the originating screen, used for
	// matching queries and staleness detection. Never owning.
	Screen core.ScreenContext
	// Hide suppresses the original on-screen instance during flight
	// (optional).
	Hide core.HideController
	// Metadata carries auxiliary fields such as the registration time.
	Metadata map[string]any

	reader   core.GeometryReader
	captured bool
}

// HasGeometry reports whether a post-layout capture has happened yet.
func (r *ElementRecord) HasGeometry() bool {
	return r.captured
}

// MatchedPair is a source/target record pair sharing one element id.
type MatchedPair struct {
	Source *ElementRecord
	Target *ElementRecord
}

// RegisterOption customizes a registration.
type RegisterOption func(*ElementRecord)

// WithHideController attaches the mechanism that hides the original
// instance while the overlay copy is in flight.
func WithHideController(hide core.HideController) RegisterOption {
	return func(r *ElementRecord) { r.Hide = hide }
}

// WithMetadata attaches an auxiliary key/value to the record.
func WithMetadata(key string, value any) RegisterOption {
	return func(r *ElementRecord) { r.Metadata[key] = value }
}

// Registry is the single source of truth for shared-element identity and
// geometry. All methods must be called on the host's UI loop.
type Registry struct {
	// screens maps screen id -> element id -> record.
	screens map[string]map[string]*ElementRecord
	// byScreen tracks the ScreenContext handle per screen id for sweeps.
	contexts map[string]core.ScreenContext
	// latest points at the most recent registration per element id.
	latest map[string]*ElementRecord
	// active is the set of ids currently in flight.
	active map[string]struct{}
}

// NewRegistry creates an empty registry. Most hosts use [DefaultRegistry];
// tests inject their own instance.
func NewRegistry() *Registry {
	return &Registry{
		screens:  make(map[string]map[string]*ElementRecord),
		contexts: make(map[string]core.ScreenContext),
		latest:   make(map[string]*ElementRecord),
		active:   make(map[string]struct{}),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry shared by all screens.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register stores a record for id on the given screen and schedules geometry
// capture for after the next layout pass (boxes are unknown at registration
// time). Re-registering the same id on the same screen overwrites the widget
// and geometry in place; activation state is untouched.
func (g *Registry) Register(id string, reader core.GeometryReader, screen core.ScreenContext, widget core.Widget, opts ...RegisterOption) {
	if id == "" || screen == nil {
		return
	}
	screenID := screen.ScreenID()
	perScreen := g.screens[screenID]
	if perScreen == nil {
		perScreen = make(map[string]*ElementRecord)
		g.screens[screenID] = perScreen
	}
	g.contexts[screenID] = screen

	record := perScreen[id]
	if record == nil {
		record = &ElementRecord{
			ID:       id,
			Metadata: make(map[string]any),
		}
		perScreen[id] = record
	}
	record.Widget = widget
	record.Screen = screen
	record.reader = reader
	record.Metadata["registered_at"] = time.Now()
	for _, opt := range opts {
		opt(record)
	}
	g.latest[id] = record

	// Geometry is unknown until the frame lays out. A failed capture is
	// not an error; the element is skipped until a later refresh succeeds.
	core.Schedule(func() {
		g.capture(record)
	})
}

func (g *Registry) capture(record *ElementRecord) {
	if record.reader == nil || record.Screen == nil || !record.Screen.IsLive() {
		return
	}
	if rect, ok := record.reader(); ok {
		record.SourceRect = rect
		record.captured = true
	}
}

// Unregister removes the record for id from every screen and clears its
// activation state. Safe to call redundantly.
func (g *Registry) Unregister(id string) {
	for screenID, perScreen := range g.screens {
		delete(perScreen, id)
		if len(perScreen) == 0 {
			delete(g.screens, screenID)
			delete(g.contexts, screenID)
		}
	}
	delete(g.latest, id)
	delete(g.active, id)
}

// Get returns the most recently registered record for id, refreshing its
// geometry from the live element if possible. Returns nil if the id was
// never registered or has been unregistered.
func (g *Registry) Get(id string) *ElementRecord {
	record := g.latest[id]
	if record == nil {
		return nil
	}
	if record.Screen != nil && record.Screen.IsLive() {
		g.capture(record)
	}
	return record
}

// lookup returns the record for id on a specific screen.
func (g *Registry) lookup(screen core.ScreenContext, id string) *ElementRecord {
	if screen == nil {
		return nil
	}
	perScreen := g.screens[screen.ScreenID()]
	if perScreen == nil {
		return nil
	}
	return perScreen[id]
}

// FindMatchingPairs returns every element id registered (and live) on both
// screens, as source/target record pairs ordered by id. Matching is keyed
// solely by id equality; no geometry heuristics participate. Each match
// fills in both records' TargetRect with the counterpart's geometry.
func (g *Registry) FindMatchingPairs(screenA, screenB core.ScreenContext) []MatchedPair {
	if screenA == nil || screenB == nil || !screenA.IsLive() || !screenB.IsLive() {
		return nil
	}
	recordsA := g.screens[screenA.ScreenID()]
	recordsB := g.screens[screenB.ScreenID()]
	if len(recordsA) == 0 || len(recordsB) == 0 {
		return nil
	}

	ids := make([]string, 0, len(recordsA))
	for id := range recordsA {
		if _, ok := recordsB[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	pairs := make([]MatchedPair, 0, len(ids))
	for _, id := range ids {
		source := recordsA[id]
		target := recordsB[id]
		g.capture(source)
		g.capture(target)

		sourceBox := target.SourceRect
		targetBox := source.SourceRect
		source.TargetRect = &sourceBox
		target.TargetRect = &targetBox

		pairs = append(pairs, MatchedPair{Source: source, Target: target})
	}
	return pairs
}

// Activate marks id as in flight. Idempotent. Activation without a record
// is allowed; a later Register call attaches the geometry.
func (g *Registry) Activate(id string) {
	g.active[id] = struct{}{}
}

// Deactivate clears id's in-flight mark. Idempotent.
func (g *Registry) Deactivate(id string) {
	delete(g.active, id)
}

// IsActive reports whether id is currently in flight.
func (g *Registry) IsActive(id string) bool {
	_, ok := g.active[id]
	return ok
}

// Count returns the total number of registered records across all screens.
func (g *Registry) Count() int {
	n := 0
	for _, perScreen := range g.screens {
		n += len(perScreen)
	}
	return n
}

// ActiveCount returns the number of ids currently in flight.
func (g *Registry) ActiveCount() int {
	return len(g.active)
}

// CleanupStale removes records whose originating screen is no longer live.
// Records for ids currently in flight are kept even when stale, so a sweep
// during an active transition cannot drop the flight's backing geometry;
// they are collected by the next sweep after deactivation.
func (g *Registry) CleanupStale() {
	for screenID, perScreen := range g.screens {
		ctx := g.contexts[screenID]
		if ctx != nil && ctx.IsLive() {
			continue
		}
		for id, record := range perScreen {
			if g.IsActive(id) {
				continue
			}
			delete(perScreen, id)
			if g.latest[id] == record {
				delete(g.latest, id)
			}
		}
		if len(perScreen) == 0 {
			delete(g.screens, screenID)
			delete(g.contexts, screenID)
		}
	}
}
