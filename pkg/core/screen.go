package core

import "github.com/go-drift/motion/pkg/geometry"

// ScreenContext identifies a screen (page, route) and answers whether it is
// still mounted. Element records keep this handle as a back-reference only;
// a context whose IsLive returns false marks its records as stale.
type ScreenContext interface {
	// ScreenID returns a stable identifier, unique among live screens.
	ScreenID() string
	// IsLive reports whether the screen is still mounted.
	IsLive() bool
}

// GeometryReader reports the current screen-space bounding box of a rendered
// element. The second result is false when the element has no geometry this
// frame (not yet laid out, or detached mid-query); callers skip the element
// rather than treating that as an error.
type GeometryReader func() (geometry.Rect, bool)

// StaticGeometry returns a GeometryReader that always reports the given rect.
// Useful for hosts whose layout is already known, and for tests.
func StaticGeometry(rect geometry.Rect) GeometryReader {
	return func() (geometry.Rect, bool) { return rect, true }
}

// Screen is a minimal ScreenContext implementation for hosts that manage
// liveness themselves and for tests. The zero value is not usable; create
// instances with NewScreen.
type Screen struct {
	id   string
	live bool
}

// NewScreen returns a live screen with the given identifier.
func NewScreen(id string) *Screen {
	return &Screen{id: id, live: true}
}

// ScreenID returns the screen's identifier.
func (s *Screen) ScreenID() string { return s.id }

// IsLive reports whether Dispose has not been called.
func (s *Screen) IsLive() bool { return s.live }

// Dispose marks the screen as torn down. Idempotent.
func (s *Screen) Dispose() { s.live = false }
