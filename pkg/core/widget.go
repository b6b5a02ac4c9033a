package core

import (
	"fmt"
	"image/color"

	"github.com/go-drift/motion/pkg/geometry"
)

// ContentCategory classifies a widget's rendering cost for the performance
// analyzer. The host (or the registering widget) picks the closest tag at
// registration time; there is no runtime type inspection.
type ContentCategory int

const (
	// CategoryUnknown is the default for unclassified content.
	CategoryUnknown ContentCategory = iota
	// CategoryImage covers decoded images, video frames, and other raster content.
	CategoryImage
	// CategoryScrollable covers lists, grids, and other scrolling collections.
	CategoryScrollable
	// CategoryFlex covers row/column style flex containers.
	CategoryFlex
	// CategoryStack covers layered, overlapping content.
	CategoryStack
	// CategoryBox covers simple decorated boxes.
	CategoryBox
	// CategoryText covers plain text leaves.
	CategoryText
)

// String returns a human-readable representation of the content category.
func (c ContentCategory) String() string {
	switch c {
	case CategoryImage:
		return "image"
	case CategoryScrollable:
		return "scrollable"
	case CategoryFlex:
		return "flex"
	case CategoryStack:
		return "stack"
	case CategoryBox:
		return "box"
	case CategoryText:
		return "text"
	case CategoryUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("ContentCategory(%d)", int(c))
	}
}

// Widget is an opaque handle to renderable content. The motion library never
// paints a widget itself; it hands widgets back to the host inside flight
// frames, positioned and transformed.
type Widget interface {
	// Category reports the widget's content class for cost estimation.
	Category() ContentCategory
}

// ColorBox is a solid-color widget. The library uses it as the simplified
// placeholder that stands in for complex content during optimized flights;
// hosts can also use it directly in tests.
type ColorBox struct {
	Color color.Color
	Size  geometry.Size
}

// Category reports CategoryBox.
func (ColorBox) Category() ContentCategory { return CategoryBox }

// HideController suppresses the original on-screen instances of a shared
// element while its overlay copy is in flight. Hosts implement this by
// dropping the element's opacity to zero or skipping its paint; the widget
// stays in the layout so nothing reflows.
type HideController interface {
	// SetHidden shows or hides the original instances of the element.
	SetHidden(hidden bool)
}

// HideFunc adapts a function to the HideController interface.
type HideFunc func(hidden bool)

// SetHidden calls the wrapped function.
func (f HideFunc) SetHidden(hidden bool) { f(hidden) }
