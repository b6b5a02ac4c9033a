package sharedelement

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/geometry"
)

// SnapshotProvider captures a widget's current pixels. Hosts that can read
// back their render surface implement this; the overlay then flies a cached
// raster instead of re-rendering expensive content every frame.
type SnapshotProvider interface {
	// Snapshot renders the widget at the given size. A nil image means the
	// widget cannot be snapshotted and the flight uses the live widget.
	Snapshot(widget core.Widget, size geometry.Size) *image.RGBA
}

// RasterImage is a widget backed by a captured bitmap.
type RasterImage struct {
	Image *image.RGBA
}

// Category reports CategoryImage.
func (RasterImage) Category() core.ContentCategory { return core.CategoryImage }

// RasterizeForFlight snapshots the transition's source widget at its source
// size and rescales it to the target size, so the flight can cross-scale a
// single bitmap instead of re-laying-out the widget. Returns nil when the
// provider cannot snapshot the widget or the geometry is empty.
//
// Aggressively optimized flights use the cheaper bilinear kernel; otherwise
// Catmull-Rom keeps edges crisp through large scale changes.
func RasterizeForFlight(provider SnapshotProvider, t *SharedElementTransition) *RasterImage {
	if provider == nil || t == nil {
		return nil
	}
	sourceSize := t.Source.SourceRect.Size()
	if sourceSize.IsEmpty() {
		return nil
	}
	src := provider.Snapshot(t.Source.Widget, sourceSize)
	if src == nil {
		return nil
	}

	targetSize := sourceSize
	if t.Target != nil && !t.Target.SourceRect.IsEmpty() {
		targetSize = t.Target.SourceRect.Size()
	}
	maxW := int(max(sourceSize.Width, targetSize.Width))
	maxH := int(max(sourceSize.Height, targetSize.Height))
	if maxW <= 0 || maxH <= 0 {
		return nil
	}
	if src.Bounds().Dx() == maxW && src.Bounds().Dy() == maxH {
		return &RasterImage{Image: src}
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxW, maxH))
	var scaler xdraw.Scaler = xdraw.CatmullRom
	if t.Optimization.FrameRate > 0 && t.Optimization.FrameRate < defaultFrameRate {
		scaler = xdraw.ApproxBiLinear
	}
	scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return &RasterImage{Image: dst}
}

// SnapshotFunc adapts a function to the SnapshotProvider interface.
type SnapshotFunc func(widget core.Widget, size geometry.Size) *image.RGBA

// Snapshot calls the wrapped function.
func (f SnapshotFunc) Snapshot(widget core.Widget, size geometry.Size) *image.RGBA {
	return f(widget, size)
}

// placeholderColor is the neutral fill of simplified placeholders.
var placeholderColor = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}

// SimplifiedPlaceholder builds the solid stand-in used when a flight's
// geometry is too complex to morph live content.
func SimplifiedPlaceholder(record *ElementRecord) core.Widget {
	size := geometry.Size{Width: 1, Height: 1}
	if record != nil && !record.SourceRect.IsEmpty() {
		size = record.SourceRect.Size()
	}
	return core.ColorBox{Color: placeholderColor, Size: size}
}
