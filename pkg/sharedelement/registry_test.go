package sharedelement

import (
	"testing"

	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/geometry"
)

func newTestRegistry() *Registry {
	return NewRegistry()
}

func TestRegistry_RegisterCapturesAfterFrame(t *testing.T) {
	reg := newTestRegistry()
	screen := core.NewScreen("list")
	rect := geometry.RectFromLTWH(10, 10, 100, 100)

	reg.Register("avatar", core.StaticGeometry(rect), screen, core.ColorBox{})

	record := reg.Get("avatar")
	if record == nil {
		t.Fatal("expected a record immediately after Register")
	}
	if !record.HasGeometry() {
		// Capture is deferred until the post-frame flush.
		core.FlushPostFrame()
	}

	record = reg.Get("avatar")
	if !record.HasGeometry() {
		t.Fatal("expected geometry after the post-frame flush")
	}
	if record.SourceRect != rect {
		t.Errorf("expected %+v, got %+v", rect, record.SourceRect)
	}
}

func TestRegistry_ReregisterUpdatesInPlace(t *testing.T) {
	reg := newTestRegistry()
	screen := core.NewScreen("list")

	reg.Register("avatar", core.StaticGeometry(geometry.RectFromLTWH(0, 0, 10, 10)), screen, core.ColorBox{})
	core.FlushPostFrame()

	moved := geometry.RectFromLTWH(50, 50, 10, 10)
	reg.Register("avatar", core.StaticGeometry(moved), screen, core.ColorBox{})
	core.FlushPostFrame()

	if reg.Count() != 1 {
		t.Fatalf("expected one record after re-register, got %d", reg.Count())
	}
	if got := reg.Get("avatar").SourceRect; got != moved {
		t.Errorf("expected refreshed rect %+v, got %+v", moved, got)
	}
}

func TestRegistry_UnregisterIdempotent(t *testing.T) {
	reg := newTestRegistry()
	screen := core.NewScreen("list")

	reg.Register("avatar", core.StaticGeometry(geometry.Rect{}), screen, core.ColorBox{})
	reg.Unregister("avatar")
	reg.Unregister("avatar")

	if reg.Get("avatar") != nil {
		t.Error("expected no record after unregister")
	}
	if reg.Count() != 0 {
		t.Errorf("expected empty registry, got %d records", reg.Count())
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	reg := newTestRegistry()
	if reg.Get("missing") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestRegistry_FindMatchingPairs(t *testing.T) {
	reg := newTestRegistry()
	list := core.NewScreen("list")
	detail := core.NewScreen("detail")

	sourceRect := geometry.RectFromLTWH(10, 10, 50, 50)
	targetRect := geometry.RectFromLTWH(100, 100, 200, 200)

	reg.Register("avatar", core.StaticGeometry(sourceRect), list, core.ColorBox{})
	reg.Register("title", core.StaticGeometry(geometry.RectFromLTWH(0, 0, 10, 10)), list, core.ColorBox{})
	reg.Register("avatar", core.StaticGeometry(targetRect), detail, core.ColorBox{})
	reg.Register("orphan", core.StaticGeometry(geometry.RectFromLTWH(0, 0, 5, 5)), detail, core.ColorBox{})
	core.FlushPostFrame()

	pairs := reg.FindMatchingPairs(list, detail)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 matched pair, got %d", len(pairs))
	}
	pair := pairs[0]
	if pair.Source.ID != "avatar" || pair.Target.ID != "avatar" {
		t.Errorf("unexpected pair ids %s/%s", pair.Source.ID, pair.Target.ID)
	}
	if pair.Source.SourceRect != sourceRect || pair.Target.SourceRect != targetRect {
		t.Error("pair geometry does not match registrations")
	}
	// Matching cross-fills each record's view of the other end.
	if pair.Source.TargetRect == nil || *pair.Source.TargetRect != targetRect {
		t.Error("source record missing the target geometry")
	}
	if pair.Target.TargetRect == nil || *pair.Target.TargetRect != sourceRect {
		t.Error("target record missing the source geometry")
	}
}

func TestRegistry_FindMatchingPairs_Ordered(t *testing.T) {
	reg := newTestRegistry()
	a := core.NewScreen("a")
	b := core.NewScreen("b")

	for _, id := range []string{"zebra", "apple", "mango"} {
		reg.Register(id, core.StaticGeometry(geometry.RectFromLTWH(0, 0, 10, 10)), a, core.ColorBox{})
		reg.Register(id, core.StaticGeometry(geometry.RectFromLTWH(5, 5, 10, 10)), b, core.ColorBox{})
	}
	core.FlushPostFrame()

	pairs := reg.FindMatchingPairs(a, b)
	if len(pairs) != 3 {
		t.Fatalf("expected 3 pairs, got %d", len(pairs))
	}
	want := []string{"apple", "mango", "zebra"}
	for i, pair := range pairs {
		if pair.Source.ID != want[i] {
			t.Errorf("pair %d: expected %s, got %s", i, want[i], pair.Source.ID)
		}
	}
}

func TestRegistry_FindMatchingPairs_DeadScreen(t *testing.T) {
	reg := newTestRegistry()
	a := core.NewScreen("a")
	b := core.NewScreen("b")
	reg.Register("x", core.StaticGeometry(geometry.Rect{}), a, core.ColorBox{})
	reg.Register("x", core.StaticGeometry(geometry.Rect{}), b, core.ColorBox{})
	core.FlushPostFrame()

	b.Dispose()
	if pairs := reg.FindMatchingPairs(a, b); pairs != nil {
		t.Errorf("expected no pairs against a dead screen, got %d", len(pairs))
	}
}

func TestRegistry_ActivateDeactivate(t *testing.T) {
	reg := newTestRegistry()

	reg.Activate("avatar")
	reg.Activate("avatar")
	if !reg.IsActive("avatar") {
		t.Error("expected active id")
	}
	if reg.ActiveCount() != 1 {
		t.Errorf("expected one active id, got %d", reg.ActiveCount())
	}

	reg.Deactivate("avatar")
	reg.Deactivate("avatar")
	if reg.IsActive("avatar") {
		t.Error("expected inactive id")
	}
}

func TestRegistry_CleanupStale(t *testing.T) {
	reg := newTestRegistry()
	live := core.NewScreen("live")
	dying := core.NewScreen("dying")

	reg.Register("kept", core.StaticGeometry(geometry.Rect{}), live, core.ColorBox{})
	reg.Register("dropped", core.StaticGeometry(geometry.Rect{}), dying, core.ColorBox{})
	core.FlushPostFrame()

	dying.Dispose()
	reg.CleanupStale()

	if reg.Get("kept") == nil {
		t.Error("expected record on the live screen to survive")
	}
	if reg.Get("dropped") != nil {
		t.Error("expected record on the dead screen to be swept")
	}
}

func TestRegistry_CleanupStale_KeepsActiveIDs(t *testing.T) {
	reg := newTestRegistry()
	dying := core.NewScreen("dying")

	reg.Register("inflight", core.StaticGeometry(geometry.Rect{}), dying, core.ColorBox{})
	core.FlushPostFrame()
	reg.Activate("inflight")

	dying.Dispose()
	reg.CleanupStale()
	if reg.Get("inflight") == nil {
		t.Fatal("expected in-flight record to survive the sweep")
	}

	// Once deactivated, the next sweep collects it.
	reg.Deactivate("inflight")
	reg.CleanupStale()
	if reg.Get("inflight") != nil {
		t.Error("expected record swept after deactivation")
	}
}

func TestRegistry_RegisterInvalidInput(t *testing.T) {
	reg := newTestRegistry()
	reg.Register("", core.StaticGeometry(geometry.Rect{}), core.NewScreen("s"), core.ColorBox{})
	reg.Register("id", core.StaticGeometry(geometry.Rect{}), nil, core.ColorBox{})

	if reg.Count() != 0 {
		t.Errorf("expected invalid registrations to be ignored, got %d records", reg.Count())
	}
	core.FlushPostFrame()
}

func TestRegistry_WithMetadata(t *testing.T) {
	reg := newTestRegistry()
	screen := core.NewScreen("s")

	reg.Register("avatar", core.StaticGeometry(geometry.Rect{}), screen, core.ColorBox{},
		WithMetadata("group", "header"))
	core.FlushPostFrame()

	record := reg.Get("avatar")
	if record.Metadata["group"] != "header" {
		t.Errorf("expected metadata to stick, got %v", record.Metadata["group"])
	}
	if _, ok := record.Metadata["registered_at"]; !ok {
		t.Error("expected a registration timestamp")
	}
}
