package transition

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

func TestLoadConfig_BuildsPresets(t *testing.T) {
	data := []byte(`
presets:
  push:
    duration_ms: 350
    curve: ios
    effects:
      - type: slide
        direction: right
        distance: 400
      - type: fade
        from: 0.4
        to: 1
  modal:
    effects:
      - type: slide
        direction: bottom
        distance: 800
`)
	presets, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("expected 2 presets, got %d", len(presets))
	}

	push, err := Preset(presets, "push")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if push.Duration != 350*time.Millisecond {
		t.Errorf("expected 350ms, got %v", push.Duration)
	}
	if len(push.Effects) != 2 {
		t.Errorf("expected 2 effects, got %d", len(push.Effects))
	}

	modal := presets["modal"]
	if modal.Duration != DefaultDuration {
		t.Errorf("expected default duration for modal, got %v", modal.Duration)
	}
}

func TestLoadConfig_EffectWindow(t *testing.T) {
	data := []byte(`
presets:
  staged:
    effects:
      - type: fade
        to: 1
        begin: 0.5
        end: 1
`)
	presets, err := LoadConfig(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	props := presets["staged"].Frame(0.25)
	if props.Opacity != 0 {
		t.Errorf("expected opacity 0 before the window, got %v", props.Opacity)
	}
}

func TestLoadConfig_VersionGate(t *testing.T) {
	data := []byte(`
requires: v99.0.0
presets:
  push:
    effects:
      - type: fade
`)
	_, err := LoadConfig(data)
	if err == nil {
		t.Fatal("expected version gate error")
	}
	var merr *errors.MotionError
	if !stderrors.As(err, &merr) || merr.Kind != errors.KindConfig {
		t.Errorf("expected config kind error, got %v", err)
	}
}

func TestLoadConfig_InvalidRequires(t *testing.T) {
	data := []byte(`
requires: "99"
presets: {}
`)
	if _, err := LoadConfig(data); err == nil {
		t.Fatal("expected error for non-semver requires")
	}
}

func TestLoadConfig_UnknownEffect(t *testing.T) {
	data := []byte(`
presets:
  bad:
    effects:
      - type: sparkle
`)
	if _, err := LoadConfig(data); err == nil {
		t.Fatal("expected error for unknown effect type")
	}
}

func TestLoadConfig_UnknownCurve(t *testing.T) {
	data := []byte(`
presets:
  bad:
    curve: bouncy
    effects:
      - type: fade
`)
	if _, err := LoadConfig(data); err == nil {
		t.Fatal("expected error for unknown curve")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	if _, err := LoadConfig([]byte("presets: [not a map")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPreset_NotFound(t *testing.T) {
	presets := map[string]*RouteTransition{}
	_, err := Preset(presets, "missing")
	if !stderrors.Is(err, ErrPresetNotFound) {
		t.Errorf("expected ErrPresetNotFound, got %v", err)
	}
}
