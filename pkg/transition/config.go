package transition

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/effect"
	"github.com/go-drift/motion/pkg/errors"
)

// Version is the library version preset files are validated against.
const Version = "v0.4.0"

// Config is the root of a motion.yaml preset file.
type Config struct {
	// Requires is the minimum library version the file needs (optional).
	Requires string `yaml:"requires,omitempty"`
	// Presets maps preset names to transition specs.
	Presets map[string]PresetSpec `yaml:"presets"`
}

// PresetSpec describes one named transition.
type PresetSpec struct {
	DurationMS int          `yaml:"duration_ms,omitempty"`
	Curve      string       `yaml:"curve,omitempty"`
	Effects    []EffectSpec `yaml:"effects"`
}

// EffectSpec describes one effect in a preset chain. Fields are interpreted
// per effect type; unused fields are ignored.
type EffectSpec struct {
	Type      string  `yaml:"type"`
	From      float64 `yaml:"from,omitempty"`
	To        float64 `yaml:"to,omitempty"`
	Direction string  `yaml:"direction,omitempty"`
	Distance  float64 `yaml:"distance,omitempty"`
	Depth     float64 `yaml:"depth,omitempty"`
	Shape     string  `yaml:"shape,omitempty"`
	Begin     float64 `yaml:"begin,omitempty"`
	End       float64 `yaml:"end,omitempty"`
	Curve     string  `yaml:"curve,omitempty"`
}

// LoadConfigFile reads and parses a motion.yaml preset file.
func LoadConfigFile(path string) (map[string]*RouteTransition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadConfig(data)
}

// LoadConfig parses preset YAML and builds the named transitions.
func LoadConfig(data []byte) (map[string]*RouteTransition, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, configErr("transition.LoadConfig", fmt.Errorf("failed to parse presets: %w", err))
	}

	if cfg.Requires != "" {
		if !semver.IsValid(cfg.Requires) {
			return nil, configErr("transition.LoadConfig",
				fmt.Errorf("invalid requires version %q", cfg.Requires))
		}
		if semver.Compare(Version, cfg.Requires) < 0 {
			return nil, configErr("transition.LoadConfig",
				fmt.Errorf("presets require motion %s, have %s", cfg.Requires, Version))
		}
	}

	presets := make(map[string]*RouteTransition, len(cfg.Presets))
	for name, spec := range cfg.Presets {
		rt, err := buildPreset(spec)
		if err != nil {
			return nil, configErr("transition.LoadConfig",
				fmt.Errorf("preset %q: %w", name, err))
		}
		presets[name] = rt
	}
	return presets, nil
}

func buildPreset(spec PresetSpec) (*RouteTransition, error) {
	b := NewBuilder()
	if spec.DurationMS > 0 {
		b.Duration(time.Duration(spec.DurationMS) * time.Millisecond)
	}
	if spec.Curve != "" {
		curve, err := curveByName(spec.Curve)
		if err != nil {
			return nil, err
		}
		b.Curve(curve)
	}

	for _, es := range spec.Effects {
		if err := appendEffect(b, es); err != nil {
			return nil, err
		}
		if es.Begin != 0 || es.End != 0 {
			b.During(es.Begin, es.End)
		}
		if es.Curve != "" {
			curve, err := curveByName(es.Curve)
			if err != nil {
				return nil, err
			}
			b.EasedBy(curve)
		}
	}
	return b.Build(), nil
}

func appendEffect(b *Builder, es EffectSpec) error {
	switch es.Type {
	case "fade":
		from, to := es.From, es.To
		if from == 0 && to == 0 {
			to = 1
		}
		b.Fade(from, to)
	case "slide":
		dir, err := directionByName(es.Direction)
		if err != nil {
			return err
		}
		b.SlideFrom(dir, es.Distance)
	case "scale":
		from, to := es.From, es.To
		if to == 0 {
			to = 1
		}
		b.Scale(from, to)
	case "rotate":
		b.Rotate(es.From, es.To)
	case "blur":
		b.Blur(es.From, es.To)
	case "parallax":
		dir, err := directionByName(es.Direction)
		if err != nil {
			return err
		}
		b.Parallax(dir, es.Distance, es.Depth)
	case "reveal":
		switch es.Shape {
		case "", "circle":
			b.RevealCircle()
		case "rect":
			b.With(effect.ClipReveal{Shape: effect.ClipRectCenter})
		case "wipe":
			b.With(effect.ClipReveal{Shape: effect.ClipRectLeading})
		default:
			return fmt.Errorf("unknown reveal shape %q", es.Shape)
		}
	default:
		return fmt.Errorf("unknown effect type %q", es.Type)
	}
	return nil
}

func directionByName(name string) (effect.SlideDirection, error) {
	switch name {
	case "", "right":
		return effect.SlideFromRight, nil
	case "left":
		return effect.SlideFromLeft, nil
	case "bottom":
		return effect.SlideFromBottom, nil
	case "top":
		return effect.SlideFromTop, nil
	default:
		return 0, fmt.Errorf("unknown slide direction %q", name)
	}
}

func curveByName(name string) (func(float64) float64, error) {
	switch name {
	case "linear":
		return animation.LinearCurve, nil
	case "ease":
		return animation.Ease, nil
	case "ease_in":
		return animation.EaseIn, nil
	case "ease_out":
		return animation.EaseOut, nil
	case "ease_in_out":
		return animation.EaseInOut, nil
	case "ios":
		return animation.IOSNavigationCurve, nil
	case "flight":
		return animation.FlightCurve, nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

func configErr(op string, err error) error {
	merr := &errors.MotionError{Op: op, Kind: errors.KindConfig, Err: err}
	errors.Report(merr)
	return merr
}

// ErrPresetNotFound is returned by Preset for unknown names.
var ErrPresetNotFound = stderrors.New("transition: preset not found")

// Preset looks up a named transition in a loaded preset map.
func Preset(presets map[string]*RouteTransition, name string) (*RouteTransition, error) {
	rt, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return rt, nil
}
