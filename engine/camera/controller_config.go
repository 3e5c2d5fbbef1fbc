package camera

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// MouseAction is the navigation a mouse button triggers.
type MouseAction int

const (
	MouseNone MouseAction = iota
	MouseRotate
	MouseDolly
	MousePan
)

var mouseActionNames = map[MouseAction]string{
	MouseNone:   "none",
	MouseRotate: "rotate",
	MouseDolly:  "dolly",
	MousePan:    "pan",
}

func (a MouseAction) String() string {
	if name, ok := mouseActionNames[a]; ok {
		return name
	}
	return "unknown"
}

func (a MouseAction) MarshalYAML() (any, error) {
	return a.String(), nil
}

func (a *MouseAction) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for action, n := range mouseActionNames {
		if strings.EqualFold(n, name) {
			*a = action
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown mouse action %q", value.Line, name)
}

// TouchAction is the navigation a one- or two-finger touch triggers.
type TouchAction int

const (
	TouchNone TouchAction = iota
	TouchRotate
	TouchPan
	TouchDollyPan
	TouchDollyRotate
)

var touchActionNames = map[TouchAction]string{
	TouchNone:        "none",
	TouchRotate:      "rotate",
	TouchPan:         "pan",
	TouchDollyPan:    "dollyPan",
	TouchDollyRotate: "dollyRotate",
}

func (a TouchAction) String() string {
	if name, ok := touchActionNames[a]; ok {
		return name
	}
	return "unknown"
}

func (a TouchAction) MarshalYAML() (any, error) {
	return a.String(), nil
}

func (a *TouchAction) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	for action, n := range touchActionNames {
		if strings.EqualFold(n, name) {
			*a = action
			return nil
		}
	}
	return fmt.Errorf("line %d: unknown touch action %q", value.Line, name)
}

// MouseButtons maps each mouse button to an action.
type MouseButtons struct {
	Left   MouseAction `yaml:"left"`
	Middle MouseAction `yaml:"middle"`
	Right  MouseAction `yaml:"right"`
}

// Touches maps one- and two-finger touches to actions.
// One accepts TouchRotate or TouchPan; Two accepts TouchDollyPan or TouchDollyRotate.
type Touches struct {
	One TouchAction `yaml:"one"`
	Two TouchAction `yaml:"two"`
}

// Keys maps the four pan directions to key codes.
type Keys struct {
	Left   uint32 `yaml:"left"`
	Up     uint32 `yaml:"up"`
	Right  uint32 `yaml:"right"`
	Bottom uint32 `yaml:"bottom"`
}

// ControllerConfig holds every runtime-tunable limit, speed and input mapping of an orbit controller.
// Infinite bounds are written as .inf / -.inf in YAML.
type ControllerConfig struct {
	// Enabled turns all input handling on or off.
	Enabled bool `yaml:"enabled"`

	// EnableDamping adds inertia; DampingFactor is the share of the pending motion applied per tick.
	EnableDamping bool    `yaml:"enableDamping"`
	DampingFactor float64 `yaml:"dampingFactor"`

	EnableZoom  bool    `yaml:"enableZoom"`
	ZoomSpeed   float64 `yaml:"zoomSpeed"`
	MinDistance float64 `yaml:"minDistance"` // perspective only
	MaxDistance float64 `yaml:"maxDistance"` // perspective only
	MinZoom     float64 `yaml:"minZoom"`     // orthographic only
	MaxZoom     float64 `yaml:"maxZoom"`     // orthographic only

	EnableRotate    bool    `yaml:"enableRotate"`
	RotateSpeed     float64 `yaml:"rotateSpeed"`
	MinPolarAngle   float64 `yaml:"minPolarAngle"`
	MaxPolarAngle   float64 `yaml:"maxPolarAngle"`
	MinAzimuthAngle float64 `yaml:"minAzimuthAngle"`
	MaxAzimuthAngle float64 `yaml:"maxAzimuthAngle"`

	EnablePan bool    `yaml:"enablePan"`
	PanSpeed  float64 `yaml:"panSpeed"`
	// ScreenSpacePanning pans along the camera's up axis; when false panning stays on the ground plane.
	ScreenSpacePanning bool `yaml:"screenSpacePanning"`
	// KeyPanSpeed is the number of pixels one arrow key press pans by.
	KeyPanSpeed float64 `yaml:"keyPanSpeed"`

	// AutoRotate orbits the camera while no gesture is active.
	// AutoRotateSpeed 2.0 completes one orbit every 30 seconds.
	AutoRotate      bool    `yaml:"autoRotate"`
	AutoRotateSpeed float64 `yaml:"autoRotateSpeed"`

	MouseButtons MouseButtons `yaml:"mouseButtons"`
	Touches      Touches      `yaml:"touches"`
	Keys         Keys         `yaml:"keys"`
}

// DefaultControllerConfig returns the orbit preset: left drag rotates, middle dollies,
// right pans; one finger rotates, two fingers dolly and pan.
//
// Returns:
//   - ControllerConfig: the default configuration
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{
		Enabled: true,

		EnableDamping: false,
		DampingFactor: 0.05,

		EnableZoom:  true,
		ZoomSpeed:   1.0,
		MinDistance: 0,
		MaxDistance: math.Inf(1),
		MinZoom:     0,
		MaxZoom:     math.Inf(1),

		EnableRotate:    true,
		RotateSpeed:     1.0,
		MinPolarAngle:   0,
		MaxPolarAngle:   math.Pi,
		MinAzimuthAngle: math.Inf(-1),
		MaxAzimuthAngle: math.Inf(1),

		EnablePan:          true,
		PanSpeed:           1.0,
		ScreenSpacePanning: true,
		KeyPanSpeed:        7.0,

		AutoRotate:      false,
		AutoRotateSpeed: 2.0,

		MouseButtons: MouseButtons{Left: MouseRotate, Middle: MouseDolly, Right: MousePan},
		Touches:      Touches{One: TouchRotate, Two: TouchDollyPan},
		Keys:         Keys{Left: common.KeyLeft, Up: common.KeyUp, Right: common.KeyRight, Bottom: common.KeyDown},
	}
}

// MapControllerConfig returns the map preset: left drag pans on the ground plane, right rotates;
// one finger pans, two fingers dolly and rotate.
//
// Returns:
//   - ControllerConfig: the map configuration
func MapControllerConfig() ControllerConfig {
	cfg := DefaultControllerConfig()
	cfg.ScreenSpacePanning = false
	cfg.MouseButtons.Left = MousePan
	cfg.MouseButtons.Right = MouseRotate
	cfg.Touches.One = TouchPan
	cfg.Touches.Two = TouchDollyRotate
	return cfg
}

// LoadControllerConfig reads a YAML controller configuration.
// Keys missing from the file keep their DefaultControllerConfig values.
//
// Parameters:
//   - path: path to the YAML file
//
// Returns:
//   - ControllerConfig: the loaded configuration
//   - error: error if the file cannot be read, parsed or validated
func LoadControllerConfig(path string) (ControllerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ControllerConfig{}, fmt.Errorf("failed to read controller config %s: %w", path, err)
	}
	cfg, err := ParseControllerConfig(data)
	if err != nil {
		return ControllerConfig{}, fmt.Errorf("invalid controller config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseControllerConfig decodes YAML over the defaults and validates the result.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - ControllerConfig: the decoded configuration
//   - error: error if decoding or validation fails
func ParseControllerConfig(data []byte) (ControllerConfig, error) {
	cfg := DefaultControllerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ControllerConfig{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ControllerConfig{}, err
	}
	return cfg, nil
}

// Validate checks bounds and mappings.
//
// Returns:
//   - error: the first problem found, or nil
func (c ControllerConfig) Validate() error {
	if c.DampingFactor < 0 || c.DampingFactor > 1 || math.IsNaN(c.DampingFactor) {
		return fmt.Errorf("dampingFactor must be within [0, 1], got %g", c.DampingFactor)
	}
	if math.IsNaN(c.MinDistance) || math.IsNaN(c.MaxDistance) || c.MinDistance < 0 || c.MinDistance > c.MaxDistance {
		return fmt.Errorf("distance bounds must satisfy 0 <= min <= max, got [%g, %g]", c.MinDistance, c.MaxDistance)
	}
	if math.IsNaN(c.MinZoom) || math.IsNaN(c.MaxZoom) || c.MinZoom < 0 || c.MinZoom > c.MaxZoom {
		return fmt.Errorf("zoom bounds must satisfy 0 <= min <= max, got [%g, %g]", c.MinZoom, c.MaxZoom)
	}
	if math.IsNaN(c.MinPolarAngle) || math.IsNaN(c.MaxPolarAngle) ||
		c.MinPolarAngle < 0 || c.MaxPolarAngle > math.Pi || c.MinPolarAngle > c.MaxPolarAngle {
		return fmt.Errorf("polar bounds must lie within [0, pi] with min <= max, got [%g, %g]", c.MinPolarAngle, c.MaxPolarAngle)
	}
	if math.IsNaN(c.MinAzimuthAngle) || math.IsNaN(c.MaxAzimuthAngle) {
		return fmt.Errorf("azimuth bounds must not be NaN")
	}
	if !math.IsInf(c.MinAzimuthAngle, 0) && math.Abs(c.MinAzimuthAngle) > common.TwoPi {
		return fmt.Errorf("minAzimuthAngle must lie within [-2pi, 2pi], got %g", c.MinAzimuthAngle)
	}
	if !math.IsInf(c.MaxAzimuthAngle, 0) && math.Abs(c.MaxAzimuthAngle) > common.TwoPi {
		return fmt.Errorf("maxAzimuthAngle must lie within [-2pi, 2pi], got %g", c.MaxAzimuthAngle)
	}
	for name, speed := range map[string]float64{
		"zoomSpeed":       c.ZoomSpeed,
		"rotateSpeed":     c.RotateSpeed,
		"panSpeed":        c.PanSpeed,
		"keyPanSpeed":     c.KeyPanSpeed,
		"autoRotateSpeed": c.AutoRotateSpeed,
	} {
		if math.IsNaN(speed) || math.IsInf(speed, 0) {
			return fmt.Errorf("%s must be finite, got %g", name, speed)
		}
	}
	// gesture speeds scale pixel deltas; a negative one would invert the gesture
	for _, speed := range []struct {
		name  string
		value float64
	}{
		{"zoomSpeed", c.ZoomSpeed},
		{"rotateSpeed", c.RotateSpeed},
		{"panSpeed", c.PanSpeed},
	} {
		if speed.value < 0 {
			return fmt.Errorf("%s must not be negative, got %g", speed.name, speed.value)
		}
	}
	if c.Touches.One != TouchNone && c.Touches.One != TouchRotate && c.Touches.One != TouchPan {
		return fmt.Errorf("touches.one must be rotate or pan, got %s", c.Touches.One)
	}
	if c.Touches.Two != TouchNone && c.Touches.Two != TouchDollyPan && c.Touches.Two != TouchDollyRotate {
		return fmt.Errorf("touches.two must be dollyPan or dollyRotate, got %s", c.Touches.Two)
	}
	return nil
}
