package camera

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultControllerConfigIsValid(t *testing.T) {
	if err := DefaultControllerConfig().Validate(); err != nil {
		t.Errorf("DefaultControllerConfig().Validate() = %v", err)
	}
	if err := MapControllerConfig().Validate(); err != nil {
		t.Errorf("MapControllerConfig().Validate() = %v", err)
	}
}

func TestParseControllerConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
enableDamping: true
dampingFactor: 0.1
maxDistance: 50
minAzimuthAngle: -1.5
maxAzimuthAngle: 1.5
mouseButtons:
  left: pan
  right: Rotate
touches:
  two: dollyRotate
keys:
  up: 87
`)
	cfg, err := ParseControllerConfig(data)
	if err != nil {
		t.Fatalf("ParseControllerConfig() error = %v", err)
	}

	if !cfg.EnableDamping || cfg.DampingFactor != 0.1 {
		t.Errorf("damping = %v/%f, want true/0.1", cfg.EnableDamping, cfg.DampingFactor)
	}
	if cfg.MaxDistance != 50 {
		t.Errorf("MaxDistance = %f, want 50", cfg.MaxDistance)
	}
	if cfg.MouseButtons.Left != MousePan || cfg.MouseButtons.Right != MouseRotate {
		t.Errorf("MouseButtons = %+v, want left=pan right=rotate", cfg.MouseButtons)
	}
	if cfg.MouseButtons.Middle != MouseDolly {
		t.Errorf("MouseButtons.Middle = %v, want default dolly", cfg.MouseButtons.Middle)
	}
	if cfg.Touches.Two != TouchDollyRotate || cfg.Touches.One != TouchRotate {
		t.Errorf("Touches = %+v, want one=rotate two=dollyRotate", cfg.Touches)
	}
	if cfg.Keys.Up != 87 || cfg.Keys.Left != DefaultControllerConfig().Keys.Left {
		t.Errorf("Keys = %+v, want up=87 and default left", cfg.Keys)
	}
	if !cfg.Enabled || cfg.RotateSpeed != 1 || cfg.KeyPanSpeed != 7 {
		t.Error("keys missing from the document should keep their defaults")
	}
	if !math.IsInf(cfg.MaxZoom, 1) {
		t.Errorf("MaxZoom = %f, want +Inf default", cfg.MaxZoom)
	}
}

func TestParseControllerConfigInfinity(t *testing.T) {
	cfg, err := ParseControllerConfig([]byte("minDistance: 1\nmaxDistance: .inf\nminAzimuthAngle: -.inf\n"))
	if err != nil {
		t.Fatalf("ParseControllerConfig() error = %v", err)
	}
	if !math.IsInf(cfg.MaxDistance, 1) || !math.IsInf(cfg.MinAzimuthAngle, -1) {
		t.Errorf("MaxDistance = %f, MinAzimuthAngle = %f, want +Inf and -Inf", cfg.MaxDistance, cfg.MinAzimuthAngle)
	}
}

func TestParseControllerConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown mouse action", "mouseButtons:\n  left: spin\n", "unknown mouse action"},
		{"unknown touch action", "touches:\n  one: pinch\n", "unknown touch action"},
		{"malformed", "enabled: [", "failed to parse YAML"},
		{"bad damping", "dampingFactor: 2\n", "dampingFactor"},
		{"inverted distance", "minDistance: 5\nmaxDistance: 1\n", "distance bounds"},
		{"inverted zoom", "minZoom: 3\nmaxZoom: 1\n", "zoom bounds"},
		{"polar out of range", "maxPolarAngle: 4\n", "polar bounds"},
		{"azimuth out of range", "minAzimuthAngle: -7\nmaxAzimuthAngle: 1\n", "minAzimuthAngle"},
		{"infinite speed", "rotateSpeed: .inf\n", "rotateSpeed"},
		{"NaN speed", "rotateSpeed: .nan\n", "rotateSpeed"},
		{"negative zoom speed", "zoomSpeed: -1\n", "zoomSpeed"},
		{"negative pan speed", "panSpeed: -0.5\n", "panSpeed"},
		{"NaN max distance", "maxDistance: .nan\n", "distance bounds"},
		{"NaN min distance", "minDistance: .nan\n", "distance bounds"},
		{"NaN min zoom", "minZoom: .nan\n", "zoom bounds"},
		{"NaN max zoom", "maxZoom: .nan\n", "zoom bounds"},
		{"NaN polar", "minPolarAngle: .nan\n", "polar bounds"},
		{"two-finger action on one finger", "touches:\n  one: dollyPan\n", "touches.one"},
		{"one-finger action on two fingers", "touches:\n  two: rotate\n", "touches.two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseControllerConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("ParseControllerConfig() error = nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestActionsMarshalByName(t *testing.T) {
	out, err := yaml.Marshal(MapControllerConfig().MouseButtons)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	want := "left: pan\nmiddle: dolly\nright: rotate\n"
	if string(out) != want {
		t.Errorf("yaml.Marshal() = %q, want %q", out, want)
	}
}

func TestLoadControllerConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controller.yaml")
	if err := os.WriteFile(path, []byte("autoRotate: true\nautoRotateSpeed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadControllerConfig(path)
	if err != nil {
		t.Fatalf("LoadControllerConfig() error = %v", err)
	}
	if !cfg.AutoRotate || cfg.AutoRotateSpeed != 4 {
		t.Errorf("autoRotate = %v/%f, want true/4", cfg.AutoRotate, cfg.AutoRotateSpeed)
	}
}

func TestLoadControllerConfigMissingFile(t *testing.T) {
	_, err := LoadControllerConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap fs.ErrNotExist", err)
	}
}
