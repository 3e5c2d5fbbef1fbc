package camera

import (
	"bytes"
	"log"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// vecApprox compares with an absolute tolerance, so components near zero tolerate float noise.
func vecApprox(a, b mgl64.Vec3, eps float64) bool {
	return a.Sub(b).Len() < eps
}

func matApprox(a, b mgl64.Mat4, eps float64) bool {
	for i := range a {
		if !approxEqual(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// fakeSurface records the callbacks a controller registers so tests can inspect and fire them.
type fakeSurface struct {
	width, height int

	down   func(input.PointerEvent)
	move   func(input.PointerEvent)
	up     func(input.PointerEvent)
	cancel func(input.PointerEvent)
	wheel  func(input.WheelEvent)
	key    func(input.KeyEvent)
}

var _ InputSurface = &fakeSurface{}
var _ KeySurface = &fakeSurface{}

func newFakeSurface(width, height int) *fakeSurface {
	return &fakeSurface{width: width, height: height}
}

func (s *fakeSurface) Width() int  { return s.width }
func (s *fakeSurface) Height() int { return s.height }

func (s *fakeSurface) SetPointerDownCallback(cb func(input.PointerEvent))   { s.down = cb }
func (s *fakeSurface) SetPointerMoveCallback(cb func(input.PointerEvent))   { s.move = cb }
func (s *fakeSurface) SetPointerUpCallback(cb func(input.PointerEvent))     { s.up = cb }
func (s *fakeSurface) SetPointerCancelCallback(cb func(input.PointerEvent)) { s.cancel = cb }
func (s *fakeSurface) SetWheelCallback(cb func(input.WheelEvent))           { s.wheel = cb }
func (s *fakeSurface) SetKeyDownCallback(cb func(input.KeyEvent))           { s.key = cb }

// plainNavigable is a scene object with no camera capability.
type plainNavigable struct {
	position    mgl64.Vec3
	orientation mgl64.Quat
	up          mgl64.Vec3
}

func newPlainNavigable(position mgl64.Vec3) *plainNavigable {
	return &plainNavigable{position: position, orientation: mgl64.QuatIdent(), up: common.WorldUp}
}

func (n *plainNavigable) Position() mgl64.Vec3     { return n.position }
func (n *plainNavigable) SetPosition(p mgl64.Vec3) { n.position = p }
func (n *plainNavigable) Orientation() mgl64.Quat  { return n.orientation }
func (n *plainNavigable) Up() mgl64.Vec3           { return n.up }
func (n *plainNavigable) WorldMatrix() mgl64.Mat4 {
	return common.ComposeWorldMatrix(n.position, n.orientation)
}
func (n *plainNavigable) SetLookAt(target mgl64.Vec3) {
	n.orientation = common.LookAtQuat(n.position, target, n.up)
}

// switchingCamera reports whatever projection kind the test sets, regardless of the wrapped camera.
type switchingCamera struct {
	Camera
	kind ProjectionKind
}

func (s *switchingCamera) ProjectionKind() ProjectionKind { return s.kind }

// rig is a camera at (0, 0, 10) looking at the origin, a 800x600 surface and an attached controller.
type rig struct {
	camera     Camera
	surface    *fakeSurface
	controller OrbitController
	events     []ControlEvent
	logs       *bytes.Buffer
}

func newRig(t *testing.T, cameraOptions []CameraBuilderOption, options ...CameraControllerOption) *rig {
	t.Helper()
	base := []CameraBuilderOption{WithPosition(0, 0, 10), WithLookAt(0, 0, 0)}
	cam := NewCamera(append(base, cameraOptions...)...)
	return newRigFor(t, cam, options...)
}

func newRigFor(t *testing.T, object Navigable, options ...CameraControllerOption) *rig {
	t.Helper()
	r := &rig{surface: newFakeSurface(800, 600), logs: &bytes.Buffer{}}
	if cam, ok := object.(Camera); ok {
		r.camera = cam
	}
	options = append([]CameraControllerOption{WithLogger(log.New(r.logs, "", 0))}, options...)
	r.controller = NewOrbitController(object, r.surface, options...)
	r.controller.AddListener(func(e ControlEvent) {
		r.events = append(r.events, e)
	})
	return r
}

func (r *rig) count(e ControlEvent) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

func (r *rig) reset() {
	r.events = nil
}

func mouse(id int, button input.Button, x, y float64) input.PointerEvent {
	return input.PointerEvent{ID: id, Kind: input.PointerMouse, Button: button, PageX: x, PageY: y, ClientX: x, ClientY: y}
}

func touch(id int, x, y float64) input.PointerEvent {
	return input.PointerEvent{ID: id, Kind: input.PointerTouch, PageX: x, PageY: y, ClientX: x, ClientY: y}
}
