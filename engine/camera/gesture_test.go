package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

func TestControlStateString(t *testing.T) {
	if got := StateTouchDollyPan.String(); got != "touchDollyPan" {
		t.Errorf("String() = %q, want touchDollyPan", got)
	}
	if got := ControlState(42).String(); got != "unknown" {
		t.Errorf("String() = %q, want unknown", got)
	}
}

func TestAttachRegistersSurfaceCallbacks(t *testing.T) {
	r := newRig(t, nil)
	if r.surface.down == nil || r.surface.cancel == nil || r.surface.wheel == nil {
		t.Fatal("down, cancel and wheel callbacks should be registered at attach")
	}
	if r.surface.move != nil || r.surface.up != nil {
		t.Error("move and up callbacks should wait for the first pointer down")
	}
}

func TestPointerDownUpWithoutMotion(t *testing.T) {
	r := newRig(t, nil)

	r.surface.down(mouse(1, input.ButtonLeft, 10, 10))
	if r.controller.State() != StateRotate {
		t.Fatalf("State() = %v, want rotate", r.controller.State())
	}
	if r.surface.move == nil || r.surface.up == nil {
		t.Fatal("move and up callbacks should be registered after pointer down")
	}

	r.surface.up(mouse(1, input.ButtonLeft, 10, 10))

	if len(r.events) != 2 || r.events[0] != EventStart || r.events[1] != EventEnd {
		t.Errorf("events = %v, want [start end]", r.events)
	}
	if r.controller.State() != StateNone {
		t.Errorf("State() = %v, want none", r.controller.State())
	}
	if r.controller.ActivePointers() != 0 {
		t.Errorf("ActivePointers() = %d, want 0", r.controller.ActivePointers())
	}
	if r.surface.move != nil || r.surface.up != nil {
		t.Error("move and up callbacks should be removed after the last pointer up")
	}
}

func TestPointerDownIgnoredWhenDisabled(t *testing.T) {
	r := newRig(t, nil)
	r.controller.SetEnabled(false)

	r.controller.OnPointerDown(mouse(1, input.ButtonLeft, 0, 0))

	if len(r.events) != 0 {
		t.Errorf("events = %v, want none", r.events)
	}
	if r.controller.ActivePointers() != 0 {
		t.Errorf("ActivePointers() = %d, want 0", r.controller.ActivePointers())
	}
}

func TestDisabledActionStaysNone(t *testing.T) {
	cfg := DefaultControllerConfig()
	cfg.EnableRotate = false
	r := newRig(t, nil, WithConfig(cfg))

	r.controller.OnPointerDown(mouse(1, input.ButtonLeft, 0, 0))

	if r.controller.State() != StateNone {
		t.Errorf("State() = %v, want none", r.controller.State())
	}
	if r.count(EventStart) != 0 {
		t.Errorf("start events = %d, want 0", r.count(EventStart))
	}

	r.controller.OnPointerUp(mouse(1, input.ButtonLeft, 0, 0))
	if r.count(EventEnd) != 0 {
		t.Errorf("end events = %d, want 0 when no gesture started", r.count(EventEnd))
	}
}

func TestModifiersSwapRotateAndPan(t *testing.T) {
	tests := []struct {
		name   string
		button input.Button
		mods   input.Modifiers
		want   ControlState
	}{
		{"left", input.ButtonLeft, 0, StateRotate},
		{"left+shift", input.ButtonLeft, input.ModShift, StatePan},
		{"left+ctrl", input.ButtonLeft, input.ModCtrl, StatePan},
		{"right", input.ButtonRight, 0, StatePan},
		{"right+meta", input.ButtonRight, input.ModMeta, StateRotate},
		{"middle+shift", input.ButtonMiddle, input.ModShift, StateDolly},
		{"left+alt", input.ButtonLeft, input.ModAlt, StateRotate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, nil)
			ev := mouse(1, tt.button, 0, 0)
			ev.Modifiers = tt.mods
			r.controller.OnPointerDown(ev)
			if got := r.controller.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPointerCancelDoesNotEndGesture(t *testing.T) {
	r := newRig(t, nil)

	r.surface.down(mouse(1, input.ButtonLeft, 0, 0))
	r.surface.cancel(mouse(1, input.ButtonLeft, 0, 0))

	if r.count(EventEnd) != 0 {
		t.Errorf("end events = %d, want 0 after cancel", r.count(EventEnd))
	}
	if r.controller.ActivePointers() != 0 {
		t.Errorf("ActivePointers() = %d, want 0", r.controller.ActivePointers())
	}
	if r.controller.State() != StateRotate {
		t.Errorf("State() = %v, want rotate to persist after cancel", r.controller.State())
	}
	if r.surface.move == nil {
		t.Error("cancel should not remove the move callback")
	}
}

func TestWheelDolly(t *testing.T) {
	r := newRig(t, nil)
	r.controller.Update(0)

	r.surface.wheel(input.WheelEvent{DeltaY: -1})
	if len(r.events) < 3 || r.events[1] != EventStart || r.events[2] != EventEnd {
		t.Fatalf("events = %v, want change then start, end", r.events)
	}
	r.controller.Update(0)
	if d := r.controller.Distance(); !approxEqual(d, 9.5, epsilon) {
		t.Errorf("Distance() after wheel up = %f, want 9.5", d)
	}

	r.surface.wheel(input.WheelEvent{DeltaY: 1})
	r.controller.Update(0)
	if d := r.controller.Distance(); !approxEqual(d, 10, epsilon) {
		t.Errorf("Distance() after wheel down = %f, want 10", d)
	}
}

func TestWheelIgnoredDuringGesture(t *testing.T) {
	r := newRig(t, nil)
	r.controller.OnPointerDown(mouse(1, input.ButtonLeft, 0, 0))
	r.reset()

	r.controller.OnWheel(input.WheelEvent{DeltaY: -1})

	if len(r.events) != 0 {
		t.Errorf("events = %v, want none while rotating", r.events)
	}
}

func TestMouseRotateDrag(t *testing.T) {
	r := newRig(t, nil)

	r.surface.down(mouse(1, input.ButtonLeft, 100, 100))
	r.surface.move(mouse(1, input.ButtonLeft, 100, 160))
	r.controller.Update(0)

	want := math.Pi/2 - common.TwoPi*60/600
	if phi := r.controller.PolarAngle(); !approxEqual(phi, want, 1e-9) {
		t.Errorf("PolarAngle() = %f, want %f", phi, want)
	}
	if d := r.controller.Distance(); !approxEqual(d, 10, 1e-9) {
		t.Errorf("Distance() = %f, want 10", d)
	}
}

func TestMouseDollyDrag(t *testing.T) {
	r := newRig(t, nil)

	r.surface.down(mouse(1, input.ButtonMiddle, 0, 0))
	r.surface.move(mouse(1, input.ButtonMiddle, 0, 10))
	r.controller.Update(0)

	if d := r.controller.Distance(); !approxEqual(d, 10/0.95, 1e-9) {
		t.Errorf("Distance() after dragging down = %f, want %f", d, 10/0.95)
	}
}

func TestMoveWithoutDownIgnored(t *testing.T) {
	r := newRig(t, nil)
	r.controller.Update(0)

	r.controller.OnPointerMove(mouse(1, input.ButtonLeft, 500, 500))
	r.controller.Update(0)

	if !vecApprox(r.camera.Position(), mgl64.Vec3{0, 0, 10}, 1e-9) {
		t.Errorf("Position() = %v, want unchanged", r.camera.Position())
	}
}

func TestTouchRotate(t *testing.T) {
	r := newRig(t, nil)

	r.surface.down(touch(1, 100, 100))
	if r.controller.State() != StateTouchRotate {
		t.Fatalf("State() = %v, want touchRotate", r.controller.State())
	}
	r.surface.move(touch(1, 250, 100))
	r.controller.Update(0)

	if !vecApprox(r.camera.Position(), mgl64.Vec3{-10, 0, 0}, 1e-9) {
		t.Errorf("Position() = %v, want (-10, 0, 0)", r.camera.Position())
	}
	if theta := r.controller.AzimuthalAngle(); !approxEqual(theta, -math.Pi/2, 1e-9) {
		t.Errorf("AzimuthalAngle() = %f, want -pi/2", theta)
	}
}

func TestPinchDollyAppliedOncePerMove(t *testing.T) {
	r := newRig(t, nil)

	r.surface.down(touch(1, 0, 0))
	r.surface.down(touch(2, 100, 0))
	if r.controller.State() != StateTouchDollyPan {
		t.Fatalf("State() = %v, want touchDollyPan", r.controller.State())
	}
	if r.count(EventStart) != 2 {
		t.Errorf("start events = %d, want 2", r.count(EventStart))
	}

	r.surface.move(touch(2, 50, 0))
	r.controller.Update(0)
	if d := r.controller.Distance(); !approxEqual(d, 20, 1e-9) {
		t.Errorf("Distance() after pinch 100->50 = %f, want 20", d)
	}

	r.surface.move(touch(2, 50, 0))
	r.controller.Update(0)
	if d := r.controller.Distance(); !approxEqual(d, 20, 1e-9) {
		t.Errorf("Distance() after a move with unchanged spread = %f, want 20", d)
	}
}

func TestPinchRaisesSpreadRatioToZoomSpeed(t *testing.T) {
	r := newRig(t, nil, WithSpeeds(1, 2, 1))

	r.surface.down(touch(1, 0, 0))
	r.surface.down(touch(2, 100, 0))

	// (50/100)^2 = 1/4: halving the spread quadruples the distance
	r.surface.move(touch(2, 50, 0))
	r.controller.Update(0)
	if d := r.controller.Distance(); !approxEqual(d, 40, 1e-9) {
		t.Errorf("Distance() after pinch 100->50 at zoomSpeed 2 = %f, want 40", d)
	}

	r.surface.move(touch(2, 100, 0))
	r.controller.Update(0)
	if d := r.controller.Distance(); !approxEqual(d, 10, 1e-9) {
		t.Errorf("Distance() after spreading back to 100 = %f, want 10", d)
	}
}

func TestTwoFingerGestureNeedsAnEnabledAction(t *testing.T) {
	cfg := DefaultControllerConfig()
	cfg.EnableZoom = false
	cfg.EnablePan = false
	r := newRig(t, nil, WithConfig(cfg))

	r.controller.OnPointerDown(touch(1, 0, 0))
	r.controller.OnPointerDown(touch(2, 100, 0))

	if r.count(EventStart) != 1 {
		t.Errorf("start events = %d, want 1 (second finger refused)", r.count(EventStart))
	}
	if r.controller.State() != StateTouchRotate {
		t.Errorf("State() = %v, want touchRotate", r.controller.State())
	}
}

func TestThirdFingerResetsState(t *testing.T) {
	r := newRig(t, nil)

	r.controller.OnPointerDown(touch(1, 0, 0))
	r.controller.OnPointerDown(touch(2, 100, 0))
	r.controller.OnPointerDown(touch(3, 50, 50))

	if r.controller.State() != StateNone {
		t.Errorf("State() = %v, want none with three pointers", r.controller.State())
	}
	if r.controller.ActivePointers() != 3 {
		t.Errorf("ActivePointers() = %d, want 3", r.controller.ActivePointers())
	}
}

func TestKeyPan(t *testing.T) {
	r := newRig(t, nil)
	r.controller.ListenToKeyEvents(r.surface)
	if r.surface.key == nil {
		t.Fatal("key callback should be registered")
	}

	r.surface.key(input.KeyEvent{Code: common.KeyUp})
	r.controller.Update(0)

	step := 2 * 7 * 10 * math.Tan(math.Pi/8) / 600
	target := r.controller.Target()
	if !vecApprox(target, mgl64.Vec3{0, step, 0}, 1e-9) {
		t.Errorf("Target() after up key = %v, want (0, %f, 0)", target, step)
	}

	r.surface.key(input.KeyEvent{Code: common.KeyLeft})
	r.controller.Update(0)
	target = r.controller.Target()
	if !approxEqual(target.X(), -step, 1e-9) {
		t.Errorf("Target().X() after left key = %f, want %f", target.X(), -step)
	}
}

func TestKeyIgnoredWhenPanDisabled(t *testing.T) {
	cfg := DefaultControllerConfig()
	cfg.EnablePan = false
	r := newRig(t, nil, WithConfig(cfg))

	r.controller.OnKeyDown(input.KeyEvent{Code: common.KeyUp})
	r.controller.Update(0)

	if target := r.controller.Target(); target != (mgl64.Vec3{}) {
		t.Errorf("Target() = %v, want origin", target)
	}
}

func TestMapControllerMapping(t *testing.T) {
	cam := NewCamera(WithPosition(0, 0, 10), WithLookAt(0, 0, 0))
	surface := newFakeSurface(800, 600)
	oc := NewMapController(cam, surface)

	oc.OnPointerDown(mouse(1, input.ButtonLeft, 0, 0))
	if oc.State() != StatePan {
		t.Errorf("left button State() = %v, want pan", oc.State())
	}
	oc.OnPointerUp(mouse(1, input.ButtonLeft, 0, 0))

	oc.OnPointerDown(mouse(1, input.ButtonRight, 0, 0))
	if oc.State() != StateRotate {
		t.Errorf("right button State() = %v, want rotate", oc.State())
	}
	oc.OnPointerUp(mouse(1, input.ButtonRight, 0, 0))

	oc.OnPointerDown(touch(5, 0, 0))
	if oc.State() != StateTouchPan {
		t.Errorf("one finger State() = %v, want touchPan", oc.State())
	}
	oc.OnPointerDown(touch(6, 10, 0))
	if oc.State() != StateTouchDollyRotate {
		t.Errorf("two fingers State() = %v, want touchDollyRotate", oc.State())
	}
	if oc.Config().ScreenSpacePanning {
		t.Error("map preset should pan on the ground plane")
	}
}

func TestDisposeDetachesCallbacks(t *testing.T) {
	r := newRig(t, nil)
	r.controller.ListenToKeyEvents(r.surface)
	r.controller.OnPointerDown(mouse(1, input.ButtonLeft, 0, 0))

	r.controller.Dispose()

	if r.surface.down != nil || r.surface.move != nil || r.surface.up != nil ||
		r.surface.cancel != nil || r.surface.wheel != nil || r.surface.key != nil {
		t.Error("Dispose should remove every surface callback")
	}
	if r.controller.ActivePointers() != 0 {
		t.Errorf("ActivePointers() = %d, want 0", r.controller.ActivePointers())
	}
	if r.controller.State() != StateNone {
		t.Errorf("State() = %v, want none", r.controller.State())
	}
}
