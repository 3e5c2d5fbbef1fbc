package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

func TestFlyToReachesTarget(t *testing.T) {
	r := newRig(t, nil)

	r.controller.FlyTo(mgl64.Vec3{4, 0, 0}, 4, 1, nil)
	if !r.controller.Flying() {
		t.Fatal("Flying() = false right after FlyTo")
	}

	r.controller.Update(0.5)
	if target := r.controller.Target(); !vecApprox(target, mgl64.Vec3{2, 0, 0}, 1e-6) {
		t.Errorf("Target() halfway = %v, want (2, 0, 0)", target)
	}
	if d := r.controller.Distance(); !approxEqual(d, 7, 1e-6) {
		t.Errorf("Distance() halfway = %f, want 7", d)
	}

	r.controller.Update(0.5)
	if r.controller.Flying() {
		t.Error("Flying() = true after the full duration")
	}
	if target := r.controller.Target(); target != (mgl64.Vec3{4, 0, 0}) {
		t.Errorf("Target() = %v, want (4, 0, 0)", target)
	}
	if d := r.controller.Distance(); !approxEqual(d, 4, 1e-9) {
		t.Errorf("Distance() = %f, want 4", d)
	}
}

func TestFlyToWithEasing(t *testing.T) {
	r := newRig(t, nil)

	r.controller.FlyTo(mgl64.Vec3{0, 0, 0}, 2, 1, ease.OutCubic)
	r.controller.Update(0.5)

	// out-cubic covers 87.5% of the way at the halfway mark
	if d := r.controller.Distance(); !approxEqual(d, 10-8*0.875, 1e-5) {
		t.Errorf("Distance() halfway = %f, want %f", d, 10-8*0.875)
	}
}

func TestFlyToRespectsDistanceBounds(t *testing.T) {
	r := newRig(t, nil, WithDistanceBounds(0, 6))

	r.controller.FlyTo(mgl64.Vec3{}, 20, 0, nil)
	r.controller.Update(0)

	if d := r.controller.Distance(); !approxEqual(d, 6, 1e-9) {
		t.Errorf("Distance() = %f, want 6", d)
	}
}

func TestGestureCancelsFlight(t *testing.T) {
	r := newRig(t, nil)

	r.controller.FlyTo(mgl64.Vec3{5, 5, 5}, 3, 2, nil)
	r.controller.OnPointerDown(mouse(1, input.ButtonLeft, 0, 0))

	if r.controller.Flying() {
		t.Error("Flying() = true after a gesture started")
	}

	r.controller.FlyTo(mgl64.Vec3{5, 5, 5}, 3, 2, nil)
	r.controller.OnPointerUp(mouse(1, input.ButtonLeft, 0, 0))
	r.controller.OnWheel(input.WheelEvent{DeltaY: 1})
	if r.controller.Flying() {
		t.Error("Flying() = true after a wheel step")
	}
}

func TestResetCancelsFlight(t *testing.T) {
	r := newRig(t, nil)

	r.controller.FlyTo(mgl64.Vec3{5, 5, 5}, 3, 2, nil)
	r.controller.Reset()

	if r.controller.Flying() {
		t.Error("Flying() = true after Reset")
	}
}
