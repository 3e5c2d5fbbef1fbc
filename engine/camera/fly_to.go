package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flight is an in-progress FlyTo. A single eased progress tween drives both the focus point
// and the orbit radius so they arrive together; interpolation itself stays in float64.
type flight struct {
	progress   *gween.Tween
	fromTarget mgl64.Vec3
	toTarget   mgl64.Vec3
	fromRadius float64
	toRadius   float64
}

func (oc *orbitControllerImpl) FlyTo(target mgl64.Vec3, radius float64, duration float32, easing ease.TweenFunc) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if easing == nil {
		easing = ease.Linear
	}
	if duration < 0 {
		duration = 0
	}

	fromRadius := radius
	if oc.object != nil {
		fromRadius = oc.object.Position().Sub(oc.target).Len()
	}
	oc.flight = &flight{
		progress:   gween.New(0, 1, duration, easing),
		fromTarget: oc.target,
		toTarget:   target,
		fromRadius: fromRadius,
		toRadius:   radius,
	}
}

func (oc *orbitControllerImpl) Flying() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.flight != nil
}

// advanceFlight moves the target along the active flight and returns the radius to use this tick.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) advanceFlight(deltaTime float32) (float64, bool) {
	if oc.flight == nil {
		return 0, false
	}
	if deltaTime <= 0 {
		deltaTime = float32(defaultTickSeconds)
	}

	f := oc.flight
	p, done := f.progress.Update(deltaTime)
	t := float64(p)
	oc.target = f.fromTarget.Add(f.toTarget.Sub(f.fromTarget).Mul(t))
	radius := f.fromRadius + (f.toRadius-f.fromRadius)*t
	if done {
		oc.target = f.toTarget
		radius = f.toRadius
		oc.flight = nil
	}
	return radius, true
}
