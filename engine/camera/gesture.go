package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// ControlState is the navigation gesture currently driving the controller.
type ControlState int

const (
	StateNone ControlState = iota
	StateRotate
	StateDolly
	StatePan
	StateTouchRotate
	StateTouchPan
	StateTouchDollyPan
	StateTouchDollyRotate
)

var controlStateNames = map[ControlState]string{
	StateNone:             "none",
	StateRotate:           "rotate",
	StateDolly:            "dolly",
	StatePan:              "pan",
	StateTouchRotate:      "touchRotate",
	StateTouchPan:         "touchPan",
	StateTouchDollyPan:    "touchDollyPan",
	StateTouchDollyRotate: "touchDollyRotate",
}

func (s ControlState) String() string {
	if name, ok := controlStateNames[s]; ok {
		return name
	}
	return "unknown"
}

const swapModifiers = input.ModCtrl | input.ModMeta | input.ModShift

func (oc *orbitControllerImpl) OnPointerDown(ev input.PointerEvent) {
	oc.locked(func() {
		if !oc.config.Enabled {
			return
		}

		if oc.pointers.count() == 0 && !oc.capturing {
			oc.capturing = true
			if oc.surface != nil {
				oc.surface.SetPointerMoveCallback(oc.OnPointerMove)
				oc.surface.SetPointerUpCallback(oc.OnPointerUp)
			}
		}
		oc.pointers.add(ev.ID)

		if ev.Kind == input.PointerTouch {
			oc.touchStart(ev)
		} else {
			oc.mouseDown(ev)
		}
	})
}

func (oc *orbitControllerImpl) OnPointerMove(ev input.PointerEvent) {
	oc.locked(func() {
		if !oc.config.Enabled || !oc.capturing {
			return
		}

		if ev.Kind == input.PointerTouch {
			oc.touchMove(ev)
		} else {
			oc.mouseMove(ev)
		}
	})
}

func (oc *orbitControllerImpl) OnPointerUp(ev input.PointerEvent) {
	oc.locked(func() {
		oc.pointers.remove(ev.ID)

		if oc.pointers.count() == 0 && oc.capturing {
			oc.capturing = false
			if oc.surface != nil {
				oc.surface.SetPointerMoveCallback(nil)
				oc.surface.SetPointerUpCallback(nil)
			}
		}

		if oc.state != StateNone {
			oc.events.emit(EventEnd)
		}
		oc.state = StateNone
	})
}

// OnPointerCancel forgets the pointer without ending the gesture; only a pointer-up does that.
func (oc *orbitControllerImpl) OnPointerCancel(ev input.PointerEvent) {
	oc.locked(func() {
		oc.pointers.remove(ev.ID)
	})
}

func (oc *orbitControllerImpl) OnWheel(ev input.WheelEvent) {
	oc.locked(func() {
		if !oc.config.Enabled || !oc.config.EnableZoom || oc.state != StateNone {
			return
		}

		oc.flight = nil
		oc.events.emit(EventStart)
		switch {
		case ev.DeltaY < 0:
			oc.dollyIn(oc.zoomScale())
		case ev.DeltaY > 0:
			oc.dollyOut(oc.zoomScale())
		}
		oc.events.emit(EventEnd)
	})
}

func (oc *orbitControllerImpl) OnKeyDown(ev input.KeyEvent) {
	oc.locked(func() {
		if !oc.config.Enabled || !oc.config.EnablePan {
			return
		}

		k := oc.config.KeyPanSpeed
		keys := oc.config.Keys
		switch ev.Code {
		case keys.Up:
			oc.pan(0, k)
		case keys.Bottom:
			oc.pan(0, -k)
		case keys.Left:
			oc.pan(k, 0)
		case keys.Right:
			oc.pan(-k, 0)
		default:
			return
		}
		oc.flight = nil
	})
}

// beginGesture enters a non-None state, cancelling any FlyTo in progress.
func (oc *orbitControllerImpl) beginGesture(state ControlState) {
	oc.state = state
	oc.flight = nil
	oc.events.emit(EventStart)
}

func (oc *orbitControllerImpl) mouseDown(ev input.PointerEvent) {
	var action MouseAction
	switch ev.Button {
	case input.ButtonLeft:
		action = oc.config.MouseButtons.Left
	case input.ButtonMiddle:
		action = oc.config.MouseButtons.Middle
	case input.ButtonRight:
		action = oc.config.MouseButtons.Right
	default:
		action = MouseNone
	}

	if ev.Modifiers.Has(swapModifiers) {
		switch action {
		case MouseRotate:
			action = MousePan
		case MousePan:
			action = MouseRotate
		}
	}

	client := mgl64.Vec2{ev.ClientX, ev.ClientY}
	switch action {
	case MouseDolly:
		if !oc.config.EnableZoom {
			return
		}
		oc.dollyStart = client
		oc.beginGesture(StateDolly)
	case MouseRotate:
		if !oc.config.EnableRotate {
			return
		}
		oc.rotateStart = client
		oc.beginGesture(StateRotate)
	case MousePan:
		if !oc.config.EnablePan {
			return
		}
		oc.panStart = client
		oc.beginGesture(StatePan)
	default:
		oc.state = StateNone
	}
}

func (oc *orbitControllerImpl) mouseMove(ev input.PointerEvent) {
	client := mgl64.Vec2{ev.ClientX, ev.ClientY}
	switch oc.state {
	case StateRotate:
		if oc.config.EnableRotate {
			oc.rotateBy(client)
		}
	case StateDolly:
		if oc.config.EnableZoom {
			dy := client.Y() - oc.dollyStart.Y()
			switch {
			case dy > 0:
				oc.dollyOut(oc.zoomScale())
			case dy < 0:
				oc.dollyIn(oc.zoomScale())
			}
			oc.dollyStart = client
		}
	case StatePan:
		if oc.config.EnablePan {
			oc.panBy(client)
		}
	}
}

func (oc *orbitControllerImpl) touchStart(ev input.PointerEvent) {
	oc.pointers.track(ev.ID, ev.PageX, ev.PageY)

	switch oc.pointers.count() {
	case 1:
		switch oc.config.Touches.One {
		case TouchRotate:
			if !oc.config.EnableRotate {
				return
			}
			oc.rotateStart = oc.pointers.anchor()
			oc.beginGesture(StateTouchRotate)
		case TouchPan:
			if !oc.config.EnablePan {
				return
			}
			oc.panStart = oc.pointers.anchor()
			oc.beginGesture(StateTouchPan)
		default:
			oc.state = StateNone
		}
	case 2:
		switch oc.config.Touches.Two {
		case TouchDollyPan:
			if !oc.config.EnableZoom && !oc.config.EnablePan {
				return
			}
			if oc.config.EnableZoom {
				oc.dollySpread = oc.pointers.spread()
			}
			if oc.config.EnablePan {
				oc.panStart = oc.pointers.anchor()
			}
			oc.beginGesture(StateTouchDollyPan)
		case TouchDollyRotate:
			if !oc.config.EnableZoom && !oc.config.EnableRotate {
				return
			}
			if oc.config.EnableZoom {
				oc.dollySpread = oc.pointers.spread()
			}
			if oc.config.EnableRotate {
				oc.rotateStart = oc.pointers.anchor()
			}
			oc.beginGesture(StateTouchDollyRotate)
		default:
			oc.state = StateNone
		}
	default:
		oc.state = StateNone
	}
}

func (oc *orbitControllerImpl) touchMove(ev input.PointerEvent) {
	oc.pointers.track(ev.ID, ev.PageX, ev.PageY)

	switch oc.state {
	case StateTouchRotate:
		if oc.config.EnableRotate {
			oc.rotateBy(oc.touchPoint(ev))
		}
	case StateTouchPan:
		if oc.config.EnablePan {
			oc.panBy(oc.touchPoint(ev))
		}
	case StateTouchDollyPan:
		if oc.config.EnableZoom {
			oc.pinch(ev)
		}
		if oc.config.EnablePan {
			oc.panBy(oc.touchPoint(ev))
		}
	case StateTouchDollyRotate:
		if oc.config.EnableZoom {
			oc.pinch(ev)
		}
		if oc.config.EnableRotate {
			oc.rotateBy(oc.touchPoint(ev))
		}
	default:
		oc.state = StateNone
	}
}

// touchPoint is the moving pointer's page position, or its midpoint with the gesture partner.
func (oc *orbitControllerImpl) touchPoint(ev input.PointerEvent) mgl64.Vec2 {
	p := mgl64.Vec2{ev.PageX, ev.PageY}
	if oc.pointers.count() == 1 {
		return p
	}
	other, ok := oc.pointers.other(ev.ID)
	if !ok {
		return p
	}
	return p.Add(other).Mul(0.5)
}

// rotateBy turns a pointer displacement into orbit angles. Both axes divide by the viewport
// height so a full-height drag is one full turn.
func (oc *orbitControllerImpl) rotateBy(end mgl64.Vec2) {
	delta := end.Sub(oc.rotateStart).Mul(oc.config.RotateSpeed)
	_, height := oc.viewportSize()
	oc.rotateLeft(common.TwoPi * delta.X() / height)
	oc.rotateUp(common.TwoPi * delta.Y() / height)
	oc.rotateStart = end
}

func (oc *orbitControllerImpl) panBy(end mgl64.Vec2) {
	delta := end.Sub(oc.panStart).Mul(oc.config.PanSpeed)
	oc.pan(delta.X(), delta.Y())
	oc.panStart = end
}

// pinch applies one dolly step from the change in spread between the two gesture pointers.
func (oc *orbitControllerImpl) pinch(ev input.PointerEvent) {
	other, ok := oc.pointers.other(ev.ID)
	if !ok {
		return
	}
	spread := mgl64.Vec2{ev.PageX, ev.PageY}.Sub(other).Len()
	if spread > 0 && oc.dollySpread > 0 {
		oc.dollyOut(math.Pow(spread/oc.dollySpread, oc.config.ZoomSpeed))
	}
	oc.dollySpread = spread
}
