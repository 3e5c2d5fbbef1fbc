package input

// MouseTracker turns per-button mouse callbacks into pointer events with one pointer per mouse:
// the first pressed button raises a pointer down, the last released raises a pointer up,
// and buttons in between only update state.
type MouseTracker struct {
	id   int
	held uint8
	x, y float64
}

// NewMouseTracker creates a tracker reporting events under the given pointer id.
//
// Parameters:
//   - id: pointer id used for every event
//
// Returns:
//   - *MouseTracker: the tracker
func NewMouseTracker(id int) *MouseTracker {
	return &MouseTracker{id: id}
}

// Press records a button press.
//
// Parameters:
//   - button: the pressed button (left, middle or right; others are ignored)
//   - mods: modifiers held during the press
//
// Returns:
//   - PointerEvent: the event at the last known cursor position
//   - bool: true if this press should raise a pointer down
func (t *MouseTracker) Press(button Button, mods Modifiers) (PointerEvent, bool) {
	ev := t.event(button, mods)
	if button < ButtonLeft || button > ButtonRight {
		return ev, false
	}
	first := t.held == 0
	t.held |= 1 << uint(button)
	return ev, first
}

// Release records a button release.
//
// Parameters:
//   - button: the released button
//   - mods: modifiers held during the release
//
// Returns:
//   - PointerEvent: the event at the last known cursor position
//   - bool: true if this release should raise a pointer up
func (t *MouseTracker) Release(button Button, mods Modifiers) (PointerEvent, bool) {
	ev := t.event(button, mods)
	if button < ButtonLeft || button > ButtonRight {
		return ev, false
	}
	mask := uint8(1) << uint(button)
	if t.held&mask == 0 {
		return ev, false
	}
	t.held &^= mask
	return ev, t.held == 0
}

// Move records the cursor position.
//
// Parameters:
//   - x, y: cursor position in window coordinates
//
// Returns:
//   - PointerEvent: the move event
func (t *MouseTracker) Move(x, y float64) PointerEvent {
	t.x, t.y = x, y
	return t.event(ButtonLeft, 0)
}

// Cancel forgets every held button, e.g. when the window loses focus.
//
// Returns:
//   - PointerEvent: the cancel event
//   - bool: true if a button was held and a pointer cancel should be raised
func (t *MouseTracker) Cancel() (PointerEvent, bool) {
	wasHeld := t.held != 0
	t.held = 0
	return t.event(ButtonLeft, 0), wasHeld
}

// Held reports whether any tracked button is down.
func (t *MouseTracker) Held() bool {
	return t.held != 0
}

func (t *MouseTracker) event(button Button, mods Modifiers) PointerEvent {
	return PointerEvent{
		ID:        t.id,
		Kind:      PointerMouse,
		PageX:     t.x,
		PageY:     t.y,
		ClientX:   t.x,
		ClientY:   t.y,
		Button:    button,
		Modifiers: mods,
	}
}
