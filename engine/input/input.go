// Package input defines the platform-neutral pointer, wheel and key events consumed by camera controllers.
// Platform windows translate their native callbacks into these types.
package input

// PointerKind identifies the device behind a pointer event.
type PointerKind int

const (
	PointerMouse PointerKind = iota
	PointerTouch
	PointerPen
)

func (k PointerKind) String() string {
	switch k {
	case PointerMouse:
		return "mouse"
	case PointerTouch:
		return "touch"
	case PointerPen:
		return "pen"
	default:
		return "unknown"
	}
}

// Button is a mouse button index using left=0, middle=1, right=2 numbering.
type Button int

const (
	ButtonLeft   Button = 0
	ButtonMiddle Button = 1
	ButtonRight  Button = 2
)

// Modifiers is a bit set of keyboard modifiers held during an event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether any of the modifiers in mask are held.
func (m Modifiers) Has(mask Modifiers) bool {
	return m&mask != 0
}

// PointerEvent describes a pointer down, move, up or cancel.
// Page coordinates are document-relative; client coordinates are viewport-relative.
// On a plain desktop window both are the cursor position inside the client area.
type PointerEvent struct {
	ID        int
	Kind      PointerKind
	PageX     float64
	PageY     float64
	ClientX   float64
	ClientY   float64
	Button    Button
	Modifiers Modifiers
}

// WheelEvent describes a scroll wheel step. Negative DeltaY scrolls up (away from the user).
type WheelEvent struct {
	DeltaY    float64
	Modifiers Modifiers
}

// KeyEvent describes a key press. Code is a platform key code (see common key codes).
type KeyEvent struct {
	Code      uint32
	Modifiers Modifiers
}
