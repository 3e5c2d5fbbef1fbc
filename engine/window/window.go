package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
// A Window satisfies camera.InputSurface and camera.KeySurface, so an orbit controller
// can attach to it directly.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in screen coordinates
	SetResizeCallback(callback func(width, height int))

	// SetPointerDownCallback sets the callback for the first mouse button press.
	// Further buttons pressed while one is held do not raise another pointer down.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to disable)
	SetPointerDownCallback(callback func(input.PointerEvent))

	// SetPointerMoveCallback sets the callback for cursor movement inside the window.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to disable)
	SetPointerMoveCallback(callback func(input.PointerEvent))

	// SetPointerUpCallback sets the callback for the release of the last held mouse button.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to disable)
	SetPointerUpCallback(callback func(input.PointerEvent))

	// SetPointerCancelCallback sets the callback raised when the window loses focus
	// while a mouse button is held.
	//
	// Parameters:
	//   - callback: function receiving the pointer event (or nil to disable)
	SetPointerCancelCallback(callback func(input.PointerEvent))

	// SetWheelCallback sets the callback for mouse scroll wheel events.
	//
	// Parameters:
	//   - callback: function receiving the wheel event (negative DeltaY = scroll up)
	SetWheelCallback(callback func(input.WheelEvent))

	// SetKeyDownCallback sets the callback for key press and repeat events.
	//
	// Parameters:
	//   - callback: function receiving the key event
	SetKeyDownCallback(callback func(input.KeyEvent))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key event
	SetKeyUpCallback(callback func(input.KeyEvent))

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in screen coordinates.
	//
	// Returns:
	//   - int: width in screen coordinates
	Width() int

	// Height returns the current window client area height in screen coordinates.
	//
	// Returns:
	//   - int: height in screen coordinates
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize.
	maxWidth int

	// maxHeight is the maximum allowed window height during resize.
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current window client area width in screen coordinates.
	width int

	// height is the current window client area height in screen coordinates.
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the window is resized.
	onResize func(width, height int)

	onPointerDown   func(input.PointerEvent)
	onPointerMove   func(input.PointerEvent)
	onPointerUp     func(input.PointerEvent)
	onPointerCancel func(input.PointerEvent)

	// onWheel is called for mouse wheel events.
	onWheel func(input.WheelEvent)

	// onKeyDown is called when a key is pressed or repeats.
	onKeyDown func(input.KeyEvent)

	// onKeyUp is called when a key is released.
	onKeyUp func(input.KeyEvent)
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:     "oxy-orbit",
		maxWidth:  1600,
		maxHeight: 1200,
		minWidth:  600,
		minHeight: 200,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetPointerDownCallback(callback func(input.PointerEvent)) {
	w.onPointerDown = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(input.PointerEvent)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetPointerUpCallback(callback func(input.PointerEvent)) {
	w.onPointerUp = callback
}

func (w *engineWindow) SetPointerCancelCallback(callback func(input.PointerEvent)) {
	w.onPointerCancel = callback
}

func (w *engineWindow) SetWheelCallback(callback func(input.WheelEvent)) {
	w.onWheel = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(input.KeyEvent)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(input.KeyEvent)) {
	w.onKeyUp = callback
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
