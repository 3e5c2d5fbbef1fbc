package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// mousePointerID is the pointer id reported for the system mouse. GLFW has no touch input.
const mousePointerID = 1

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	parent  *engineWindow
	window  *glfw.Window
	mouse   *input.MouseTracker
	running bool
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// Nothing is drawn through GLFW, so no OpenGL context is created.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		parent:  w,
		window:  win,
		mouse:   input.NewMouseTracker(mousePointerID),
		running: true,
	}
	w.internalWindow = gw

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		ev := input.KeyEvent{Code: uint32(key), Modifiers: translateMods(mods)}
		switch action {
		case glfw.Press, glfw.Repeat:
			if w.onKeyDown != nil {
				w.onKeyDown(ev)
			}
		case glfw.Release:
			if w.onKeyUp != nil {
				w.onKeyUp(ev)
			}
		}
	})

	// GLFW reports positive yoff for scrolling up; wheel events use the opposite sign.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetScrollCallback
	win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if w.onWheel != nil {
			w.onWheel(input.WheelEvent{DeltaY: -yoff, Modifiers: currentMods(win)})
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetMouseButtonCallback
	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b, ok := translateButton(button)
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			if ev, down := gw.mouse.Press(b, translateMods(mods)); down && w.onPointerDown != nil {
				w.onPointerDown(ev)
			}
		case glfw.Release:
			if ev, up := gw.mouse.Release(b, translateMods(mods)); up && w.onPointerUp != nil {
				w.onPointerUp(ev)
			}
		}
	})

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetCursorPosCallback
	win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		ev := gw.mouse.Move(xpos, ypos)
		if w.onPointerMove != nil {
			w.onPointerMove(ev)
		}
	})

	// Button releases are not delivered while unfocused, so a held drag is cancelled instead.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetFocusCallback
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			return
		}
		if ev, cancel := gw.mouse.Cancel(); cancel && w.onPointerCancel != nil {
			w.onPointerCancel(ev)
		}
	})

	// Cursor positions are in screen coordinates, so the window size (not the framebuffer size)
	// is what pointer deltas are measured against, including on high-DPI displays.
	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetSizeCallback
	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	winWidth, winHeight := win.GetSize()
	w.width = winWidth
	w.height = winHeight

	xpos, ypos := win.GetCursorPos()
	gw.mouse.Move(xpos, ypos)

	return nil
}

// translateButton maps GLFW buttons onto left=0, middle=1, right=2 numbering.
func translateButton(button glfw.MouseButton) (input.Button, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft, true
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle, true
	case glfw.MouseButtonRight:
		return input.ButtonRight, true
	default:
		return 0, false
	}
}

func translateMods(mods glfw.ModifierKey) input.Modifiers {
	var m input.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= input.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= input.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= input.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= input.ModMeta
	}
	return m
}

// currentMods polls modifier keys for callbacks GLFW does not pass them to.
func currentMods(win *glfw.Window) input.Modifiers {
	var mods glfw.ModifierKey
	pressed := func(keys ...glfw.Key) bool {
		for _, k := range keys {
			if win.GetKey(k) == glfw.Press {
				return true
			}
		}
		return false
	}
	if pressed(glfw.KeyLeftShift, glfw.KeyRightShift) {
		mods |= glfw.ModShift
	}
	if pressed(glfw.KeyLeftControl, glfw.KeyRightControl) {
		mods |= glfw.ModControl
	}
	if pressed(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		mods |= glfw.ModAlt
	}
	if pressed(glfw.KeyLeftSuper, glfw.KeyRightSuper) {
		mods |= glfw.ModSuper
	}
	return translateMods(mods)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
// Returns false if the internal window is nil, the running flag is cleared, or GLFW reports ShouldClose.
//
// Parameters:
//   - w: the engineWindow to check
//
// Returns:
//   - bool: true if the window is still running
func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	gw := w.internalWindow.(*glfwWindow)
	return gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
// Returns an error if the internal window has not been initialized.
//
// Parameters:
//   - w: the engineWindow to close
//
// Returns:
//   - error: error if the window is not initialized
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return fmt.Errorf("window is not initialized")
	}
	gw := w.internalWindow.(*glfwWindow)
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
	w.internalWindow = nil
	return nil
}

// platformProcessMessages polls GLFW for pending events without blocking.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(w *engineWindow) bool {
	glfw.PollEvents()
	return platformIsRunningCheck(w)
}
