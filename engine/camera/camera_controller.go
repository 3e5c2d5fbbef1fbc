package camera

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// OrbitController orbits, dollies and pans a Navigable around a focus point in response to
// pointer, wheel and key input. Input handlers accumulate motion; Update integrates it once
// per tick and writes the new pose to the navigable.
//
// Events are delivered synchronously to listeners before the triggering call returns.
type OrbitController interface {
	orbitInputHandler

	// Update integrates pending rotate/pan/dolly motion, applies all limits and moves the
	// navigable. Call it once per tick. With no pending input it changes nothing and
	// raises no EventChange.
	//
	// Parameters:
	//   - deltaTime: seconds since the previous tick (<= 0 assumes 1/60)
	Update(deltaTime float32)

	// AddListener registers a callback for start, end and change events.
	//
	// Parameters:
	//   - fn: the callback
	//
	// Returns:
	//   - func(): removes the listener
	AddListener(fn func(ControlEvent)) func()

	// ListenToKeyEvents subscribes to arrow-key panning on the given surface.
	//
	// Parameters:
	//   - surface: the surface delivering key presses
	ListenToKeyEvents(surface KeySurface)

	// Dispose detaches every surface callback and clears the pointer registry.
	Dispose()

	// SaveState records the current target, position and zoom for Reset.
	SaveState()

	// Reset restores the state recorded by SaveState (or at attach time) and raises EventChange.
	Reset()

	// FlyTo animates the focus point and orbit radius over duration seconds.
	// The animation advances inside Update and is cancelled by any gesture start.
	//
	// Parameters:
	//   - target: the new focus point
	//   - radius: the orbit radius to end at (still limited by the distance bounds)
	//   - duration: animation length in seconds
	//   - easing: easing curve, nil for linear
	FlyTo(target mgl64.Vec3, radius float64, duration float32, easing ease.TweenFunc)

	// Flying reports whether a FlyTo animation is in progress.
	//
	// Returns:
	//   - bool: true while animating
	Flying() bool

	// Target returns the focus point the camera orbits.
	//
	// Returns:
	//   - mgl64.Vec3: world-space focus point
	Target() mgl64.Vec3

	// SetTarget moves the focus point. The camera follows on the next Update.
	//
	// Parameters:
	//   - target: world-space focus point
	SetTarget(target mgl64.Vec3)

	// State returns the active navigation state.
	//
	// Returns:
	//   - ControlState: the current state
	State() ControlState

	// PolarAngle returns the polar angle computed by the last Update.
	//
	// Returns:
	//   - float64: angle from the up pole in radians
	PolarAngle() float64

	// AzimuthalAngle returns the azimuth computed by the last Update.
	//
	// Returns:
	//   - float64: angle around the up pole in radians
	AzimuthalAngle() float64

	// Distance returns the current distance between the navigable and the focus point.
	//
	// Returns:
	//   - float64: distance in world units
	Distance() float64

	// Binding returns the camera binding resolved at attach time.
	//
	// Returns:
	//   - CameraBinding: the binding
	Binding() CameraBinding

	// ActivePointers returns the number of pointers currently down.
	//
	// Returns:
	//   - int: active pointer count
	ActivePointers() int

	// Config returns a copy of the current configuration.
	//
	// Returns:
	//   - ControllerConfig: the configuration
	Config() ControllerConfig

	// SetConfig replaces the configuration after validating it.
	// The Enabled field is ignored; the on/off state belongs to SetEnabled. Rotate, zoom and pan
	// stay off if the controller disabled them because its target cannot support them.
	//
	// Parameters:
	//   - cfg: the new configuration
	//
	// Returns:
	//   - error: validation error, in which case nothing changes
	SetConfig(cfg ControllerConfig) error

	// Enabled reports whether input handling is on.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetEnabled turns input handling on or off. Update keeps integrating either way.
	//
	// Parameters:
	//   - enabled: the new state
	SetEnabled(enabled bool)
}

// orbitInputHandler is the raw input side of an OrbitController. Surfaces call these
// through the callbacks registered at attach time; they may also be called directly.
type orbitInputHandler interface {
	OnPointerDown(ev input.PointerEvent)
	OnPointerMove(ev input.PointerEvent)
	OnPointerUp(ev input.PointerEvent)
	OnPointerCancel(ev input.PointerEvent)
	OnWheel(ev input.WheelEvent)
	OnKeyDown(ev input.KeyEvent)
}
