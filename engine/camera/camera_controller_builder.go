package camera

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraControllerOption is a functional option for configuring an OrbitController.
type CameraControllerOption func(*orbitControllerImpl)

// WithConfig replaces the whole controller configuration.
//
// Parameters:
//   - cfg: the configuration to use
//
// Returns:
//   - CameraControllerOption: functional option to set the configuration
func WithConfig(cfg ControllerConfig) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config = cfg
	}
}

// WithTarget sets the initial focus point.
//
// Parameters:
//   - x, y, z: world-space coordinates of the focus point
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(x, y, z float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.target = mgl64.Vec3{x, y, z}
	}
}

// WithLogger routes controller warnings to the given logger instead of log.Default().
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - CameraControllerOption: functional option to set the logger
func WithLogger(logger *log.Logger) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.logger = logger
	}
}

// WithDamping enables inertia with the given damping factor.
//
// Parameters:
//   - factor: share of pending motion applied per tick, within (0, 1]
//
// Returns:
//   - CameraControllerOption: functional option to enable damping
func WithDamping(factor float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.EnableDamping = true
		oc.config.DampingFactor = factor
	}
}

// WithAutoRotate enables auto-rotation while no gesture is active.
//
// Parameters:
//   - speed: 2.0 completes one orbit every 30 seconds
//
// Returns:
//   - CameraControllerOption: functional option to enable auto-rotation
func WithAutoRotate(speed float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.AutoRotate = true
		oc.config.AutoRotateSpeed = speed
	}
}

// WithDistanceBounds sets how far a perspective camera may dolly in and out.
//
// Parameters:
//   - min: minimum orbit radius
//   - max: maximum orbit radius
//
// Returns:
//   - CameraControllerOption: functional option to set distance bounds
func WithDistanceBounds(min, max float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.MinDistance = min
		oc.config.MaxDistance = max
	}
}

// WithZoomBounds sets how far an orthographic camera may zoom in and out.
//
// Parameters:
//   - min: minimum zoom factor
//   - max: maximum zoom factor
//
// Returns:
//   - CameraControllerOption: functional option to set zoom bounds
func WithZoomBounds(min, max float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.MinZoom = min
		oc.config.MaxZoom = max
	}
}

// WithPolarBounds limits vertical orbiting.
//
// Parameters:
//   - min: minimum polar angle in radians (0 = looking straight down)
//   - max: maximum polar angle in radians (pi = looking straight up)
//
// Returns:
//   - CameraControllerOption: functional option to set polar bounds
func WithPolarBounds(min, max float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.MinPolarAngle = min
		oc.config.MaxPolarAngle = max
	}
}

// WithAzimuthBounds limits horizontal orbiting. Both bounds must be finite to take effect.
//
// Parameters:
//   - min: minimum azimuth in radians
//   - max: maximum azimuth in radians
//
// Returns:
//   - CameraControllerOption: functional option to set azimuth bounds
func WithAzimuthBounds(min, max float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.MinAzimuthAngle = min
		oc.config.MaxAzimuthAngle = max
	}
}

// WithSpeeds sets the rotate, zoom and pan speed multipliers.
//
// Parameters:
//   - rotate: rotate speed multiplier
//   - zoom: zoom speed exponent
//   - pan: pan speed multiplier
//
// Returns:
//   - CameraControllerOption: functional option to set speeds
func WithSpeeds(rotate, zoom, pan float64) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.RotateSpeed = rotate
		oc.config.ZoomSpeed = zoom
		oc.config.PanSpeed = pan
	}
}

// WithScreenSpacePanning chooses between panning along the camera's up axis (true)
// and along the ground plane (false).
//
// Parameters:
//   - enabled: true for screen-space panning
//
// Returns:
//   - CameraControllerOption: functional option to set the panning mode
func WithScreenSpacePanning(enabled bool) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.ScreenSpacePanning = enabled
	}
}

// WithMouseButtons remaps the mouse buttons.
//
// Parameters:
//   - buttons: action per button
//
// Returns:
//   - CameraControllerOption: functional option to set the mapping
func WithMouseButtons(buttons MouseButtons) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.MouseButtons = buttons
	}
}

// WithTouches remaps one- and two-finger touches.
//
// Parameters:
//   - touches: action per finger count
//
// Returns:
//   - CameraControllerOption: functional option to set the mapping
func WithTouches(touches Touches) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.Touches = touches
	}
}

// WithKeys remaps the arrow-key pan directions.
//
// Parameters:
//   - keys: key code per direction
//
// Returns:
//   - CameraControllerOption: functional option to set the mapping
func WithKeys(keys Keys) CameraControllerOption {
	return func(oc *orbitControllerImpl) {
		oc.config.Keys = keys
	}
}
