package game_object

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

// GameObjectBuilderOption is a functional option for configuring a GameObject during construction.
type GameObjectBuilderOption func(*gameObject)

// WithID sets the ID of the GameObject.
//
// Parameters:
//   - id: unique identifier for the GameObject
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the ID
func WithID(id uint64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.id = id
	}
}

// WithEnabled sets whether the GameObject starts enabled.
//
// Parameters:
//   - enabled: initial enabled state
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the Enabled state
func WithEnabled(enabled bool) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.enabled.Store(enabled)
	}
}

// WithPosition sets the initial position of the GameObject.
//
// Parameters:
//   - x: the x position
//   - y: the y position
//   - z: the z position
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial position
func WithPosition(x, y, z float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.position = mgl64.Vec3{x, y, z}
	}
}

// WithUp sets the object's up vector. Options run in order, so pass WithUp before
// WithLookAt when both are used.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the up vector
func WithUp(x, y, z float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.up = mgl64.Vec3{x, y, z}
	}
}

// WithLookAt orients the GameObject toward a point.
//
// Parameters:
//   - x, y, z: world-space point to face
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the initial orientation
func WithLookAt(x, y, z float64) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.orientation = common.LookAtQuat(obj.position, mgl64.Vec3{x, y, z}, obj.up)
	}
}

// WithCamera attaches a camera to the GameObject. The camera is moved onto the
// object's transform when construction completes.
//
// Parameters:
//   - c: the camera to attach
//
// Returns:
//   - GameObjectBuilderOption: functional option to set the attached camera
func WithCamera(c camera.Camera) GameObjectBuilderOption {
	return func(obj *gameObject) {
		obj.attachedCamera = c
	}
}
