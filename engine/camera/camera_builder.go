package camera

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CameraBuilderOption is a functional option for configuring a Camera.
type CameraBuilderOption func(*cameraImpl)

// WithPerspective selects a perspective projection.
//
// Parameters:
//   - fov: vertical field of view in radians
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithPerspective(fov float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.kind = ProjectionPerspective
		c.fov = fov
	}
}

// WithOrthographic selects an orthographic projection with the given extents.
//
// Parameters:
//   - left, right, top, bottom: frustum extents in view space
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithOrthographic(left, right, top, bottom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.kind = ProjectionOrthographic
		c.left, c.right, c.top, c.bottom = left, right, top, bottom
	}
}

// WithPosition sets the camera's world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraBuilderOption: a function that sets the position
func WithPosition(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = mgl64.Vec3{x, y, z}
	}
}

// WithLookAt orients the camera toward a point once all options are applied.
//
// Parameters:
//   - x, y, z: world-space point to face
//
// Returns:
//   - CameraBuilderOption: a function that sets the initial look-at point
func WithLookAt(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lookAt = &mgl64.Vec3{x, y, z}
	}
}

// WithUp sets the camera's up vector.
//
// Parameters:
//   - x, y, z: up vector components
//
// Returns:
//   - CameraBuilderOption: a function that sets the up vector
func WithUp(x, y, z float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.up = mgl64.Vec3{x, y, z}
	}
}

// WithAspect sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the aspect ratio
func WithAspect(aspect float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspect = aspect
	}
}

// WithClipPlanes sets the near and far clipping plane distances.
//
// Parameters:
//   - near: near plane distance
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the clip planes
func WithClipPlanes(near, far float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.near = near
		c.far = far
	}
}

// WithZoom sets the initial zoom factor.
//
// Parameters:
//   - zoom: zoom factor (1 = none)
//
// Returns:
//   - CameraBuilderOption: a function that sets the zoom
func WithZoom(zoom float64) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.zoom = zoom
	}
}
