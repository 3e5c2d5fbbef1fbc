package camera

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
)

// ProjectionKind identifies the projection a camera capability reports.
type ProjectionKind int

const (
	ProjectionNone ProjectionKind = iota
	ProjectionPerspective
	ProjectionOrthographic
)

func (k ProjectionKind) String() string {
	switch k {
	case ProjectionNone:
		return "none"
	case ProjectionPerspective:
		return "perspective"
	case ProjectionOrthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Navigable is the scene object an orbit controller moves around its focus point.
type Navigable interface {
	// Position returns the object's world-space position.
	//
	// Returns:
	//   - mgl64.Vec3: world-space position
	Position() mgl64.Vec3

	// SetPosition moves the object.
	//
	// Parameters:
	//   - p: new world-space position
	SetPosition(p mgl64.Vec3)

	// Orientation returns the object's world-space rotation.
	//
	// Returns:
	//   - mgl64.Quat: unit orientation quaternion
	Orientation() mgl64.Quat

	// Up returns the object's up vector, used as the orbit pole.
	//
	// Returns:
	//   - mgl64.Vec3: up vector
	Up() mgl64.Vec3

	// WorldMatrix returns the object's local-to-world transform.
	// Column 0 is the local right axis, column 1 the local up axis.
	//
	// Returns:
	//   - mgl64.Mat4: world matrix (column-major)
	WorldMatrix() mgl64.Mat4

	// SetLookAt rotates the object so it faces the given point.
	//
	// Parameters:
	//   - target: world-space point to face
	SetLookAt(target mgl64.Vec3)
}

// Projector is the optional camera capability of a Navigable.
// Zoom is only meaningful for orthographic projections, Fov only for perspective
// and Extents only for orthographic.
type Projector interface {
	// ProjectionKind reports which projection the camera uses.
	//
	// Returns:
	//   - ProjectionKind: perspective or orthographic
	ProjectionKind() ProjectionKind

	// Zoom returns the current zoom factor.
	//
	// Returns:
	//   - float64: zoom factor (1 = none)
	Zoom() float64

	// SetZoom sets the zoom factor. Takes effect after UpdateProjection.
	//
	// Parameters:
	//   - zoom: new zoom factor
	SetZoom(zoom float64)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float64: field of view in radians
	Fov() float64

	// Extents returns the orthographic frustum extents.
	//
	// Returns:
	//   - left, right, top, bottom: frustum extents in view space
	Extents() (left, right, top, bottom float64)

	// UpdateProjection recomputes the projection matrix after zoom or extents change.
	UpdateProjection()
}

// ProjectorProvider is implemented by navigables that carry their camera as a separate component.
type ProjectorProvider interface {
	// Projector returns the attached camera capability or nil.
	//
	// Returns:
	//   - Projector: the camera capability, or nil if none is attached
	Projector() Projector
}

// InputSurface is the viewport an orbit controller listens to.
// Passing nil to a setter removes the callback.
type InputSurface interface {
	// Width returns the viewport width in the same units as pointer coordinates.
	//
	// Returns:
	//   - int: viewport width
	Width() int

	// Height returns the viewport height in the same units as pointer coordinates.
	//
	// Returns:
	//   - int: viewport height
	Height() int

	SetPointerDownCallback(callback func(input.PointerEvent))
	SetPointerMoveCallback(callback func(input.PointerEvent))
	SetPointerUpCallback(callback func(input.PointerEvent))
	SetPointerCancelCallback(callback func(input.PointerEvent))
	SetWheelCallback(callback func(input.WheelEvent))
}

// KeySurface delivers key presses to a controller. See OrbitController.ListenToKeyEvents.
type KeySurface interface {
	SetKeyDownCallback(callback func(input.KeyEvent))
}
