package camera

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	kind ProjectionKind

	position    mgl64.Vec3
	orientation mgl64.Quat
	up          mgl64.Vec3

	fov    float64
	aspect float64
	near   float64
	far    float64
	zoom   float64

	left   float64
	right  float64
	top    float64
	bottom float64

	lookAt *mgl64.Vec3

	viewMatrix           mgl64.Mat4
	projectionMatrix     mgl64.Mat4
	viewProjectionMatrix mgl64.Mat4
}

// Camera is a navigable scene camera with either a perspective or an orthographic projection.
// It satisfies both Navigable and Projector, so an orbit controller attached to it
// resolves a camera binding of the matching kind.
type Camera interface {
	Navigable
	Projector

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float64: the aspect ratio
	Aspect() float64

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float64: near plane distance
	Near() float64

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float64: far plane distance
	Far() float64

	// ViewMatrix returns the current world-to-view matrix (column-major).
	//
	// Returns:
	//   - mgl64.Mat4: the view matrix
	ViewMatrix() mgl64.Mat4

	// ProjectionMatrix returns the projection matrix computed by the last UpdateProjection.
	//
	// Returns:
	//   - mgl64.Mat4: the projection matrix
	ProjectionMatrix() mgl64.Mat4

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - mgl64.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl64.Mat4

	// SetUp sets the camera's up vector. Controllers capture it when they attach.
	//
	// Parameters:
	//   - up: up vector
	SetUp(up mgl64.Vec3)

	// SetFov sets the vertical field of view in radians and recomputes the projection.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float64)

	// SetAspect sets the aspect ratio (width / height) and recomputes the projection.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float64)

	// SetExtents sets the orthographic extents and recomputes the projection.
	//
	// Parameters:
	//   - left, right, top, bottom: extents in view space
	SetExtents(left, right, top, bottom float64)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a perspective camera at (0, 0, 1) looking down -Z unless options say otherwise.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		kind:        ProjectionPerspective,
		position:    mgl64.Vec3{0, 0, 1},
		orientation: mgl64.QuatIdent(),
		up:          common.WorldUp,
		fov:         45.0 * (math.Pi / 180.0),
		aspect:      1.0,
		near:        0.1,
		far:         100.0,
		zoom:        1.0,
		left:        -1,
		right:       1,
		top:         1,
		bottom:      -1,
	}
	for _, option := range options {
		option(c)
	}
	if c.lookAt != nil {
		c.orientation = common.LookAtQuat(c.position, *c.lookAt, c.up)
		c.lookAt = nil
	}
	c.updateView()
	c.updateProjection()
	return c
}

func (c *cameraImpl) Position() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(p mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = p
	c.updateView()
}

func (c *cameraImpl) Orientation() mgl64.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraImpl) Up() mgl64.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *cameraImpl) SetUp(up mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.up = up
}

func (c *cameraImpl) WorldMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ComposeWorldMatrix(c.position, c.orientation)
}

func (c *cameraImpl) SetLookAt(target mgl64.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orientation = common.LookAtQuat(c.position, target, c.up)
	c.updateView()
}

func (c *cameraImpl) ProjectionKind() ProjectionKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kind
}

func (c *cameraImpl) Zoom() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zoom
}

func (c *cameraImpl) SetZoom(zoom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zoom = zoom
}

func (c *cameraImpl) Fov() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(fov float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = fov
	c.updateProjection()
}

func (c *cameraImpl) Extents() (left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left, c.right, c.top, c.bottom
}

func (c *cameraImpl) SetExtents(left, right, top, bottom float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.left, c.right, c.top, c.bottom = left, right, top, bottom
	c.updateProjection()
}

func (c *cameraImpl) Aspect() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) SetAspect(aspect float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
	c.updateProjection()
}

func (c *cameraImpl) Near() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() mgl64.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) UpdateProjection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProjection()
}

// updateView recomputes the view and view-projection matrices from position and orientation.
// Caller must hold the mutex.
func (c *cameraImpl) updateView() {
	c.viewMatrix = common.ComposeWorldMatrix(c.position, c.orientation).Inv()
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}

// updateProjection recomputes the projection for the current kind, applying zoom.
// Perspective zoom narrows the field of view; orthographic zoom shrinks the extents about their center.
// Caller must hold the mutex.
func (c *cameraImpl) updateProjection() {
	zoom := c.zoom
	if zoom <= 0 {
		zoom = 1
	}

	switch c.kind {
	case ProjectionOrthographic:
		dx := (c.right - c.left) / (2 * zoom)
		dy := (c.top - c.bottom) / (2 * zoom)
		cx := (c.right + c.left) / 2
		cy := (c.top + c.bottom) / 2
		c.projectionMatrix = mgl64.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.near, c.far)
	default:
		fov := 2 * math.Atan(math.Tan(c.fov/2)/zoom)
		c.projectionMatrix = mgl64.Perspective(fov, c.aspect, c.near, c.far)
	}
	c.viewProjectionMatrix = c.projectionMatrix.Mul4(c.viewMatrix)
}
