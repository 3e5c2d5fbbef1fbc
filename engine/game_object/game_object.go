package game_object

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
)

type gameObject struct {
	mu      sync.Mutex
	id      uint64
	enabled atomic.Bool

	position    mgl64.Vec3
	orientation mgl64.Quat
	up          mgl64.Vec3

	attachedCamera camera.Camera
}

// GameObject is a scene node an orbit controller can navigate.
// It satisfies camera.Navigable; when a camera is attached it also satisfies
// camera.ProjectorProvider, so controllers bound to the object gain zoom and pan.
type GameObject interface {
	camera.Navigable

	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object is enabled.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetUp replaces the object's up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl64.Vec3)

	// Camera returns the camera attached to this object, or nil if none is set.
	//
	// Returns:
	//   - camera.Camera: the attached camera or nil
	Camera() camera.Camera

	// SetCamera attaches a camera to this object. The camera's position and facing
	// follow the object's transform from then on. Pass nil to detach.
	//
	// Parameters:
	//   - c: the camera to attach, or nil to detach
	SetCamera(c camera.Camera)

	// Projector exposes the attached camera as a projection capability.
	//
	// Returns:
	//   - camera.Projector: the attached camera, or nil if none is set
	Projector() camera.Projector
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// The object starts enabled at the origin with identity orientation and +Y up.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		orientation: mgl64.QuatIdent(),
		up:          common.WorldUp,
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	obj.syncCamera(nil)
	return obj
}

func (g *gameObject) ID() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) SetID(id uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) Position() mgl64.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.position
}

func (g *gameObject) SetPosition(p mgl64.Vec3) {
	g.mu.Lock()
	g.position = p
	cam := g.attachedCamera
	g.mu.Unlock()

	if cam != nil {
		cam.SetPosition(p)
	}
}

func (g *gameObject) Orientation() mgl64.Quat {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.orientation
}

func (g *gameObject) Up() mgl64.Vec3 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.up
}

func (g *gameObject) SetUp(up mgl64.Vec3) {
	g.mu.Lock()
	g.up = up
	cam := g.attachedCamera
	g.mu.Unlock()

	if cam != nil {
		cam.SetUp(up)
	}
}

func (g *gameObject) WorldMatrix() mgl64.Mat4 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return common.ComposeWorldMatrix(g.position, g.orientation)
}

func (g *gameObject) SetLookAt(target mgl64.Vec3) {
	g.mu.Lock()
	g.orientation = common.LookAtQuat(g.position, target, g.up)
	cam := g.attachedCamera
	g.mu.Unlock()

	if cam != nil {
		cam.SetLookAt(target)
	}
}

func (g *gameObject) Camera() camera.Camera {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.attachedCamera
}

func (g *gameObject) SetCamera(c camera.Camera) {
	g.mu.Lock()
	g.attachedCamera = c
	g.mu.Unlock()
	g.syncCamera(c)
}

func (g *gameObject) Projector() camera.Projector {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.attachedCamera == nil {
		return nil
	}
	return g.attachedCamera
}

// syncCamera copies the object's transform onto c, or onto the attached camera when c is nil.
func (g *gameObject) syncCamera(c camera.Camera) {
	g.mu.Lock()
	if c == nil {
		c = g.attachedCamera
	}
	position, up := g.position, g.up
	forward := g.orientation.Rotate(mgl64.Vec3{0, 0, -1})
	g.mu.Unlock()

	if c == nil {
		return
	}
	c.SetUp(up)
	c.SetPosition(position)
	c.SetLookAt(position.Add(forward))
}
