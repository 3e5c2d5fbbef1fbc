package camera

import (
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// savedState is the pose restored by Reset.
type savedState struct {
	target   mgl64.Vec3
	position mgl64.Vec3
	zoom     float64
}

// capability is a bit set of controller actions switched off because the bound object cannot support them.
type capability uint8

const (
	capRotate capability = 1 << iota
	capZoom
	capPan
)

// mask clears the enable flags of every capability in c.
func (c capability) mask(cfg ControllerConfig) ControllerConfig {
	if c&capRotate != 0 {
		cfg.EnableRotate = false
	}
	if c&capZoom != 0 {
		cfg.EnableZoom = false
	}
	if c&capPan != 0 {
		cfg.EnablePan = false
	}
	return cfg
}

// orbitControllerImpl is the single implementation of OrbitController.
// Input handlers only accumulate sphericalDelta, panOffset and scale; Update consumes them.
type orbitControllerImpl struct {
	mu     *sync.Mutex
	logger *log.Logger
	config ControllerConfig

	object     Navigable
	surface    InputSurface
	keySurface KeySurface
	binding    CameraBinding
	disabled   capability

	// upFrame maps the object's up vector onto +Y; upFrameInverse maps back.
	upFrame        mgl64.Quat
	upFrameInverse mgl64.Quat

	state ControlState

	// Orbit state
	target         mgl64.Vec3
	spherical      common.Spherical
	sphericalDelta common.Spherical
	panOffset      mgl64.Vec3
	scale          float64
	zoomChanged    bool

	// Change detection snapshots
	lastPosition    mgl64.Vec3
	lastOrientation mgl64.Quat

	// Gesture tracking
	pointers    *pointerRegistry
	capturing   bool
	rotateStart mgl64.Vec2
	panStart    mgl64.Vec2
	dollyStart  mgl64.Vec2
	dollySpread float64

	saved  savedState
	flight *flight
	events eventQueue
}

var _ OrbitController = &orbitControllerImpl{}

// NewOrbitController attaches a controller to a navigable and the surface it listens to.
// If the navigable has no camera capability, rotate, zoom and pan are disabled and a warning
// is logged; the controller stays usable as a no-op rig.
//
// Parameters:
//   - object: the navigable to move (usually a Camera)
//   - surface: the viewport delivering pointer and wheel input (may be nil when events are fed directly)
//   - options: functional options to configure the controller
//
// Returns:
//   - OrbitController: the attached controller
func NewOrbitController(object Navigable, surface InputSurface, options ...CameraControllerOption) OrbitController {
	oc := &orbitControllerImpl{
		mu:              &sync.Mutex{},
		logger:          log.Default(),
		config:          DefaultControllerConfig(),
		scale:           1,
		upFrame:         mgl64.QuatIdent(),
		upFrameInverse:  mgl64.QuatIdent(),
		lastOrientation: mgl64.QuatIdent(),
		pointers:        newPointerRegistry(),
	}
	for _, option := range options {
		option(oc)
	}
	oc.attach(object, surface)
	return oc
}

// NewMapController is NewOrbitController with the MapControllerConfig preset applied first.
//
// Parameters:
//   - object: the navigable to move
//   - surface: the viewport delivering pointer and wheel input
//   - options: functional options applied after the preset
//
// Returns:
//   - OrbitController: the attached controller
func NewMapController(object Navigable, surface InputSurface, options ...CameraControllerOption) OrbitController {
	return NewOrbitController(object, surface, append([]CameraControllerOption{WithConfig(MapControllerConfig())}, options...)...)
}

// attach resolves the camera binding, captures the up frame and registers surface callbacks.
func (oc *orbitControllerImpl) attach(object Navigable, surface InputSurface) {
	oc.object = object
	oc.surface = surface
	oc.binding = ResolveCameraBinding(object)

	if !oc.binding.Valid() {
		oc.logger.Println("[OrbitController] WARNING: target has no camera capability; rotate, zoom and pan disabled")
		oc.disable(capRotate | capZoom | capPan)
	}

	if object != nil {
		up := object.Up()
		if up.Len() > 0 {
			oc.upFrame = mgl64.QuatBetweenVectors(up.Normalize(), common.WorldUp)
			oc.upFrameInverse = oc.upFrame.Inverse()
		}
	}
	oc.saveState()

	if surface != nil {
		surface.SetPointerDownCallback(oc.OnPointerDown)
		surface.SetPointerCancelCallback(oc.OnPointerCancel)
		surface.SetWheelCallback(oc.OnWheel)
	}
}

// locked runs fn under the mutex, then delivers any events fn raised once the mutex is released.
func (oc *orbitControllerImpl) locked(fn func()) {
	oc.mu.Lock()
	fn()
	events, listeners := oc.events.drain()
	oc.mu.Unlock()
	dispatch(events, listeners)
}

func (oc *orbitControllerImpl) Update(deltaTime float32) {
	oc.locked(func() {
		oc.update(deltaTime)
	})
}

func (oc *orbitControllerImpl) AddListener(fn func(ControlEvent)) func() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	id := oc.events.add(fn)
	return func() {
		oc.mu.Lock()
		defer oc.mu.Unlock()
		oc.events.remove(id)
	}
}

func (oc *orbitControllerImpl) ListenToKeyEvents(surface KeySurface) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if oc.keySurface != nil {
		oc.keySurface.SetKeyDownCallback(nil)
	}
	oc.keySurface = surface
	if surface != nil {
		surface.SetKeyDownCallback(oc.OnKeyDown)
	}
}

func (oc *orbitControllerImpl) Dispose() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if oc.surface != nil {
		oc.surface.SetPointerDownCallback(nil)
		oc.surface.SetPointerCancelCallback(nil)
		oc.surface.SetWheelCallback(nil)
		oc.surface.SetPointerMoveCallback(nil)
		oc.surface.SetPointerUpCallback(nil)
	}
	if oc.keySurface != nil {
		oc.keySurface.SetKeyDownCallback(nil)
		oc.keySurface = nil
	}
	oc.pointers.clear()
	oc.capturing = false
	oc.state = StateNone
	oc.flight = nil
}

func (oc *orbitControllerImpl) SaveState() {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.saveState()
}

// saveState records target, position and zoom. Caller must hold the mutex.
func (oc *orbitControllerImpl) saveState() {
	oc.saved.target = oc.target
	oc.saved.zoom = oc.binding.Zoom()
	if oc.object != nil {
		oc.saved.position = oc.object.Position()
	}
}

func (oc *orbitControllerImpl) Reset() {
	oc.locked(func() {
		oc.target = oc.saved.target
		if oc.object != nil {
			oc.object.SetPosition(oc.saved.position)
		}
		oc.binding.restoreZoom(oc.saved.zoom)

		oc.sphericalDelta = common.Spherical{}
		oc.panOffset = mgl64.Vec3{}
		oc.scale = 1
		oc.flight = nil

		oc.events.emit(EventChange)
		oc.state = StateNone
	})
}

func (oc *orbitControllerImpl) Target() mgl64.Vec3 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.target
}

func (oc *orbitControllerImpl) SetTarget(target mgl64.Vec3) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.target = target
}

func (oc *orbitControllerImpl) State() ControlState {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.state
}

func (oc *orbitControllerImpl) PolarAngle() float64 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.spherical.Phi
}

func (oc *orbitControllerImpl) AzimuthalAngle() float64 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.spherical.Theta
}

func (oc *orbitControllerImpl) Distance() float64 {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	if oc.object == nil {
		return 0
	}
	return oc.object.Position().Sub(oc.target).Len()
}

func (oc *orbitControllerImpl) Binding() CameraBinding {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.binding
}

func (oc *orbitControllerImpl) ActivePointers() int {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.pointers.count()
}

func (oc *orbitControllerImpl) Config() ControllerConfig {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.config
}

func (oc *orbitControllerImpl) SetConfig(cfg ControllerConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	oc.mu.Lock()
	defer oc.mu.Unlock()
	cfg.Enabled = oc.config.Enabled
	oc.config = oc.disabled.mask(cfg)
	return nil
}

// disable switches capabilities off for the controller's lifetime; later configs cannot re-enable them.
// Caller must hold the mutex or be constructing the controller.
func (oc *orbitControllerImpl) disable(c capability) {
	oc.disabled |= c
	oc.config = oc.disabled.mask(oc.config)
}

func (oc *orbitControllerImpl) Enabled() bool {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	return oc.config.Enabled
}

func (oc *orbitControllerImpl) SetEnabled(enabled bool) {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	oc.config.Enabled = enabled
}

// viewportSize returns the surface size, never zero so pixel-to-angle maps stay finite.
// Caller must hold the mutex.
func (oc *orbitControllerImpl) viewportSize() (width, height float64) {
	if oc.surface == nil {
		return 1, 1
	}
	return float64(common.Coalesce(oc.surface.Width(), 1)), float64(common.Coalesce(oc.surface.Height(), 1))
}
