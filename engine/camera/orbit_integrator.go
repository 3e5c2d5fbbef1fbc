package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Carmen-Shannon/oxy-orbit/common"
)

// changeEpsilon is the squared displacement, and the small-angle rotation metric, below which
// an Update is not reported as a change.
const changeEpsilon = 1e-6

const defaultTickSeconds = 1.0 / 60.0

// update integrates all pending motion into a new pose. Caller must hold the mutex.
func (oc *orbitControllerImpl) update(deltaTime float32) {
	if oc.object == nil {
		return
	}
	dt := float64(deltaTime)
	if dt <= 0 {
		dt = defaultTickSeconds
	}

	// offset in the frame where the orbit pole is +Y
	offset := oc.upFrame.Rotate(oc.object.Position().Sub(oc.target))
	spherical := common.SphericalFromVec3(offset)

	flightRadius, flying := oc.advanceFlight(deltaTime)

	if oc.config.AutoRotate && oc.state == StateNone {
		oc.rotateLeft(oc.autoRotationAngle(dt))
	}

	if oc.config.EnableDamping {
		spherical.Theta += oc.sphericalDelta.Theta * oc.config.DampingFactor
		spherical.Phi += oc.sphericalDelta.Phi * oc.config.DampingFactor
	} else {
		spherical.Theta += oc.sphericalDelta.Theta
		spherical.Phi += oc.sphericalDelta.Phi
	}

	spherical.Theta = common.ClampAzimuth(spherical.Theta, oc.config.MinAzimuthAngle, oc.config.MaxAzimuthAngle)
	spherical.Phi = common.Clamp(spherical.Phi, oc.config.MinPolarAngle, oc.config.MaxPolarAngle)
	spherical = spherical.MakeSafe()

	spherical.Radius *= oc.scale
	if flying {
		spherical.Radius = flightRadius
	}
	spherical.Radius = common.Clamp(spherical.Radius, oc.config.MinDistance, oc.config.MaxDistance)

	if oc.config.EnableDamping {
		oc.target = oc.target.Add(oc.panOffset.Mul(oc.config.DampingFactor))
	} else {
		oc.target = oc.target.Add(oc.panOffset)
	}

	offset = oc.upFrameInverse.Rotate(spherical.Vec3())
	oc.object.SetPosition(oc.target.Add(offset))
	oc.object.SetLookAt(oc.target)

	if oc.config.EnableDamping {
		decay := 1 - oc.config.DampingFactor
		oc.sphericalDelta.Theta *= decay
		oc.sphericalDelta.Phi *= decay
		oc.panOffset = oc.panOffset.Mul(decay)
	} else {
		oc.sphericalDelta = common.Spherical{}
		oc.panOffset = mgl64.Vec3{}
	}
	oc.scale = 1
	oc.spherical = spherical

	// small-angle approximation: cos(x/2) = 1 - x^2/8
	position := oc.object.Position()
	orientation := oc.object.Orientation()
	if oc.zoomChanged ||
		oc.lastPosition.Sub(position).LenSqr() > changeEpsilon ||
		8*(1-oc.lastOrientation.Dot(orientation)) > changeEpsilon {
		oc.events.emit(EventChange)
		oc.lastPosition = position
		oc.lastOrientation = orientation
		oc.zoomChanged = false
	}
}

// autoRotationAngle is the azimuth step for dt seconds. Speed 2 is one orbit per 30 seconds.
func (oc *orbitControllerImpl) autoRotationAngle(dt float64) float64 {
	return common.TwoPi / 60 * oc.config.AutoRotateSpeed * dt
}

func (oc *orbitControllerImpl) zoomScale() float64 {
	return math.Pow(0.95, oc.config.ZoomSpeed)
}

func (oc *orbitControllerImpl) rotateLeft(angle float64) {
	oc.sphericalDelta.Theta -= angle
}

func (oc *orbitControllerImpl) rotateUp(angle float64) {
	oc.sphericalDelta.Phi -= angle
}

// panLeft moves the target along the object's right axis. Positive distances move it left.
func (oc *orbitControllerImpl) panLeft(distance float64, world mgl64.Mat4) {
	right := world.Col(0).Vec3()
	oc.panOffset = oc.panOffset.Add(right.Mul(-distance))
}

// panUp moves the target along the object's up axis, or along the ground plane when
// screen-space panning is off.
func (oc *orbitControllerImpl) panUp(distance float64, world mgl64.Mat4) {
	var v mgl64.Vec3
	if oc.config.ScreenSpacePanning {
		v = world.Col(1).Vec3()
	} else {
		v = oc.object.Up().Cross(world.Col(0).Vec3())
	}
	oc.panOffset = oc.panOffset.Add(v.Mul(distance))
}

// pan converts a pixel displacement (right and down positive) into a target offset.
func (oc *orbitControllerImpl) pan(deltaX, deltaY float64) {
	if oc.object == nil {
		return
	}
	width, height := oc.viewportSize()
	world := oc.object.WorldMatrix()

	switch oc.binding.liveKind() {
	case ProjectionPerspective:
		fov, _ := oc.binding.Fov()
		// half the fov spans center to top of the viewport
		distance := oc.object.Position().Sub(oc.target).Len() * math.Tan(fov/2)
		oc.panLeft(2*deltaX*distance/height, world)
		oc.panUp(2*deltaY*distance/height, world)
	case ProjectionOrthographic:
		left, right, top, bottom, _ := oc.binding.Extents()
		zoom := oc.binding.Zoom()
		if zoom <= 0 {
			return
		}
		oc.panLeft(deltaX*(right-left)/zoom/width, world)
		oc.panUp(deltaY*(top-bottom)/zoom/height, world)
	case ProjectionNone:
	default:
		oc.logger.Println("[OrbitController] WARNING: camera projection changed since attach; pan disabled")
		oc.disable(capPan)
	}
}

func (oc *orbitControllerImpl) dollyOut(dollyScale float64) {
	switch oc.binding.liveKind() {
	case ProjectionPerspective:
		oc.scale /= dollyScale
	case ProjectionOrthographic:
		oc.setOrthographicZoom(oc.binding.Zoom() * dollyScale)
	case ProjectionNone:
	default:
		oc.disableZoom()
	}
}

func (oc *orbitControllerImpl) dollyIn(dollyScale float64) {
	switch oc.binding.liveKind() {
	case ProjectionPerspective:
		oc.scale *= dollyScale
	case ProjectionOrthographic:
		oc.setOrthographicZoom(oc.binding.Zoom() / dollyScale)
	case ProjectionNone:
	default:
		oc.disableZoom()
	}
}

func (oc *orbitControllerImpl) setOrthographicZoom(zoom float64) {
	oc.binding.SetZoom(common.Clamp(zoom, oc.config.MinZoom, oc.config.MaxZoom))
	oc.binding.UpdateProjection()
	oc.zoomChanged = true
}

func (oc *orbitControllerImpl) disableZoom() {
	oc.logger.Println("[OrbitController] WARNING: camera projection changed since attach; zoom disabled")
	oc.disable(capZoom)
}
