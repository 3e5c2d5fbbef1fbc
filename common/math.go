package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// PoleEpsilon is the minimum angular distance kept between a polar angle and the poles.
const PoleEpsilon = 1e-6

// WorldUp is the +Y axis the orbit frame is aligned to.
var WorldUp = mgl64.Vec3{0, 1, 0}

// Spherical holds spherical coordinates around the +Y pole.
// Phi is the polar angle measured from +Y, Theta is the azimuth around +Y measured from +Z.
type Spherical struct {
	Radius float64
	Phi    float64
	Theta  float64
}

// SphericalFromVec3 converts a cartesian offset into spherical coordinates.
// A zero vector yields a zero radius with both angles at 0.
//
// Parameters:
//   - v: cartesian offset from the orbit center
//
// Returns:
//   - Spherical: the equivalent spherical coordinates
func SphericalFromVec3(v mgl64.Vec3) Spherical {
	radius := v.Len()
	if radius == 0 {
		return Spherical{}
	}
	return Spherical{
		Radius: radius,
		Theta:  math.Atan2(v.X(), v.Z()),
		Phi:    math.Acos(Clamp(v.Y()/radius, -1, 1)),
	}
}

// Vec3 converts the spherical coordinates back to a cartesian offset.
//
// Returns:
//   - mgl64.Vec3: the cartesian offset from the orbit center
func (s Spherical) Vec3() mgl64.Vec3 {
	sinPhiRadius := math.Sin(s.Phi) * s.Radius
	return mgl64.Vec3{
		sinPhiRadius * math.Sin(s.Theta),
		math.Cos(s.Phi) * s.Radius,
		sinPhiRadius * math.Cos(s.Theta),
	}
}

// MakeSafe pulls Phi away from the exact poles so the derived up vector never degenerates.
//
// Returns:
//   - Spherical: a copy with Phi restricted to [PoleEpsilon, Pi-PoleEpsilon]
func (s Spherical) MakeSafe() Spherical {
	s.Phi = Clamp(s.Phi, PoleEpsilon, math.Pi-PoleEpsilon)
	return s
}

// Clamp restricts v to [lo, hi]. Bounds may be infinite.
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - float64: the clamped value
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// WrapAngle moves an angle outside [-Pi, Pi] back into range by a single full turn.
// Angles are expected within [-2Pi, 2Pi].
func WrapAngle(a float64) float64 {
	if a < -math.Pi {
		return a + TwoPi
	}
	if a > math.Pi {
		return a - TwoPi
	}
	return a
}

// ClampAzimuth restricts theta to the azimuth interval [min, max].
// Nothing happens unless both bounds are finite. Bounds are wrapped into [-Pi, Pi];
// an inverted interval (one that crosses +-Pi) is handled by snapping to whichever
// bound lies on theta's side of the interval midpoint.
//
// Parameters:
//   - theta: the azimuth to clamp in radians
//   - min: lower azimuth bound in radians
//   - max: upper azimuth bound in radians
//
// Returns:
//   - float64: the clamped azimuth
func ClampAzimuth(theta, min, max float64) float64 {
	if !isFinite(min) || !isFinite(max) {
		return theta
	}
	min = WrapAngle(min)
	max = WrapAngle(max)

	if min <= max {
		return Clamp(theta, min, max)
	}
	if theta > (min+max)/2 {
		return math.Max(min, theta)
	}
	return math.Min(max, theta)
}

// LookAtQuat returns the orientation of an object at eye whose -Z axis faces center.
// When the view direction is parallel to up, the direction is nudged so a right axis exists.
//
// Parameters:
//   - eye: world-space position of the object
//   - center: world-space point to face
//   - up: world-space up hint
//
// Returns:
//   - mgl64.Quat: the unit orientation quaternion
func LookAtQuat(eye, center, up mgl64.Vec3) mgl64.Quat {
	z := eye.Sub(center)
	if z.Len() == 0 {
		z = mgl64.Vec3{0, 0, 1}
	}
	z = z.Normalize()

	x := up.Cross(z)
	if x.Len() < 1e-12 {
		if math.Abs(up.Z()) == 1 {
			z[0] += 1e-4
		} else {
			z[2] += 1e-4
		}
		z = z.Normalize()
		x = up.Cross(z)
	}
	x = x.Normalize()
	y := z.Cross(x)

	// column-major rotation with basis vectors as columns
	m := mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
	return mgl64.Mat4ToQuat(m).Normalize()
}

// ComposeWorldMatrix builds a world matrix from a translation and an orientation.
//
// Parameters:
//   - position: world-space translation
//   - orientation: unit orientation quaternion
//
// Returns:
//   - mgl64.Mat4: translation * rotation
func ComposeWorldMatrix(position mgl64.Vec3, orientation mgl64.Quat) mgl64.Mat4 {
	return mgl64.Translate3D(position.X(), position.Y(), position.Z()).Mul4(orientation.Mat4())
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
