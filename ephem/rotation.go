// Package ephem provides the motion models bound to bodies by timeline
// phases: rotation models mapping time to spin orientation, and orbits
// mapping time to position.
//
// Time arguments are TDB Julian dates; angular velocities are in radians
// per day and positions in kilometers.
package ephem

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Differentiation step for aperiodic models, in days (one minute).
const angularVelocityDiffDelta = 1.0 / 1440.0

// RotationModel describes the orientation of a body over time.
//
// Orientation composes the spin applied on top of the equator orientation;
// AngularVelocity is the instantaneous rotation vector of the combined
// orientation.
type RotationModel interface {
	// Spin returns the rotation about the body's axis at time tdb.
	Spin(tdb float64) mgl64.Quat

	// EquatorOrientation returns the orientation of the body's equatorial
	// plane at time tdb.
	EquatorOrientation(tdb float64) mgl64.Quat

	// Orientation returns the full ecliptic-to-body orientation,
	// Spin(t) * EquatorOrientation(t).
	Orientation(tdb float64) mgl64.Quat

	// AngularVelocity returns the rotation vector at time tdb in
	// radians per day.
	AngularVelocity(tdb float64) mgl64.Vec3

	// IsPeriodic reports whether the model repeats with a fixed period.
	IsPeriodic() bool

	// Period returns the rotation period in days; zero for aperiodic
	// models.
	Period() float64
}

// diffTimeDelta picks the step for numeric differentiation: a small
// fraction of the period for periodic models, otherwise a fixed constant.
func diffTimeDelta(rm RotationModel) float64 {
	if rm.IsPeriodic() {
		return rm.Period() / 10000.0
	}
	return angularVelocityDiffDelta
}

// angularVelocityFromDiff recovers the rotation vector from two orientation
// samples dt apart. A relative rotation with scalar part very close to one
// is numerically negligible and yields zero.
func angularVelocityFromDiff(q0, q1 mgl64.Quat, dt float64) mgl64.Vec3 {
	dq := q1.Conjugate().Mul(q0)

	if math.Abs(dq.W) > 0.99999999 {
		return mgl64.Vec3{}
	}
	return dq.V.Normalize().Mul(2.0 * math.Acos(dq.W) / dt)
}

// orientationOf composes spin and equator orientation, equator first.
func orientationOf(rm RotationModel, tdb float64) mgl64.Quat {
	return rm.Spin(tdb).Mul(rm.EquatorOrientation(tdb))
}

// angularVelocityOf differentiates a model's orientation.
func angularVelocityOf(rm RotationModel, tdb float64) mgl64.Vec3 {
	dt := diffTimeDelta(rm)
	return angularVelocityFromDiff(rm.Orientation(tdb), rm.Orientation(tdb+dt), dt)
}

// ConstantOrientation is a rotation model with a fixed orientation and zero
// angular velocity.
type ConstantOrientation struct {
	orientation mgl64.Quat
}

// NewConstantOrientation creates a rotation model that always returns q.
func NewConstantOrientation(q mgl64.Quat) *ConstantOrientation {
	return &ConstantOrientation{orientation: q}
}

// Identity returns the identity rotation model.
func Identity() *ConstantOrientation {
	return identityModel
}

var identityModel = NewConstantOrientation(mgl64.QuatIdent())

func (c *ConstantOrientation) Spin(float64) mgl64.Quat { return c.orientation }

func (c *ConstantOrientation) EquatorOrientation(float64) mgl64.Quat {
	return mgl64.QuatIdent()
}

func (c *ConstantOrientation) Orientation(float64) mgl64.Quat { return c.orientation }

func (c *ConstantOrientation) AngularVelocity(float64) mgl64.Vec3 { return mgl64.Vec3{} }

func (c *ConstantOrientation) IsPeriodic() bool { return false }

func (c *ConstantOrientation) Period() float64 { return 0 }

// UniformRotation rotates at a constant rate about an axis with fixed
// inclination and ascending node.
type UniformRotation struct {
	// PeriodDays is the sidereal rotation period in days.
	PeriodDays float64
	// Offset is the rotation at the epoch, in radians.
	Offset float64
	// Epoch is the TDB Julian date at which the rotation is Offset.
	Epoch float64
	// Inclination is the tilt of the rotation axis, in radians.
	Inclination float64
	// AscendingNode is the longitude of the equator's ascending node, in
	// radians.
	AscendingNode float64
}

func (u *UniformRotation) Spin(tdb float64) mgl64.Quat {
	rotations := (tdb - u.Epoch) / u.PeriodDays
	remainder := rotations - math.Floor(rotations)

	// Add half a rotation for the convention in planet texture maps that
	// places zero longitude in the middle of the map.
	remainder += 0.5

	return yRotation(-remainder*2*math.Pi - u.Offset)
}

func (u *UniformRotation) EquatorOrientation(float64) mgl64.Quat {
	return xRotation(-u.Inclination).Mul(yRotation(-u.AscendingNode))
}

func (u *UniformRotation) Orientation(tdb float64) mgl64.Quat {
	return orientationOf(u, tdb)
}

// AngularVelocity returns the exact rotation vector: the spin axis in
// ecliptic coordinates scaled by the rotation rate.
func (u *UniformRotation) AngularVelocity(tdb float64) mgl64.Vec3 {
	axis := u.EquatorOrientation(tdb).Conjugate().Rotate(mgl64.Vec3{0, 1, 0})
	return axis.Mul(2 * math.Pi / u.PeriodDays)
}

func (u *UniformRotation) IsPeriodic() bool { return true }

func (u *UniformRotation) Period() float64 { return u.PeriodDays }

// PrecessingRotation is a uniform rotation whose ascending node regresses
// linearly with a fixed precession period. It is periodic by its spin
// period; the precession is treated as slow drift for differentiation
// purposes.
type PrecessingRotation struct {
	PeriodDays    float64
	Offset        float64
	Epoch         float64
	Inclination   float64
	AscendingNode float64
	// PrecessionPeriod is the nodal precession period in days; zero
	// disables precession.
	PrecessionPeriod float64
}

func (p *PrecessingRotation) Spin(tdb float64) mgl64.Quat {
	u := UniformRotation{PeriodDays: p.PeriodDays, Offset: p.Offset, Epoch: p.Epoch}
	return u.Spin(tdb)
}

func (p *PrecessingRotation) EquatorOrientation(tdb float64) mgl64.Quat {
	nodeOfDate := p.AscendingNode
	if p.PrecessionPeriod != 0 {
		nodeOfDate -= 2 * math.Pi / p.PrecessionPeriod * (tdb - p.Epoch)
	}
	return xRotation(-p.Inclination).Mul(yRotation(-nodeOfDate))
}

func (p *PrecessingRotation) Orientation(tdb float64) mgl64.Quat {
	return orientationOf(p, tdb)
}

func (p *PrecessingRotation) AngularVelocity(tdb float64) mgl64.Vec3 {
	return angularVelocityOf(p, tdb)
}

func (p *PrecessingRotation) IsPeriodic() bool { return true }

func (p *PrecessingRotation) Period() float64 { return p.PeriodDays }

// xRotation returns the quaternion for a rotation about the X axis.
func xRotation(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0})
}

// yRotation returns the quaternion for a rotation about the Y axis.
func yRotation(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0})
}
