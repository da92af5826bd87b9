package ephem

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Orbit maps time to a position in kilometers relative to the orbit frame's
// center. Velocities are in kilometers per day.
type Orbit interface {
	PositionAt(tdb float64) mgl64.Vec3
	VelocityAt(tdb float64) mgl64.Vec3
	IsPeriodic() bool
	Period() float64

	// BoundingRadius returns a radius in kilometers that the orbit never
	// exceeds, used for culling and frame tree bounds.
	BoundingRadius() float64
}

// Step used to differentiate position for orbits without an analytic
// velocity, in days.
const orbitVelocityDiffDelta = 1.0 / 1440.0

// FixedPosition is a degenerate orbit pinning an object to one point in its
// frame.
type FixedPosition struct {
	Position mgl64.Vec3
}

func (f *FixedPosition) PositionAt(float64) mgl64.Vec3 { return f.Position }

func (f *FixedPosition) VelocityAt(float64) mgl64.Vec3 { return mgl64.Vec3{} }

func (f *FixedPosition) IsPeriodic() bool { return false }

func (f *FixedPosition) Period() float64 { return 0 }

func (f *FixedPosition) BoundingRadius() float64 { return f.Position.Len() }

// EllipticalOrbit is a closed two-body orbit described by classical
// elements. Angles are in radians, the semi-major axis in kilometers and
// periods in days.
type EllipticalOrbit struct {
	SemiMajorAxis      float64
	Eccentricity       float64
	Inclination        float64
	AscendingNode      float64
	ArgOfPeriapsis     float64
	MeanAnomalyAtEpoch float64
	PeriodDays         float64
	Epoch              float64
}

func (e *EllipticalOrbit) IsPeriodic() bool { return true }

func (e *EllipticalOrbit) Period() float64 { return e.PeriodDays }

func (e *EllipticalOrbit) BoundingRadius() float64 {
	return e.SemiMajorAxis * (1 + e.Eccentricity)
}

// PositionAt solves Kepler's equation for the time and rotates the orbital
// plane position through the argument of periapsis, inclination and node.
func (e *EllipticalOrbit) PositionAt(tdb float64) mgl64.Vec3 {
	M := e.meanAnomaly(tdb)
	E := solveKepler(M, e.Eccentricity)

	a := e.SemiMajorAxis
	b := a * math.Sqrt(1-e.Eccentricity*e.Eccentricity)

	// Position in the orbital plane, periapsis on +X.
	x := a * (math.Cos(E) - e.Eccentricity)
	z := -b * math.Sin(E)

	q := e.planeOrientation()
	return q.Rotate(mgl64.Vec3{x, 0, z})
}

// VelocityAt differentiates the position; the step is scaled by the period
// so fast orbits stay accurate.
func (e *EllipticalOrbit) VelocityAt(tdb float64) mgl64.Vec3 {
	dt := e.PeriodDays / 10000.0
	p0 := e.PositionAt(tdb)
	p1 := e.PositionAt(tdb + dt)
	return p1.Sub(p0).Mul(1 / dt)
}

func (e *EllipticalOrbit) meanAnomaly(tdb float64) float64 {
	return e.MeanAnomalyAtEpoch + 2*math.Pi*(tdb-e.Epoch)/e.PeriodDays
}

// planeOrientation maps orbital plane coordinates into the frame of the
// orbit: node, then inclination, then argument of periapsis, all about the
// ecliptic conventions used by the frame package (Y is the pole axis).
func (e *EllipticalOrbit) planeOrientation() mgl64.Quat {
	return yRotation(e.AscendingNode).
		Mul(xRotation(e.Inclination)).
		Mul(yRotation(e.ArgOfPeriapsis))
}

// solveKepler inverts Kepler's equation M = E - e*sin(E) with a Danby
// starter and Newton refinement.
func solveKepler(M, ecc float64) float64 {
	if ecc == 0 {
		return M
	}

	E := M + ecc*math.Sin(M)*(1.0+ecc*math.Cos(M))
	for iter := 0; iter < 20; iter++ {
		err := E - ecc*math.Sin(E) - M
		if math.Abs(err) < 1e-14 {
			break
		}
		E -= err / (1.0 - ecc*math.Cos(E))
	}
	return E
}
