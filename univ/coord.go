package univ

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/astro"
)

// Coord is a universal coordinate: three independent 64.64 fixed point
// components in micro-light-years. It is an immutable value type; all
// arithmetic between two coordinates stays in the fixed point domain and is
// exact, while offset extraction reduces to float64 only at the final step.
type Coord struct {
	X, Y, Z R128
}

// Zero returns the coordinate at the universal origin.
func Zero() Coord {
	return Coord{}
}

// FromKm converts a double precision position in kilometers to a universal
// coordinate.
func FromKm(v mgl64.Vec3) Coord {
	return Coord{
		X: R128FromFloat64(astro.KmToMicroLy(v.X())),
		Y: R128FromFloat64(astro.KmToMicroLy(v.Y())),
		Z: R128FromFloat64(astro.KmToMicroLy(v.Z())),
	}
}

// FromLy converts a double precision position in light years to a universal
// coordinate.
func FromLy(v mgl64.Vec3) Coord {
	return Coord{
		X: R128FromFloat64(v.X() * 1e6),
		Y: R128FromFloat64(v.Y() * 1e6),
		Z: R128FromFloat64(v.Z() * 1e6),
	}
}

// FromUly converts a position already expressed in micro-light-years, the
// raw internal unit.
func FromUly(v mgl64.Vec3) Coord {
	return Coord{
		X: R128FromFloat64(v.X()),
		Y: R128FromFloat64(v.Y()),
		Z: R128FromFloat64(v.Z()),
	}
}

// Add returns the componentwise sum of two coordinates, exactly.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X.Add(o.X), Y: c.Y.Add(o.Y), Z: c.Z.Add(o.Z)}
}

// Sub returns the componentwise difference of two coordinates, exactly.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X.Sub(o.X), Y: c.Y.Sub(o.Y), Z: c.Z.Sub(o.Z)}
}

// OffsetKm returns the coordinate displaced by an offset in kilometers.
func (c Coord) OffsetKm(v mgl64.Vec3) Coord {
	return c.Add(FromKm(v))
}

// OffsetUly returns the coordinate displaced by an offset in
// micro-light-years.
func (c Coord) OffsetUly(v mgl64.Vec3) Coord {
	return c.Add(FromUly(v))
}

// OffsetFromKm returns the offset of this coordinate from another, in
// kilometers. The difference is taken at fixed point precision and reduced
// to float64 last, so it stays accurate to double precision even when the
// absolute coordinates individually would not.
func (c Coord) OffsetFromKm(o Coord) mgl64.Vec3 {
	return mgl64.Vec3{
		astro.MicroLyToKm(c.X.Sub(o.X).Float64()),
		astro.MicroLyToKm(c.Y.Sub(o.Y).Float64()),
		astro.MicroLyToKm(c.Z.Sub(o.Z).Float64()),
	}
}

// OffsetFromLy returns the offset of this coordinate from another in light
// years, computed at fixed point precision.
func (c Coord) OffsetFromLy(o Coord) mgl64.Vec3 {
	return mgl64.Vec3{
		c.X.Sub(o.X).Float64() * 1e-6,
		c.Y.Sub(o.Y).Float64() * 1e-6,
		c.Z.Sub(o.Z).Float64() * 1e-6,
	}
}

// ToLy truncates the coordinate to a double precision position in light
// years.
func (c Coord) ToLy() mgl64.Vec3 {
	return mgl64.Vec3{
		c.X.Float64() * 1e-6,
		c.Y.Float64() * 1e-6,
		c.Z.Float64() * 1e-6,
	}
}

// DistanceFromKm returns the distance to another coordinate in kilometers.
func (c Coord) DistanceFromKm(o Coord) float64 {
	return c.OffsetFromKm(o).Len()
}

// DistanceFromLy returns the distance to another coordinate in light years.
func (c Coord) DistanceFromLy(o Coord) float64 {
	return astro.KmToLy(c.DistanceFromKm(o))
}

// IsZero reports whether the coordinate is exactly the universal origin.
func (c Coord) IsZero() bool {
	return c.X.IsZero() && c.Y.IsZero() && c.Z.IsZero()
}

// IsOutOfBounds reports whether any component is too large for safe
// float64 conversion.
func (c Coord) IsOutOfBounds() bool {
	return c.X.IsOutOfBounds() || c.Y.IsOutOfBounds() || c.Z.IsOutOfBounds()
}

// Rotate applies a unit quaternion rotation to the coordinate. The rotation
// matrix entries are promoted to fixed point and the components combined in
// the fixed point domain; rotating the absolute position through float64
// vectors would destroy precision at large distances.
func (c Coord) Rotate(q mgl64.Quat) Coord {
	m := q.Mat4().Mat3()

	row := func(r int) R128 {
		return c.X.MulFloat64(m.At(r, 0)).
			Add(c.Y.MulFloat64(m.At(r, 1))).
			Add(c.Z.MulFloat64(m.At(r, 2)))
	}

	return Coord{X: row(0), Y: row(1), Z: row(2)}
}
