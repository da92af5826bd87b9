package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/univ"
)

// Location is a named point fixed to a body's surface, given as a
// planetocentric offset in kilometers.
type Location struct {
	name   string
	parent *Body
	offset mgl64.Vec3
}

// NewLocation creates a location attached to a parent body. A nil parent
// leaves the location floating at its offset from the universal origin.
func NewLocation(name string, parent *Body, offset mgl64.Vec3) *Location {
	return &Location{name: name, parent: parent, offset: offset}
}

// Name returns the location's name.
func (l *Location) Name() string { return l.name }

// ParentBody returns the body the location is attached to, or nil.
func (l *Location) ParentBody() *Body { return l.parent }

// PlanetocentricOffset returns the location's offset in the parent's
// body-fixed frame, in kilometers.
func (l *Location) PlanetocentricOffset() mgl64.Vec3 { return l.offset }

// Position returns the location's universal position at tdb, rotating the
// surface offset with the parent body.
func (l *Location) Position(tdb float64) univ.Coord {
	if l.parent == nil {
		return univ.FromKm(l.offset)
	}
	ecliptic := l.parent.EclipticToBodyFixed(tdb).Conjugate().Rotate(l.offset)
	return l.parent.Position(tdb).OffsetKm(ecliptic)
}

// Velocity returns the parent body's velocity at tdb; the surface rotation
// term is negligible at the scales the engine works at.
func (l *Location) Velocity(tdb float64) mgl64.Vec3 {
	if l.parent == nil {
		return mgl64.Vec3{}
	}
	return l.parent.Velocity(tdb)
}
