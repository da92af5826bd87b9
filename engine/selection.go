// Package engine implements the reference frame and timeline machinery:
// selections over catalog objects, the ReferenceFrame hierarchy, frame
// vectors, timelines binding bodies to frames and motion models, and the
// frame trees that tie a universe together.
//
// All evaluation is a pure function of a TDB Julian date plus immutable
// construction-time state, except for the caching decorators, which hold
// per-instance mutable state and therefore require a single evaluation
// goroutine per frame graph.
package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/univ"
)

// SelectionType discriminates the object categories a Selection can
// reference.
type SelectionType int

const (
	SelectionNone SelectionType = iota
	SelectionStar
	SelectionBody
	SelectionLocation
	SelectionDeepSky
)

// Selection is a weak reference to one object in the simulation's catalogs.
// It does not own the referenced object; the zero Selection references
// nothing.
type Selection struct {
	typ      SelectionType
	star     *Star
	body     *Body
	location *Location
	deepSky  *DeepSkyObject
}

// StarSelection returns a selection referencing a star.
func StarSelection(s *Star) Selection {
	if s == nil {
		return Selection{}
	}
	return Selection{typ: SelectionStar, star: s}
}

// BodySelection returns a selection referencing a solar system body.
func BodySelection(b *Body) Selection {
	if b == nil {
		return Selection{}
	}
	return Selection{typ: SelectionBody, body: b}
}

// LocationSelection returns a selection referencing a surface location.
func LocationSelection(l *Location) Selection {
	if l == nil {
		return Selection{}
	}
	return Selection{typ: SelectionLocation, location: l}
}

// DeepSkySelection returns a selection referencing a deep sky object.
func DeepSkySelection(d *DeepSkyObject) Selection {
	if d == nil {
		return Selection{}
	}
	return Selection{typ: SelectionDeepSky, deepSky: d}
}

// Type returns the category of the referenced object.
func (s Selection) Type() SelectionType { return s.typ }

// IsEmpty reports whether the selection references nothing.
func (s Selection) IsEmpty() bool { return s.typ == SelectionNone }

// Star returns the referenced star, or nil.
func (s Selection) Star() *Star { return s.star }

// Body returns the referenced body, or nil.
func (s Selection) Body() *Body { return s.body }

// Location returns the referenced location, or nil.
func (s Selection) Location() *Location { return s.location }

// DeepSky returns the referenced deep sky object, or nil.
func (s Selection) DeepSky() *DeepSkyObject { return s.deepSky }

// Name returns the referenced object's name, or an empty string.
func (s Selection) Name() string {
	switch s.typ {
	case SelectionStar:
		return s.star.Name()
	case SelectionBody:
		return s.body.Name()
	case SelectionLocation:
		return s.location.Name()
	case SelectionDeepSky:
		return s.deepSky.Name()
	default:
		return ""
	}
}

// Position returns the referenced object's universal position at time tdb.
func (s Selection) Position(tdb float64) univ.Coord {
	switch s.typ {
	case SelectionStar:
		return s.star.Position(tdb)
	case SelectionBody:
		return s.body.Position(tdb)
	case SelectionLocation:
		return s.location.Position(tdb)
	case SelectionDeepSky:
		return s.deepSky.Position(tdb)
	default:
		return univ.Zero()
	}
}

// Velocity returns the referenced object's velocity at time tdb in
// kilometers per day.
func (s Selection) Velocity(tdb float64) mgl64.Vec3 {
	switch s.typ {
	case SelectionStar:
		return s.star.Velocity(tdb)
	case SelectionBody:
		return s.body.Velocity(tdb)
	case SelectionLocation:
		return s.location.Velocity(tdb)
	default:
		return mgl64.Vec3{}
	}
}

// parentBody resolves the body behind a selection for frame graph walks:
// the body itself, or a location's parent body.
func (s Selection) parentBody() *Body {
	switch s.typ {
	case SelectionBody:
		return s.body
	case SelectionLocation:
		return s.location.ParentBody()
	default:
		return nil
	}
}
