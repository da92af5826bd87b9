package engine

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/ephem"
	"github.com/litescript/ls-frames/univ"
)

// Body is a solar system object whose motion and orientation are governed
// by its timeline: for any time, the active phase supplies an orbit frame +
// orbit and a body frame + rotation model.
type Body struct {
	name      string
	radius    float64
	timeline  *Timeline
	frameTree *FrameTree
}

// NewBody creates a body with no timeline. The body is inert until a
// timeline is attached.
func NewBody(name string, radius float64) *Body {
	return &Body{name: name, radius: radius}
}

// Name returns the body's name.
func (b *Body) Name() string { return b.name }

// Radius returns the body's radius in kilometers.
func (b *Body) Radius() float64 { return b.radius }

// Timeline returns the body's timeline, nil before SetTimeline.
func (b *Body) Timeline() *Timeline { return b.timeline }

// SetTimeline attaches a timeline, detaching any previous one from the
// frame trees its phases were registered with. The timeline is exclusively
// owned by the body afterwards.
func (b *Body) SetTimeline(tl *Timeline) {
	if b.timeline == tl {
		return
	}
	if b.timeline != nil {
		b.timeline.detachAll()
	}
	b.timeline = tl
	b.markChanged()
}

// FrameTree returns the tree of objects orbiting this body, nil if nothing
// has ever been attached.
func (b *Body) FrameTree() *FrameTree { return b.frameTree }

// OrCreateFrameTree returns the body's frame tree, creating it lazily.
func (b *Body) OrCreateFrameTree() *FrameTree {
	if b.frameTree == nil {
		b.frameTree = newBodyFrameTree(b)
	}
	return b.frameTree
}

func (b *Body) markChanged() {
	if b.timeline != nil {
		b.timeline.MarkChanged()
	}
}

// phase returns the timeline phase active at tdb, or nil.
func (b *Body) phase(tdb float64) *TimelinePhase {
	if b.timeline == nil {
		return nil
	}
	return b.timeline.FindPhase(tdb)
}

// OrbitFrame returns the frame the body's orbit is expressed in at tdb.
func (b *Body) OrbitFrame(tdb float64) ReferenceFrame {
	if p := b.phase(tdb); p != nil {
		return p.OrbitFrame()
	}
	return nil
}

// BodyFrame returns the frame the body's orientation is expressed in at
// tdb.
func (b *Body) BodyFrame(tdb float64) ReferenceFrame {
	if p := b.phase(tdb); p != nil {
		return p.BodyFrame()
	}
	return nil
}

// Orbit returns the orbit active at tdb.
func (b *Body) Orbit(tdb float64) ephem.Orbit {
	if p := b.phase(tdb); p != nil {
		return p.Orbit()
	}
	return nil
}

// RotationModel returns the rotation model active at tdb.
func (b *Body) RotationModel(tdb float64) ephem.RotationModel {
	if p := b.phase(tdb); p != nil {
		return p.RotationModel()
	}
	return nil
}

// Position returns the body's universal position at tdb. Orbit positions
// are accumulated in double precision up the chain of orbit frame centers
// and only the topmost center's universal position enters the fixed point
// domain, which avoids expensive high-precision arithmetic per level.
func (b *Body) Position(tdb float64) univ.Coord {
	p := b.phase(tdb)
	if p == nil {
		return univ.Zero()
	}

	frame := p.OrbitFrame()
	center := frame.Center()
	offset := frame.Orientation(tdb).Conjugate().Rotate(p.Orbit().PositionAt(tdb))

	for center.Body() != nil {
		cp := center.Body().phase(tdb)
		if cp == nil {
			break
		}
		frame = cp.OrbitFrame()
		offset = offset.Add(frame.Orientation(tdb).Conjugate().Rotate(cp.Orbit().PositionAt(tdb)))
		center = frame.Center()
	}

	return center.Position(tdb).OffsetKm(offset)
}

// Velocity returns the body's velocity at tdb in kilometers per day,
// including the sweep term for non-inertial orbit frames.
func (b *Body) Velocity(tdb float64) mgl64.Vec3 {
	p := b.phase(tdb)
	if p == nil {
		return mgl64.Vec3{}
	}

	frame := p.OrbitFrame()
	v := frame.Orientation(tdb).Conjugate().Rotate(p.Orbit().VelocityAt(tdb))

	if !frame.IsInertial() {
		r := b.Position(tdb).OffsetFromKm(frame.Center().Position(tdb))
		v = v.Add(frame.AngularVelocity(tdb).Cross(r))
	}

	return v.Add(frame.Center().Velocity(tdb))
}

// SystemStar returns the star at the root of the body's orbit frame chain
// at tdb, or nil when the chain does not terminate at a star.
func (b *Body) SystemStar(tdb float64) *Star {
	cur := b
	// The chain is finite for any graph that passed nesting validation;
	// the explicit bound keeps a malformed graph from spinning forever.
	for depth := 0; cur != nil && depth <= maxSystemDepth; depth++ {
		p := cur.phase(tdb)
		if p == nil {
			return nil
		}
		center := p.OrbitFrame().Center()
		if center.Star() != nil {
			return center.Star()
		}
		cur = center.Body()
	}
	return nil
}

const maxSystemDepth = 100

// AstrocentricPosition returns the body's position relative to its system's
// star at tdb, in kilometers. The zero vector when the body is not bound to
// a star.
func (b *Body) AstrocentricPosition(tdb float64) mgl64.Vec3 {
	star := b.SystemStar(tdb)
	if star == nil {
		return mgl64.Vec3{}
	}
	return b.Position(tdb).OffsetFromKm(star.Position(tdb))
}

// EclipticToFrame returns the rotation from the J2000 ecliptic to the
// body's body frame at tdb.
func (b *Body) EclipticToFrame(tdb float64) mgl64.Quat {
	if f := b.BodyFrame(tdb); f != nil {
		return f.Orientation(tdb)
	}
	return mgl64.QuatIdent()
}

// EclipticToEquatorial returns the rotation from the J2000 ecliptic to the
// body's mean equatorial frame at tdb.
func (b *Body) EclipticToEquatorial(tdb float64) mgl64.Quat {
	p := b.phase(tdb)
	if p == nil {
		return mgl64.QuatIdent()
	}
	return p.RotationModel().EquatorOrientation(tdb).Mul(p.BodyFrame().Orientation(tdb))
}

// EclipticToBodyFixed returns the rotation from the J2000 ecliptic to the
// body's rotating surface frame at tdb.
func (b *Body) EclipticToBodyFixed(tdb float64) mgl64.Quat {
	p := b.phase(tdb)
	if p == nil {
		return mgl64.QuatIdent()
	}
	return p.RotationModel().Orientation(tdb).Mul(p.BodyFrame().Orientation(tdb))
}

// AngularVelocity returns the body's rotation vector in ecliptic
// coordinates at tdb, in radians per day.
func (b *Body) AngularVelocity(tdb float64) mgl64.Vec3 {
	p := b.phase(tdb)
	if p == nil {
		return mgl64.Vec3{}
	}

	frame := p.BodyFrame()
	v := frame.Orientation(tdb).Conjugate().Rotate(p.RotationModel().AngularVelocity(tdb))
	if !frame.IsInertial() {
		v = v.Add(frame.AngularVelocity(tdb))
	}
	return v
}
