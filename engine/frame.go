package engine

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/astro"
	"github.com/litescript/ls-frames/univ"
)

// Differentiation step for frame angular velocities, in days (one minute).
const angularVelocityDiffDelta = 1.0 / 1440.0

// FrameType selects which dependency edges a nesting depth walk follows.
type FrameType int

const (
	// PositionFrame walks orbit frame references.
	PositionFrame FrameType = iota
	// OrientationFrame walks body frame references.
	OrientationFrame
)

// ReferenceFrame is a time-dependent mapping between universal coordinates
// or orientations and a local coordinate system anchored to a center
// object. Frames are immutable after construction and may be shared freely;
// the caching variants additionally require single-goroutine evaluation.
type ReferenceFrame interface {
	// Center returns the object at the frame's origin.
	Center() Selection

	// Orientation returns the rotation from the J2000 ecliptic to the
	// frame at time tdb.
	Orientation(tdb float64) mgl64.Quat

	// AngularVelocity returns the frame's rotation vector at tdb in
	// radians per day.
	AngularVelocity(tdb float64) mgl64.Vec3

	// ConvertFromUniversal translates a universal coordinate into the
	// frame. The rotation runs in the fixed point domain and is much
	// slower than ConvertFromAstrocentric; prefer the astrocentric form
	// when everything lives in one solar system.
	ConvertFromUniversal(uc univ.Coord, tdb float64) univ.Coord

	// ConvertToUniversal translates a frame coordinate back to universal
	// space.
	ConvertToUniversal(uc univ.Coord, tdb float64) univ.Coord

	// OrientationFromUniversal rearranges a universal orientation into the
	// frame.
	OrientationFromUniversal(q mgl64.Quat, tdb float64) mgl64.Quat

	// OrientationToUniversal rearranges a frame orientation back to
	// universal space.
	OrientationToUniversal(q mgl64.Quat, tdb float64) mgl64.Quat

	// ConvertFromAstrocentric translates a star-relative position in
	// kilometers into the frame. Only Body and Star centers are
	// supported: for any other center the result is the zero vector, a
	// known limitation callers must check for.
	ConvertFromAstrocentric(p mgl64.Vec3, tdb float64) mgl64.Vec3

	// ConvertToAstrocentric is the inverse of ConvertFromAstrocentric,
	// with the same center restrictions.
	ConvertToAstrocentric(p mgl64.Vec3, tdb float64) mgl64.Vec3

	// IsInertial reports whether the frame's orientation is fixed over
	// time.
	IsInertial() bool

	// NestingDepth walks the frame's dependency graph and returns its
	// depth, stopping early with a value greater than maxDepth when the
	// graph nests too deeply (or cyclically). Callers reject frames whose
	// reported depth exceeds their limit.
	NestingDepth(maxDepth int, frameType FrameType) int

	nestingDepth(depth, maxDepth int, frameType FrameType) int
}

// frameBase carries the center object and implements the conversion
// operations shared by every frame variant. The self reference dispatches
// to the variant's Orientation.
type frameBase struct {
	center Selection
	self   ReferenceFrame
}

func (b *frameBase) init(center Selection, self ReferenceFrame) {
	b.center = center
	b.self = self
}

func (b *frameBase) Center() Selection { return b.center }

func (b *frameBase) ConvertFromUniversal(uc univ.Coord, tdb float64) univ.Coord {
	return uc.Sub(b.center.Position(tdb)).Rotate(b.self.Orientation(tdb))
}

func (b *frameBase) ConvertToUniversal(uc univ.Coord, tdb float64) univ.Coord {
	return b.center.Position(tdb).Add(uc.Rotate(b.self.Orientation(tdb).Conjugate()))
}

func (b *frameBase) OrientationFromUniversal(q mgl64.Quat, tdb float64) mgl64.Quat {
	return q.Mul(b.self.Orientation(tdb).Conjugate())
}

func (b *frameBase) OrientationToUniversal(q mgl64.Quat, tdb float64) mgl64.Quat {
	return q.Mul(b.self.Orientation(tdb))
}

func (b *frameBase) ConvertFromAstrocentric(p mgl64.Vec3, tdb float64) mgl64.Vec3 {
	switch b.center.Type() {
	case SelectionBody:
		center := b.center.Body().AstrocentricPosition(tdb)
		return b.self.Orientation(tdb).Rotate(p.Sub(center))
	case SelectionStar:
		return b.self.Orientation(tdb).Rotate(p)
	default:
		// Unsupported center type (galaxy, location); see the interface
		// contract.
		return mgl64.Vec3{}
	}
}

func (b *frameBase) ConvertToAstrocentric(p mgl64.Vec3, tdb float64) mgl64.Vec3 {
	switch b.center.Type() {
	case SelectionBody:
		center := b.center.Body().AstrocentricPosition(tdb)
		return center.Add(b.self.Orientation(tdb).Conjugate().Rotate(p))
	case SelectionStar:
		return b.self.Orientation(tdb).Conjugate().Rotate(p)
	default:
		return mgl64.Vec3{}
	}
}

// AngularVelocity differentiates the variant's orientation; variants with
// cheaper exact forms override it.
func (b *frameBase) AngularVelocity(tdb float64) mgl64.Vec3 {
	q0 := b.self.Orientation(tdb)
	q1 := b.self.Orientation(tdb + angularVelocityDiffDelta)
	return frameAngularVelocity(q0, q1, angularVelocityDiffDelta)
}

func (b *frameBase) NestingDepth(maxDepth int, frameType FrameType) int {
	return b.self.nestingDepth(0, maxDepth, frameType)
}

// frameAngularVelocity recovers a rotation vector from two orientation
// samples dt apart; negligible relative rotations yield zero.
func frameAngularVelocity(q0, q1 mgl64.Quat, dt float64) mgl64.Vec3 {
	dq := q0.Conjugate().Mul(q1)
	if math.Abs(dq.W) > 0.99999999 {
		return mgl64.Vec3{}
	}
	return dq.V.Normalize().Mul(2.0 * math.Acos(dq.W) / dt)
}

// frameDepth measures the nesting depth reachable through a selection: the
// frames of the referenced body (or a location's parent body). The walk
// returns as soon as the running depth exceeds maxDepth.
func frameDepth(sel Selection, depth, maxDepth int, frameType FrameType) int {
	if depth > maxDepth {
		return depth
	}

	body := sel.parentBody()
	if body == nil {
		return depth
	}

	orbitFrameDepth := depth
	bodyFrameDepth := depth
	if orbitFrame := body.OrbitFrame(0.0); orbitFrame != nil && frameType == PositionFrame {
		orbitFrameDepth = orbitFrame.nestingDepth(depth+1, maxDepth, frameType)
		if orbitFrameDepth > maxDepth {
			return orbitFrameDepth
		}
	}

	if bodyFrame := body.BodyFrame(0.0); bodyFrame != nil && frameType == OrientationFrame {
		bodyFrameDepth = bodyFrame.nestingDepth(depth+1, maxDepth, frameType)
	}

	return max(orbitFrameDepth, bodyFrameDepth)
}

// J2000EclipticFrame is the base inertial frame: its orientation is the
// identity at all times.
type J2000EclipticFrame struct {
	frameBase
}

// NewJ2000EclipticFrame creates a J2000 ecliptic frame about a center.
func NewJ2000EclipticFrame(center Selection) *J2000EclipticFrame {
	f := &J2000EclipticFrame{}
	f.init(center, f)
	return f
}

func (f *J2000EclipticFrame) Orientation(float64) mgl64.Quat { return mgl64.QuatIdent() }

func (f *J2000EclipticFrame) IsInertial() bool { return true }

func (f *J2000EclipticFrame) nestingDepth(depth, maxDepth int, _ FrameType) int {
	return frameDepth(f.center, depth, maxDepth, PositionFrame)
}

// J2000EquatorFrame is the Earth mean equator frame of J2000: a fixed
// rotation from the ecliptic by the J2000 obliquity about the X axis.
type J2000EquatorFrame struct {
	frameBase
}

// NewJ2000EquatorFrame creates a J2000 equatorial frame about a center.
func NewJ2000EquatorFrame(center Selection) *J2000EquatorFrame {
	f := &J2000EquatorFrame{}
	f.init(center, f)
	return f
}

func (f *J2000EquatorFrame) Orientation(float64) mgl64.Quat {
	return mgl64.QuatRotate(astro.J2000Obliquity, mgl64.Vec3{1, 0, 0})
}

func (f *J2000EquatorFrame) IsInertial() bool { return true }

func (f *J2000EquatorFrame) nestingDepth(depth, maxDepth int, _ FrameType) int {
	return frameDepth(f.center, depth, maxDepth, PositionFrame)
}

// yRot180 is the fixed half turn about the Y axis applied by body-fixed
// frames to match the texture mapping convention.
var yRot180 = mgl64.Quat{W: 0, V: mgl64.Vec3{0, 1, 0}}

// BodyFixedFrame rotates with an object: its orientation tracks the
// object's ecliptic-to-body-fixed rotation (or its rotation model, for a
// star).
type BodyFixedFrame struct {
	frameBase
	fixObject Selection
}

// NewBodyFixedFrame creates a frame centered on center and rotating with
// obj.
func NewBodyFixedFrame(center, obj Selection) *BodyFixedFrame {
	f := &BodyFixedFrame{fixObject: obj}
	f.init(center, f)
	return f
}

// TrackedObject returns the object the frame rotates with.
func (f *BodyFixedFrame) TrackedObject() Selection { return f.fixObject }

func (f *BodyFixedFrame) Orientation(tdb float64) mgl64.Quat {
	switch f.fixObject.Type() {
	case SelectionBody:
		return yRot180.Mul(f.fixObject.Body().EclipticToBodyFixed(tdb))
	case SelectionStar:
		return yRot180.Mul(f.fixObject.Star().RotationModel().Orientation(tdb))
	case SelectionLocation:
		if parent := f.fixObject.Location().ParentBody(); parent != nil {
			return yRot180.Mul(parent.EclipticToBodyFixed(tdb))
		}
		return yRot180
	default:
		return yRot180
	}
}

func (f *BodyFixedFrame) AngularVelocity(tdb float64) mgl64.Vec3 {
	switch f.fixObject.Type() {
	case SelectionBody:
		return f.fixObject.Body().AngularVelocity(tdb)
	case SelectionStar:
		return f.fixObject.Star().RotationModel().AngularVelocity(tdb)
	case SelectionLocation:
		if parent := f.fixObject.Location().ParentBody(); parent != nil {
			return parent.AngularVelocity(tdb)
		}
		return mgl64.Vec3{}
	default:
		return mgl64.Vec3{}
	}
}

func (f *BodyFixedFrame) IsInertial() bool { return false }

func (f *BodyFixedFrame) nestingDepth(depth, maxDepth int, _ FrameType) int {
	n := frameDepth(f.center, depth, maxDepth, PositionFrame)
	if n > maxDepth {
		return n
	}
	m := frameDepth(f.fixObject, depth, maxDepth, OrientationFrame)
	return max(m, n)
}

// BodyMeanEquatorFrame follows an object's mean equator orientation, either
// of date or frozen at a fixed epoch.
type BodyMeanEquatorFrame struct {
	frameBase
	equatorObject Selection
	freezeEpoch   float64
	frozen        bool
}

// NewBodyMeanEquatorFrame creates a mean equator frame of date.
func NewBodyMeanEquatorFrame(center, obj Selection) *BodyMeanEquatorFrame {
	f := &BodyMeanEquatorFrame{equatorObject: obj, freezeEpoch: astro.J2000}
	f.init(center, f)
	return f
}

// NewFrozenBodyMeanEquatorFrame creates a mean equator frame whose
// orientation is evaluated at the freeze epoch regardless of the query
// time.
func NewFrozenBodyMeanEquatorFrame(center, obj Selection, freezeEpoch float64) *BodyMeanEquatorFrame {
	f := &BodyMeanEquatorFrame{equatorObject: obj, freezeEpoch: freezeEpoch, frozen: true}
	f.init(center, f)
	return f
}

// EquatorObject returns the object whose equator defines the frame.
func (f *BodyMeanEquatorFrame) EquatorObject() Selection { return f.equatorObject }

// IsFrozen reports whether the frame is pinned to its freeze epoch.
func (f *BodyMeanEquatorFrame) IsFrozen() bool { return f.frozen }

func (f *BodyMeanEquatorFrame) Orientation(tdb float64) mgl64.Quat {
	t := tdb
	if f.frozen {
		t = f.freezeEpoch
	}

	switch f.equatorObject.Type() {
	case SelectionBody:
		return f.equatorObject.Body().EclipticToEquatorial(t)
	case SelectionStar:
		return f.equatorObject.Star().RotationModel().EquatorOrientation(t)
	default:
		return mgl64.QuatIdent()
	}
}

func (f *BodyMeanEquatorFrame) AngularVelocity(tdb float64) mgl64.Vec3 {
	if f.frozen {
		return mgl64.Vec3{}
	}
	if body := f.equatorObject.Body(); body != nil {
		if bf := body.BodyFrame(tdb); bf != nil {
			return bf.AngularVelocity(tdb)
		}
	}
	return mgl64.Vec3{}
}

func (f *BodyMeanEquatorFrame) IsInertial() bool {
	if f.frozen {
		return true
	}
	// The mean equator drifts with precession, but the frame counts as
	// inertial as long as the object's own body frame is.
	if body := f.equatorObject.Body(); body != nil {
		if bf := body.BodyFrame(0.0); bf != nil {
			return bf.IsInertial()
		}
	}
	return true
}

func (f *BodyMeanEquatorFrame) nestingDepth(depth, maxDepth int, _ FrameType) int {
	n := frameDepth(f.center, depth, maxDepth, PositionFrame)
	if n > maxDepth {
		return n
	}
	m := frameDepth(f.equatorObject, depth, maxDepth, OrientationFrame)
	return max(m, n)
}
