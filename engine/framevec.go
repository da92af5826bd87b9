package engine

import (
	"github.com/go-gl/mathgl/mgl64"
)

// FrameVectorType discriminates how a FrameVector derives its direction.
type FrameVectorType int

const (
	// RelativePositionVector points from an observer to a target.
	RelativePositionVector FrameVectorType = iota
	// RelativeVelocityVector points along the velocity of a target
	// relative to an observer.
	RelativeVelocityVector
	// ConstantFrameVector is a fixed vector, optionally expressed in
	// another reference frame.
	ConstantFrameVector
)

// FrameVector evaluates one of the direction vectors a two-vector frame is
// built from. Immutable once constructed.
type FrameVector struct {
	typ      FrameVectorType
	observer Selection
	target   Selection
	vec      mgl64.Vec3
	frame    ReferenceFrame
}

// RelativePosition creates a vector pointing from observer to target.
func RelativePosition(observer, target Selection) FrameVector {
	return FrameVector{typ: RelativePositionVector, observer: observer, target: target}
}

// RelativeVelocity creates a vector along the target's velocity relative to
// the observer.
func RelativeVelocity(observer, target Selection) FrameVector {
	return FrameVector{typ: RelativeVelocityVector, observer: observer, target: target}
}

// ConstantVector creates a fixed vector. With a non-nil frame the vector is
// interpreted in that frame and rotated out into the ambient coordinate
// system on evaluation.
func ConstantVector(vec mgl64.Vec3, frame ReferenceFrame) FrameVector {
	return FrameVector{typ: ConstantFrameVector, vec: vec, frame: frame}
}

// Type returns the vector's kind.
func (v FrameVector) Type() FrameVectorType { return v.typ }

// Direction evaluates the vector at time tdb, in kilometers (positions) or
// kilometers per day (velocities). The result is not normalized.
func (v FrameVector) Direction(tdb float64) mgl64.Vec3 {
	switch v.typ {
	case RelativePositionVector:
		return v.target.Position(tdb).OffsetFromKm(v.observer.Position(tdb))

	case RelativeVelocityVector:
		return v.target.Velocity(tdb).Sub(v.observer.Velocity(tdb))

	case ConstantFrameVector:
		if v.frame == nil {
			return v.vec
		}
		return v.frame.Orientation(tdb).Conjugate().Rotate(v.vec)

	default:
		return mgl64.Vec3{}
	}
}

// nestingDepth reports the maximum frame depth reachable through the
// vector's selections and, for a constant vector, its attached frame.
func (v FrameVector) nestingDepth(depth, maxDepth int) int {
	switch v.typ {
	case RelativePositionVector, RelativeVelocityVector:
		n := frameDepth(v.observer, depth, maxDepth, PositionFrame)
		if n > maxDepth {
			return n
		}
		m := frameDepth(v.target, depth, maxDepth, PositionFrame)
		return max(m, n)

	case ConstantFrameVector:
		if v.frame == nil || depth > maxDepth {
			return depth
		}
		return v.frame.nestingDepth(depth+1, maxDepth, OrientationFrame)

	default:
		return depth
	}
}
