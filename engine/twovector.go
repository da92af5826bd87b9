package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// TwoVectorTolerance is the minimum cross product length permitted between
// the primary and secondary directions; below it the directions count as
// collinear and the orientation degrades to the identity.
const TwoVectorTolerance = 1.0e-6

// TwoVectorFrame derives its orientation from two observed direction
// vectors: the primary direction is bound exactly to one body axis and the
// secondary as closely as the orthogonality constraint allows. Axis
// arguments are signed indices in {±1, ±2, ±3} for ±X, ±Y, ±Z.
//
// Two-vector frames are always classified as non-inertial; no attempt is
// made to detect the inertial special cases.
type TwoVectorFrame struct {
	CachingFrame
	primaryVector   FrameVector
	primaryAxis     int
	secondaryVector FrameVector
	secondaryAxis   int
	tertiaryAxis    int
}

// NewTwoVectorFrame creates a two-vector frame. The axis configuration is a
// programming contract: axes must be nonzero, in range, and refer to two
// different coordinate axes; violations panic.
func NewTwoVectorFrame(center Selection, primary FrameVector, primaryAxis int, secondary FrameVector, secondaryAxis int) *TwoVectorFrame {
	if primaryAxis == 0 || secondaryAxis == 0 ||
		abs(primaryAxis) > 3 || abs(secondaryAxis) > 3 ||
		abs(primaryAxis) == abs(secondaryAxis) {
		panic(fmt.Sprintf("engine: invalid two-vector frame axes %d, %d", primaryAxis, secondaryAxis))
	}

	f := &TwoVectorFrame{
		primaryVector:   primary,
		primaryAxis:     primaryAxis,
		secondaryVector: secondary,
		secondaryAxis:   secondaryAxis,
		tertiaryAxis:    remainingAxis(primaryAxis, secondaryAxis),
	}
	f.initCaching(center, f, f)
	return f
}

// remainingAxis picks the coordinate axis not used by the primary or
// secondary direction.
func remainingAxis(primaryAxis, secondaryAxis int) int {
	switch {
	case abs(primaryAxis) != 1 && abs(secondaryAxis) != 1:
		return 1
	case abs(primaryAxis) != 2 && abs(secondaryAxis) != 2:
		return 2
	default:
		return 3
	}
}

// ComputeOrientation assembles the rotation matrix whose rows are the
// frame's axes in ambient coordinates, then converts it to a quaternion.
func (f *TwoVectorFrame) ComputeOrientation(tdb float64) mgl64.Quat {
	v0 := f.primaryVector.Direction(tdb).Normalize()
	v1 := f.secondaryVector.Direction(tdb).Normalize()

	if f.primaryAxis < 0 {
		v0 = v0.Mul(-1)
	}
	if f.secondaryAxis < 0 {
		v1 = v1.Mul(-1)
	}

	v2 := v0.Cross(v1)

	// Degenerate case: the primary and secondary directions are
	// collinear. A well-chosen two-vector frame never hits this; fall
	// back to the identity rather than failing.
	length := v2.Len()
	if length < TwoVectorTolerance {
		return mgl64.QuatIdent()
	}
	v2 = v2.Mul(1 / length)

	// Right hand order when the secondary axis follows the primary
	// cyclically (x->y->z->x).
	rhAxis := abs(f.primaryAxis) + 1
	if rhAxis > 3 {
		rhAxis = 1
	}
	rhOrder := rhAxis == abs(f.secondaryAxis)

	var rows [3]mgl64.Vec3
	rows[abs(f.primaryAxis)-1] = v0
	if rhOrder {
		rows[abs(f.secondaryAxis)-1] = v2.Cross(v0)
		rows[f.tertiaryAxis-1] = v2
	} else {
		rows[abs(f.secondaryAxis)-1] = v0.Cross(v2.Mul(-1))
		rows[f.tertiaryAxis-1] = v2.Mul(-1)
	}

	m := mat3FromRows(rows[0], rows[1], rows[2])
	return mgl64.Mat4ToQuat(m.Mat4())
}

func (f *TwoVectorFrame) IsInertial() bool { return false }

func (f *TwoVectorFrame) nestingDepth(depth, maxDepth int, _ FrameType) int {
	// The origin object plus any frames referenced by the two direction
	// vectors contribute to the depth.
	n := frameDepth(f.center, depth, maxDepth, PositionFrame)
	if n > maxDepth {
		return n
	}

	m := f.primaryVector.nestingDepth(depth, maxDepth)
	n = max(m, n)
	if n > maxDepth {
		return n
	}

	m = f.secondaryVector.nestingDepth(depth, maxDepth)
	return max(m, n)
}

// mat3FromRows builds a matrix from row vectors; mgl64 matrices are column
// major.
func mat3FromRows(r0, r1, r2 mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3{
		r0.X(), r1.X(), r2.X(),
		r0.Y(), r1.Y(), r2.Y(),
		r0.Z(), r1.Z(), r2.Z(),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
