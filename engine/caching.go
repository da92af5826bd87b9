package engine

import (
	"github.com/go-gl/mathgl/mgl64"
)

// FrameEvaluator computes the uncached orientation behind a CachingFrame.
type FrameEvaluator interface {
	ComputeOrientation(tdb float64) mgl64.Quat
}

// CachingFrame memoizes orientation and angular velocity keyed by the last
// requested time. It serves as the base for frames whose orientation is
// expensive, like TwoVectorFrame; the cache is purely an optimization and
// makes the frame single-goroutine.
type CachingFrame struct {
	frameBase
	eval FrameEvaluator

	lastTime            float64
	lastOrientation     mgl64.Quat
	lastAngularVelocity mgl64.Vec3
	orientationValid    bool
	velocityValid       bool
}

// NewCachingFrame wraps an evaluator in a caching frame about a center.
func NewCachingFrame(center Selection, eval FrameEvaluator) *CachingFrame {
	f := &CachingFrame{}
	f.initCaching(center, f, eval)
	return f
}

// initCaching wires a derived frame that embeds CachingFrame: self receives
// the derived frame so interface dispatch reaches its overrides.
func (c *CachingFrame) initCaching(center Selection, self ReferenceFrame, eval FrameEvaluator) {
	c.init(center, self)
	c.eval = eval
	c.lastTime = -1.0e50
	c.lastOrientation = mgl64.QuatIdent()
}

func (c *CachingFrame) Orientation(tdb float64) mgl64.Quat {
	if tdb != c.lastTime {
		c.lastTime = tdb
		c.lastOrientation = c.eval.ComputeOrientation(tdb)
		c.orientationValid = true
		c.velocityValid = false
	} else if !c.orientationValid {
		c.lastOrientation = c.eval.ComputeOrientation(tdb)
		c.orientationValid = true
	}
	return c.lastOrientation
}

func (c *CachingFrame) AngularVelocity(tdb float64) mgl64.Vec3 {
	if tdb != c.lastTime {
		// Compute before touching lastTime: the differentiation reads the
		// orientation for tdb, which must not hit an entry keyed to the
		// previous time.
		c.lastAngularVelocity = c.computeAngularVelocity(tdb)
		c.lastTime = tdb
		c.velocityValid = true
	} else if !c.velocityValid {
		c.lastAngularVelocity = c.computeAngularVelocity(tdb)
		c.velocityValid = true
	}
	return c.lastAngularVelocity
}

// computeAngularVelocity differentiates the orientation. The offset sample
// calls the evaluator directly so the cache entry for tdb survives.
func (c *CachingFrame) computeAngularVelocity(tdb float64) mgl64.Vec3 {
	q0 := c.Orientation(tdb)
	q1 := c.eval.ComputeOrientation(tdb + angularVelocityDiffDelta)
	return frameAngularVelocity(q0, q1, angularVelocityDiffDelta)
}

func (c *CachingFrame) IsInertial() bool { return false }

func (c *CachingFrame) nestingDepth(depth, maxDepth int, _ FrameType) int {
	return frameDepth(c.center, depth, maxDepth, PositionFrame)
}
