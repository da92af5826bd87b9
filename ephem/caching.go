package ephem

import (
	"github.com/go-gl/mathgl/mgl64"
)

// RotationEvaluator computes the uncached rotation state behind a
// CachingRotationModel.
type RotationEvaluator interface {
	ComputeSpin(tdb float64) mgl64.Quat
	ComputeEquatorOrientation(tdb float64) mgl64.Quat
	IsPeriodic() bool
	Period() float64
}

// CachingRotationModel memoizes an evaluator's spin, equator orientation and
// angular velocity, keyed by the last requested time. Computing one entry at
// a new time invalidates the others, since they share the evaluation clock.
//
// The cache is plain mutable state: a model instance must only be evaluated
// from a single goroutine.
type CachingRotationModel struct {
	eval RotationEvaluator

	lastTime            float64
	lastSpin            mgl64.Quat
	lastEquator         mgl64.Quat
	lastAngularVelocity mgl64.Vec3
	spinValid           bool
	equatorValid        bool
	velocityValid       bool
}

// NewCachingRotationModel wraps an evaluator in a per-instance cache.
func NewCachingRotationModel(eval RotationEvaluator) *CachingRotationModel {
	return &CachingRotationModel{eval: eval, lastTime: 365.0}
}

func (c *CachingRotationModel) Spin(tdb float64) mgl64.Quat {
	if tdb != c.lastTime {
		c.lastTime = tdb
		c.lastSpin = c.eval.ComputeSpin(tdb)
		c.spinValid = true
		c.equatorValid = false
		c.velocityValid = false
	} else if !c.spinValid {
		c.lastSpin = c.eval.ComputeSpin(tdb)
		c.spinValid = true
	}
	return c.lastSpin
}

func (c *CachingRotationModel) EquatorOrientation(tdb float64) mgl64.Quat {
	if tdb != c.lastTime {
		c.lastTime = tdb
		c.lastEquator = c.eval.ComputeEquatorOrientation(tdb)
		c.spinValid = false
		c.equatorValid = true
		c.velocityValid = false
	} else if !c.equatorValid {
		c.lastEquator = c.eval.ComputeEquatorOrientation(tdb)
		c.equatorValid = true
	}
	return c.lastEquator
}

func (c *CachingRotationModel) Orientation(tdb float64) mgl64.Quat {
	return orientationOf(c, tdb)
}

func (c *CachingRotationModel) AngularVelocity(tdb float64) mgl64.Vec3 {
	if tdb != c.lastTime {
		c.lastAngularVelocity = c.computeAngularVelocity(tdb)
		c.lastTime = tdb
		c.spinValid = false
		c.equatorValid = false
		c.velocityValid = true
	} else if !c.velocityValid {
		c.lastAngularVelocity = c.computeAngularVelocity(tdb)
		c.velocityValid = true
	}
	return c.lastAngularVelocity
}

// computeAngularVelocity differentiates the orientation. The offset sample
// goes through the evaluator directly so the cache keeps the value for tdb.
func (c *CachingRotationModel) computeAngularVelocity(tdb float64) mgl64.Vec3 {
	dt := diffTimeDelta(c)
	q0 := c.Orientation(tdb)
	q1 := c.eval.ComputeSpin(tdb + dt).Mul(c.eval.ComputeEquatorOrientation(tdb + dt))
	return angularVelocityFromDiff(q0, q1, dt)
}

func (c *CachingRotationModel) IsPeriodic() bool { return c.eval.IsPeriodic() }

func (c *CachingRotationModel) Period() float64 { return c.eval.Period() }
