package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/astro"
	"github.com/litescript/ls-frames/ephem"
	"github.com/litescript/ls-frames/univ"
)

func TestJ2000EclipticFrame(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)
	frame := NewJ2000EclipticFrame(StarSelection(star))

	if !frame.IsInertial() {
		t.Error("ecliptic frame should be inertial")
	}
	if !quatNear(frame.Orientation(astro.J2000), mgl64.QuatIdent(), 1e-12) {
		t.Error("ecliptic frame orientation should be the identity")
	}
	if w := frame.AngularVelocity(astro.J2000); w.Len() != 0 {
		t.Errorf("ecliptic frame angular velocity = %v, want zero", w)
	}
}

func TestJ2000EquatorFrameTilt(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)
	frame := NewJ2000EquatorFrame(StarSelection(star))

	// The ecliptic pole expressed in the equatorial frame is tilted from the
	// frame's pole by the obliquity.
	pole := frame.Orientation(astro.J2000).Rotate(mgl64.Vec3{0, 1, 0})
	if got, want := pole.Y(), math.Cos(astro.J2000Obliquity); math.Abs(got-want) > 1e-12 {
		t.Errorf("pole Y component = %g, want %g", got, want)
	}
	if !frame.IsInertial() {
		t.Error("equator frame should be inertial")
	}
}

func TestFrameConversionRoundTrip(t *testing.T) {
	_, star, planet, _ := buildFixedSystem(t)
	tdb := astro.J2000

	frames := []ReferenceFrame{
		NewJ2000EclipticFrame(BodySelection(planet)),
		NewJ2000EquatorFrame(StarSelection(star)),
		NewBodyFixedFrame(BodySelection(planet), BodySelection(planet)),
		NewBodyMeanEquatorFrame(BodySelection(planet), BodySelection(planet)),
	}

	point := univ.FromKm(mgl64.Vec3{1.0e8, -3.0e7, 5.0e6})
	for i, frame := range frames {
		local := frame.ConvertFromUniversal(point, tdb)
		back := frame.ConvertToUniversal(local, tdb)
		if diff := back.OffsetFromKm(point).Len(); diff > 1e-3 {
			t.Errorf("frame %d: position round trip off by %g km", i, diff)
		}

		q := mgl64.QuatRotate(0.7, mgl64.Vec3{0, 0, 1})
		qb := frame.OrientationToUniversal(frame.OrientationFromUniversal(q, tdb), tdb)
		if !quatNear(q, qb, 1e-12) {
			t.Errorf("frame %d: orientation round trip diverged", i)
		}
	}
}

func TestFrameAstrocentricConversion(t *testing.T) {
	_, _, planet, _ := buildFixedSystem(t)
	tdb := astro.J2000

	frame := NewJ2000EclipticFrame(BodySelection(planet))

	// A point 1000 km sunward of the planet.
	p := mgl64.Vec3{1e8 - 1000, 0, 0}
	local := frame.ConvertFromAstrocentric(p, tdb)
	if !vecNear(local, mgl64.Vec3{-1000, 0, 0}, 1e-6) {
		t.Errorf("ConvertFromAstrocentric = %v, want (-1000, 0, 0)", local)
	}
	if back := frame.ConvertToAstrocentric(local, tdb); !vecNear(back, p, 1e-6) {
		t.Errorf("astrocentric round trip = %v, want %v", back, p)
	}
}

func TestBodyFixedFrameTracksRotation(t *testing.T) {
	_, _, planet, _ := buildFixedSystem(t)
	frame := NewBodyFixedFrame(BodySelection(planet), BodySelection(planet))

	if frame.IsInertial() {
		t.Error("body-fixed frame should not be inertial")
	}

	// The planet spins with a one day period; a half period rotates the
	// frame by a half turn, a full period brings it back.
	q0 := frame.Orientation(astro.J2000)
	qHalf := frame.Orientation(astro.J2000 + 0.5)
	qFull := frame.Orientation(astro.J2000 + 1.0)

	if !quatNear(q0, qFull, 1e-9) {
		t.Error("orientation should repeat after one period")
	}
	if quatNear(q0, qHalf, 1e-6) {
		t.Error("orientation should differ at half period")
	}

	w := frame.AngularVelocity(astro.J2000)
	if got, want := w.Len(), 2*math.Pi; math.Abs(got-want) > 1e-9 {
		t.Errorf("angular velocity magnitude = %g rad/day, want %g", got, want)
	}
}

func TestBodyMeanEquatorFrameFrozen(t *testing.T) {
	_, _, planet, _ := buildFixedSystem(t)
	frame := NewFrozenBodyMeanEquatorFrame(BodySelection(planet), BodySelection(planet), astro.J2000)

	if !frame.IsFrozen() {
		t.Error("frame should report frozen")
	}
	if !frame.IsInertial() {
		t.Error("frozen frame should be inertial")
	}

	q0 := frame.Orientation(astro.J2000)
	q1 := frame.Orientation(astro.J2000 + 1000)
	if !quatNear(q0, q1, 1e-12) {
		t.Error("frozen orientation should not vary with time")
	}
	if w := frame.AngularVelocity(astro.J2000); w.Len() != 0 {
		t.Errorf("frozen angular velocity = %v, want zero", w)
	}
}

func TestFrameNestingDepthChain(t *testing.T) {
	_, _, _, moon := buildFixedSystem(t)

	// moon -> planet -> star: two orbit frame hops.
	frame := NewJ2000EclipticFrame(BodySelection(moon))
	if got := frame.NestingDepth(8, PositionFrame); got != 2 {
		t.Errorf("NestingDepth = %d, want 2", got)
	}
}

func TestFrameNestingDepthCycle(t *testing.T) {
	u := NewUniverse()

	a := NewBody("a", 1)
	b := NewBody("b", 1)

	// a orbits b and b orbits a; the depth walk must terminate and report a
	// value past the limit.
	bindBody := func(body *Body, center *Body) {
		frame := NewJ2000EclipticFrame(BodySelection(center))
		phase, err := NewTimelinePhase(u, body, -1e10, 1e10, frame,
			&ephem.FixedPosition{Position: mgl64.Vec3{1, 0, 0}}, frame, ephem.Identity())
		if err != nil {
			t.Fatalf("NewTimelinePhase: %v", err)
		}
		tl := NewTimeline()
		if err := tl.AppendPhase(phase); err != nil {
			t.Fatalf("AppendPhase: %v", err)
		}
		body.SetTimeline(tl)
	}
	bindBody(a, b)
	bindBody(b, a)

	frame := NewJ2000EclipticFrame(BodySelection(a))
	if got := frame.NestingDepth(10, PositionFrame); got <= 10 {
		t.Errorf("NestingDepth = %d, want > 10 for a cyclic graph", got)
	}
}

func TestCachingFrameMemoization(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)

	eval := &countingFrameEvaluator{}
	frame := NewCachingFrame(StarSelection(star), eval)

	tdb := astro.J2000
	q := frame.Orientation(tdb)
	if frame.Orientation(tdb) != q {
		t.Error("cached orientation changed between identical queries")
	}
	if eval.calls != 1 {
		t.Errorf("evaluator called %d times for repeated queries, want 1", eval.calls)
	}

	frame.Orientation(tdb + 1)
	if eval.calls != 2 {
		t.Errorf("evaluator called %d times after a new time, want 2", eval.calls)
	}

	// Angular velocity at the cached time adds exactly one offset sample.
	frame.AngularVelocity(tdb + 1)
	if eval.calls != 3 {
		t.Errorf("evaluator called %d times after angular velocity, want 3", eval.calls)
	}
	frame.AngularVelocity(tdb + 1)
	if eval.calls != 3 {
		t.Errorf("evaluator called %d times for cached angular velocity, want 3", eval.calls)
	}
}

func TestCachingFrameVelocityAfterOrientationAtOtherTime(t *testing.T) {
	_, star, _, _ := buildFixedSystem(t)

	frame := NewCachingFrame(StarSelection(star), spinningFrameEvaluator{period: 1})

	// Prime the orientation cache at one time, then ask for the angular
	// velocity at another. The differentiation must sample the new time on
	// both sides instead of reusing the primed orientation.
	frame.Orientation(astro.J2000)
	w := frame.AngularVelocity(astro.J2000 + 123.25)

	want := 2 * math.Pi
	if math.Abs(w.Len()-want) > want*1e-4 {
		t.Errorf("|w| = %g rad/day, want %g", w.Len(), want)
	}
	if axis := w.Normalize(); math.Abs(axis.Y()) < 0.999999 {
		t.Errorf("spin axis = %v, want along Y", axis)
	}
}

// spinningFrameEvaluator rotates uniformly about +Y.
type spinningFrameEvaluator struct {
	period float64
}

func (e spinningFrameEvaluator) ComputeOrientation(tdb float64) mgl64.Quat {
	return mgl64.QuatRotate(2*math.Pi*(tdb-astro.J2000)/e.period, mgl64.Vec3{0, 1, 0})
}

type countingFrameEvaluator struct {
	calls int
}

func (e *countingFrameEvaluator) ComputeOrientation(tdb float64) mgl64.Quat {
	e.calls++
	return mgl64.QuatRotate(tdb*0.01, mgl64.Vec3{0, 1, 0})
}
