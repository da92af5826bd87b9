package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/ephem"
	"github.com/litescript/ls-frames/univ"
)

// quatNear reports whether two quaternions represent the same rotation,
// accounting for the q / -q ambiguity.
func quatNear(a, b mgl64.Quat, tol float64) bool {
	return math.Abs(math.Abs(a.Dot(b))-1) < tol
}

// vecNear reports whether two vectors agree within an absolute tolerance
// per component.
func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return math.Abs(a.X()-b.X()) < tol &&
		math.Abs(a.Y()-b.Y()) < tol &&
		math.Abs(a.Z()-b.Z()) < tol
}

// addBody creates a body on a single-phase timeline spanning all test times,
// with both the orbit frame and body frame being the J2000 ecliptic about
// center.
func addBody(t *testing.T, u *Universe, name string, radius float64, center Selection,
	orbit ephem.Orbit, rm ephem.RotationModel) *Body {
	t.Helper()

	body := NewBody(name, radius)
	frame := NewJ2000EclipticFrame(center)
	phase, err := NewTimelinePhase(u, body, -1e10, 1e10, frame, orbit, frame, rm)
	if err != nil {
		t.Fatalf("NewTimelinePhase(%s): %v", name, err)
	}

	tl := NewTimeline()
	if err := tl.AppendPhase(phase); err != nil {
		t.Fatalf("AppendPhase(%s): %v", name, err)
	}
	body.SetTimeline(tl)
	return body
}

// buildFixedSystem assembles a star with a planet and moon pinned at fixed
// offsets: planet at 1e8 km from the star on +X, moon at 4e5 km from the
// planet on +X.
func buildFixedSystem(t *testing.T) (*Universe, *Star, *Body, *Body) {
	t.Helper()

	u := NewUniverse()
	star := NewStar("Sol", univ.Zero())

	planet := addBody(t, u, "planet", 6000, StarSelection(star),
		&ephem.FixedPosition{Position: mgl64.Vec3{1e8, 0, 0}},
		&ephem.UniformRotation{PeriodDays: 1, Epoch: 0})

	moon := addBody(t, u, "moon", 1700, BodySelection(planet),
		&ephem.FixedPosition{Position: mgl64.Vec3{4e5, 0, 0}},
		ephem.Identity())

	return u, star, planet, moon
}
