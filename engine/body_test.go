package engine

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/litescript/ls-frames/astro"
	"github.com/litescript/ls-frames/ephem"
	"github.com/litescript/ls-frames/univ"
)

func TestBodyPositionComposition(t *testing.T) {
	_, star, planet, moon := buildFixedSystem(t)
	tdb := astro.J2000

	if got := planet.Position(tdb).OffsetFromKm(star.Position(tdb)); !vecNear(got, mgl64.Vec3{1e8, 0, 0}, 1e-3) {
		t.Errorf("planet offset = %v, want (1e8, 0, 0)", got)
	}

	// The moon's orbit is centered on the planet; its star-relative position
	// is the sum of the two offsets.
	want := mgl64.Vec3{1e8 + 4e5, 0, 0}
	if got := moon.Position(tdb).OffsetFromKm(star.Position(tdb)); !vecNear(got, want, 1e-3) {
		t.Errorf("moon offset = %v, want %v", got, want)
	}
}

func TestBodyAstrocentricPosition(t *testing.T) {
	_, _, _, moon := buildFixedSystem(t)
	tdb := astro.J2000

	want := mgl64.Vec3{1e8 + 4e5, 0, 0}
	if got := moon.AstrocentricPosition(tdb); !vecNear(got, want, 1e-3) {
		t.Errorf("AstrocentricPosition = %v, want %v", got, want)
	}

	// A body bound to no star has no astrocentric position.
	orphan := NewBody("orphan", 1)
	if got := orphan.AstrocentricPosition(tdb); got.Len() != 0 {
		t.Errorf("orphan AstrocentricPosition = %v, want zero", got)
	}
}

func TestBodySystemStar(t *testing.T) {
	_, star, planet, moon := buildFixedSystem(t)
	tdb := astro.J2000

	if got := planet.SystemStar(tdb); got != star {
		t.Error("planet system star mismatch")
	}
	if got := moon.SystemStar(tdb); got != star {
		t.Error("moon system star mismatch")
	}
}

func TestBodyVelocityCircularOrbit(t *testing.T) {
	u := NewUniverse()
	star := NewStar("Sol", univ.Zero())

	const (
		a      = 1.5e8  // km
		period = 365.25 // days
	)
	planet := addBody(t, u, "planet", 6000, StarSelection(star),
		&ephem.EllipticalOrbit{SemiMajorAxis: a, PeriodDays: period, Epoch: astro.J2000},
		ephem.Identity())

	v := planet.Velocity(astro.J2000 + 17)
	want := 2 * math.Pi * a / period
	if math.Abs(v.Len()-want) > want*0.01 {
		t.Errorf("circular orbit speed = %g km/day, want %g", v.Len(), want)
	}
}

func TestBodyEclipticToBodyFixedPeriodic(t *testing.T) {
	_, _, planet, _ := buildFixedSystem(t)

	q0 := planet.EclipticToBodyFixed(astro.J2000)
	q1 := planet.EclipticToBodyFixed(astro.J2000 + 1.0)
	if !quatNear(q0, q1, 1e-9) {
		t.Error("body-fixed orientation should repeat after the rotation period")
	}

	qHalf := planet.EclipticToBodyFixed(astro.J2000 + 0.5)
	if quatNear(q0, qHalf, 1e-6) {
		t.Error("body-fixed orientation should differ at half period")
	}
}

func TestBodyAngularVelocity(t *testing.T) {
	_, _, planet, _ := buildFixedSystem(t)

	w := planet.AngularVelocity(astro.J2000)
	if got, want := w.Len(), 2*math.Pi; math.Abs(got-want) > 1e-9 {
		t.Errorf("angular velocity magnitude = %g rad/day, want %g", got, want)
	}

	// The rotation axis has zero inclination, so the vector points along the
	// ecliptic pole.
	if !vecNear(w.Normalize(), mgl64.Vec3{0, 1, 0}, 1e-9) {
		t.Errorf("angular velocity direction = %v, want (0, 1, 0)", w.Normalize())
	}
}

func TestLocationPosition(t *testing.T) {
	_, star, planet, _ := buildFixedSystem(t)

	// A site on the planet's north pole stays on the rotation axis as the
	// planet spins.
	site := NewLocation("pole", planet, mgl64.Vec3{0, 6000, 0})
	for _, dt := range []float64{0, 0.3, 0.77} {
		tdb := astro.J2000 + dt
		got := site.Position(tdb).OffsetFromKm(star.Position(tdb))
		want := mgl64.Vec3{1e8, 6000, 0}
		if !vecNear(got, want, 1e-3) {
			t.Errorf("pole site offset at +%g d = %v, want %v", dt, got, want)
		}
	}

	// An equatorial site keeps its distance from the planet's center but
	// moves with the surface.
	eq := NewLocation("equator", planet, mgl64.Vec3{6000, 0, 0})
	p0 := eq.Position(astro.J2000).OffsetFromKm(planet.Position(astro.J2000))
	p1 := eq.Position(astro.J2000 + 0.25).OffsetFromKm(planet.Position(astro.J2000 + 0.25))
	if math.Abs(p0.Len()-6000) > 1e-6 || math.Abs(p1.Len()-6000) > 1e-6 {
		t.Error("equatorial site should stay 6000 km from the center")
	}
	if vecNear(p0, p1, 1.0) {
		t.Error("equatorial site should move with the rotating surface")
	}
}
