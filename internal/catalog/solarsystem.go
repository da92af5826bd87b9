// Package catalog builds the built-in solar system the viewer starts with:
// the classical planets on Keplerian orbits with J2000 osculating elements,
// plus the Moon and a small spacecraft as satellite examples.
package catalog

import (
	"fmt"
	"math"

	"github.com/litescript/ls-frames/astro"
	"github.com/litescript/ls-frames/engine"
	"github.com/litescript/ls-frames/ephem"
	"github.com/litescript/ls-frames/univ"
)

// planetSpec carries the J2000 osculating elements and spin parameters of
// one planet. Angles in degrees, distances in AU, periods in days.
type planetSpec struct {
	name     string
	radius   float64 // km
	a        float64
	e        float64
	incl     float64
	node     float64
	longPeri float64 // longitude of periapsis
	meanLong float64 // mean longitude at epoch
	period   float64

	spinPeriod float64
	spinIncl   float64
	spinNode   float64
}

var planets = []planetSpec{
	{
		name: "Mercury", radius: 2439.7,
		a: 0.38709893, e: 0.20563069, incl: 7.00487, node: 48.33167,
		longPeri: 77.45645, meanLong: 252.25084, period: 87.9691,
		spinPeriod: 58.6462, spinIncl: 0.01,
	},
	{
		name: "Venus", radius: 6051.8,
		a: 0.72333199, e: 0.00677323, incl: 3.39471, node: 76.68069,
		longPeri: 131.53298, meanLong: 181.97973, period: 224.7008,
		spinPeriod: 243.0185, spinIncl: 177.36,
	},
	{
		name: "Earth", radius: 6378.14,
		a: 1.00000011, e: 0.01671022, incl: 0.00005, node: -11.26064,
		longPeri: 102.94719, meanLong: 100.46435, period: 365.2564,
		spinPeriod: 0.99726968, spinIncl: 23.4393,
	},
	{
		name: "Mars", radius: 3397.0,
		a: 1.52366231, e: 0.09341233, incl: 1.85061, node: 49.57854,
		longPeri: 336.04084, meanLong: 355.45332, period: 686.9796,
		spinPeriod: 1.02595675, spinIncl: 25.19, spinNode: 35.43,
	},
	{
		name: "Jupiter", radius: 71492.0,
		a: 5.20336301, e: 0.04839266, incl: 1.30530, node: 100.55615,
		longPeri: 14.75385, meanLong: 34.40438, period: 4332.589,
		spinPeriod: 0.41354, spinIncl: 3.13,
	},
	{
		name: "Saturn", radius: 60268.0,
		a: 9.53707032, e: 0.05415060, incl: 2.48446, node: 113.71504,
		longPeri: 92.43194, meanLong: 49.94432, period: 10759.22,
		spinPeriod: 0.44401, spinIncl: 26.73,
	},
}

// BuildSolSystem populates a universe with the Sun, the planets and the
// Moon, and returns the star.
func BuildSolSystem(u *engine.Universe) (*engine.Star, error) {
	sun := engine.NewStar("Sol", univ.Zero())
	sun.SetRotationModel(&ephem.UniformRotation{
		PeriodDays:  25.38,
		Epoch:       astro.J2000,
		Inclination: deg(7.25),
	})

	var earth *engine.Body
	for _, spec := range planets {
		body, err := addPlanet(u, sun, spec)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", spec.name, err)
		}
		if spec.name == "Earth" {
			earth = body
		}
	}

	if err := addMoon(u, earth); err != nil {
		return nil, fmt.Errorf("catalog: Moon: %w", err)
	}
	if err := addProbe(u, sun, earth); err != nil {
		return nil, fmt.Errorf("catalog: Pioneer: %w", err)
	}
	return sun, nil
}

func addPlanet(u *engine.Universe, sun *engine.Star, spec planetSpec) (*engine.Body, error) {
	body := engine.NewBody(spec.name, spec.radius)
	frame := engine.NewJ2000EclipticFrame(engine.StarSelection(sun))

	orbit := &ephem.EllipticalOrbit{
		SemiMajorAxis:      astro.AUToKm(spec.a),
		Eccentricity:       spec.e,
		Inclination:        deg(spec.incl),
		AscendingNode:      deg(spec.node),
		ArgOfPeriapsis:     deg(spec.longPeri - spec.node),
		MeanAnomalyAtEpoch: deg(spec.meanLong - spec.longPeri),
		PeriodDays:         spec.period,
		Epoch:              astro.J2000,
	}

	rotation := &ephem.UniformRotation{
		PeriodDays:    spec.spinPeriod,
		Epoch:         astro.J2000,
		Inclination:   deg(spec.spinIncl),
		AscendingNode: deg(spec.spinNode),
	}

	phase, err := engine.NewTimelinePhase(u, body, -1e10, 1e10, frame, orbit, frame, rotation)
	if err != nil {
		return nil, err
	}

	tl := engine.NewTimeline()
	if err := tl.AppendPhase(phase); err != nil {
		return nil, err
	}
	body.SetTimeline(tl)
	return body, nil
}

// addMoon attaches the Moon to Earth. The orbit frame is the ecliptic about
// Earth; the body frame follows Earth's mean equator, showing a frame whose
// orientation comes from another body.
func addMoon(u *engine.Universe, earth *engine.Body) error {
	moon := engine.NewBody("Luna", 1737.5)

	orbitFrame := engine.NewJ2000EclipticFrame(engine.BodySelection(earth))
	bodyFrame := engine.NewBodyMeanEquatorFrame(engine.BodySelection(moon), engine.BodySelection(earth))

	orbit := &ephem.EllipticalOrbit{
		SemiMajorAxis: 384400,
		Eccentricity:  0.0549,
		Inclination:   deg(5.145),
		PeriodDays:    27.321661,
		Epoch:         astro.J2000,
	}

	// Tidally locked: the spin period matches the orbital period.
	rotation := &ephem.UniformRotation{
		PeriodDays:  27.321661,
		Epoch:       astro.J2000,
		Inclination: deg(1.5424),
	}

	phase, err := engine.NewTimelinePhase(u, moon, -1e10, 1e10, orbitFrame, orbit, bodyFrame, rotation)
	if err != nil {
		return err
	}

	tl := engine.NewTimeline()
	if err := tl.AppendPhase(phase); err != nil {
		return err
	}
	moon.SetTimeline(tl)
	return nil
}

// departureTDB is when the demo probe leaves Earth orbit for its
// heliocentric cruise.
const departureTDB = astro.J2000 + 500

// addProbe attaches a spacecraft with a two-phase timeline: a geostationary
// parking orbit around Earth, then a heliocentric cruise with a sun/velocity
// two-vector attitude frame.
func addProbe(u *engine.Universe, sun *engine.Star, earth *engine.Body) error {
	probe := engine.NewBody("Pioneer", 0.01)

	parkingFrame := engine.NewJ2000EclipticFrame(engine.BodySelection(earth))
	parking, err := engine.NewTimelinePhase(u, probe, -1e10, departureTDB,
		parkingFrame,
		&ephem.EllipticalOrbit{
			SemiMajorAxis: 42164,
			PeriodDays:    0.99726968,
			Epoch:         astro.J2000,
		},
		parkingFrame, ephem.Identity())
	if err != nil {
		return err
	}

	// Cruise attitude: +X at the Sun, +Y as close to the orbital velocity
	// as orthogonality allows.
	cruiseFrame := engine.NewJ2000EclipticFrame(engine.StarSelection(sun))
	attitude := engine.NewTwoVectorFrame(engine.BodySelection(probe),
		engine.RelativePosition(engine.BodySelection(probe), engine.StarSelection(sun)), 1,
		engine.RelativeVelocity(engine.StarSelection(sun), engine.BodySelection(probe)), 2)

	cruise, err := engine.NewTimelinePhase(u, probe, departureTDB, 1e10,
		cruiseFrame,
		&ephem.EllipticalOrbit{
			SemiMajorAxis:      astro.AUToKm(1.25),
			Eccentricity:       0.21,
			Inclination:        deg(2.1),
			PeriodDays:         510.6,
			MeanAnomalyAtEpoch: deg(180),
			Epoch:              departureTDB,
		},
		attitude, ephem.Identity())
	if err != nil {
		return err
	}

	tl := engine.NewTimeline()
	if err := tl.AppendPhase(parking); err != nil {
		return err
	}
	if err := tl.AppendPhase(cruise); err != nil {
		return err
	}
	probe.SetTimeline(tl)
	return nil
}

func deg(d float64) float64 {
	return d * math.Pi / 180
}
