// Command ls-frames is a terminal explorer for an astronomical reference
// frame engine: it animates a built-in solar system through its frame
// hierarchy and timelines.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/term"

	"github.com/litescript/ls-frames/astro"
	"github.com/litescript/ls-frames/engine"
	"github.com/litescript/ls-frames/internal/catalog"
	"github.com/litescript/ls-frames/internal/logging"
	"github.com/litescript/ls-frames/internal/sim"
	"github.com/litescript/ls-frames/internal/ui"
)

func main() {
	jd := flag.Float64("jd", 0, "Start time as a TDB Julian date (default: now)")
	date := flag.String("date", "", "Start time as a date (2006-01-02 or RFC 3339)")
	scale := flag.Float64("scale", 86400, "Time scale in simulated seconds per real second")
	summaryMode := flag.Bool("summary", false, "Print a text summary instead of the TUI")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	startTDB, err := resolveStartTime(*jd, *date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	universe := engine.NewUniverse()
	star, err := catalog.BuildSolSystem(universe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("catalog loaded: %d bodies around %s",
		len(universe.SolarSystem(star).Bodies()), star.Name())

	clock := sim.NewClock(sim.Config{StartTDB: startTDB, Scale: *scale})

	// Headless when asked for, or when stdout is not a terminal.
	if *summaryMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		writeSummary(os.Stdout, universe, star, clock.TDB())
		return
	}

	p := tea.NewProgram(ui.New(universe, clock), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveStartTime picks the simulation start: an explicit Julian date wins,
// then a civil date, then the current time.
func resolveStartTime(jd float64, date string) (float64, error) {
	if jd != 0 && date != "" {
		return 0, fmt.Errorf("use either -jd or -date, not both")
	}
	if jd != 0 {
		return jd, nil
	}
	if date == "" {
		return astro.TimeToJD(time.Now()), nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return astro.TimeToJD(t), nil
		}
	}
	return 0, fmt.Errorf("unparseable date %q", date)
}

// writeSummary prints the star-relative state of every body at one instant.
func writeSummary(w io.Writer, u *engine.Universe, star *engine.Star, tdb float64) {
	fmt.Fprintf(w, "System %s at JD %.5f (%s)\n\n",
		star.Name(), tdb, astro.JDToTime(tdb).Format("2006-01-02 15:04:05 UTC"))

	fmt.Fprintf(w, "%-10s %12s %12s %12s %12s %10s %12s  %s\n",
		"BODY", "X (AU)", "Y (AU)", "Z (AU)", "R (AU)", "V (km/s)", "W (deg/d)", "ATTITUDE")

	for _, body := range u.SolarSystem(star).Bodies() {
		p := body.AstrocentricPosition(tdb)
		v := body.Velocity(tdb).Len() / astro.SecondsPerDay
		omega := body.AngularVelocity(tdb).Len() * 180 / math.Pi

		fmt.Fprintf(w, "%-10s %12.5f %12.5f %12.5f %12.5f %10.3f %12.4f  %s\n",
			body.Name(),
			astro.KmToAU(p.X()), astro.KmToAU(p.Y()), astro.KmToAU(p.Z()),
			astro.KmToAU(p.Len()), v, omega, axisAngle(body.EclipticToBodyFixed(tdb)))
	}
}

// axisAngle renders a unit quaternion as "(x, y, z) @ deg".
func axisAngle(q mgl64.Quat) string {
	wc := q.W
	if wc > 1 {
		wc = 1
	} else if wc < -1 {
		wc = -1
	}
	angle := 2 * math.Acos(math.Abs(wc)) * 180 / math.Pi
	if q.V.Len() < 1e-12 {
		return fmt.Sprintf("identity @ %.1f°", angle)
	}
	axis := q.V.Normalize()
	if wc < 0 {
		axis = axis.Mul(-1)
	}
	return fmt.Sprintf("(%.2f, %.2f, %.2f) @ %.1f°", axis.X(), axis.Y(), axis.Z(), angle)
}
