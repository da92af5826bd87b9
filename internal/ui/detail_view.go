package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-frames/astro"
	"github.com/litescript/ls-frames/engine"
	"github.com/litescript/ls-frames/internal/sim"
)

// DetailViewModel renders the frame and motion state of one body.
type DetailViewModel struct {
	universe *engine.Universe
	snapshot sim.Snapshot

	body   *engine.Body
	width  int
	height int
}

// NewDetailViewModel creates the body detail view.
func NewDetailViewModel(universe *engine.Universe) DetailViewModel {
	return DetailViewModel{universe: universe}
}

// SetSize updates the view dimensions.
func (m DetailViewModel) SetSize(width, height int) DetailViewModel {
	m.width = width
	m.height = height
	return m
}

// SetBody switches the view to a specific body.
func (m DetailViewModel) SetBody(body *engine.Body) DetailViewModel {
	if body != nil {
		m.body = body
	}
	return m
}

// UpdateData refreshes the simulation time and adopts a body on first use.
func (m DetailViewModel) UpdateData(snap sim.Snapshot, fallback *engine.Body) DetailViewModel {
	m.snapshot = snap
	if m.body == nil {
		m.body = fallback
	}
	return m
}

// Update implements the sub-model protocol. Left and right cycle through
// the system's bodies.
func (m DetailViewModel) Update(msg tea.Msg) (DetailViewModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || m.body == nil {
		return m, nil
	}

	switch key.String() {
	case "left", "h":
		m.body = m.neighbor(-1)
	case "right", "l":
		m.body = m.neighbor(1)
	}
	return m, nil
}

func (m DetailViewModel) neighbor(step int) *engine.Body {
	stars := m.universe.Stars()
	if len(stars) == 0 {
		return m.body
	}
	bodies := m.universe.SolarSystem(stars[0]).Bodies()
	for i, b := range bodies {
		if b == m.body {
			return bodies[(i+step+len(bodies))%len(bodies)]
		}
	}
	return m.body
}

// View implements the sub-model protocol.
func (m DetailViewModel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D946EF")).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)

	if m.body == nil {
		return "\n  " + labelStyle.Render("No body selected.")
	}

	tdb := m.snapshot.TDB
	body := m.body

	field := func(label, value string) string {
		return fmt.Sprintf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-16s", label)), valueStyle.Render(value))
	}

	var b strings.Builder
	b.WriteString("\n  " + titleStyle.Render(body.Name()) + "\n\n")

	b.WriteString("  " + sectionStyle.Render("State") + "\n")
	p := body.AstrocentricPosition(tdb)
	v := body.Velocity(tdb)
	b.WriteString(field("Position", fmt.Sprintf("(%.5f, %.5f, %.5f) AU",
		astro.KmToAU(p.X()), astro.KmToAU(p.Y()), astro.KmToAU(p.Z()))))
	b.WriteString(field("Distance", fmt.Sprintf("%.5f AU", astro.KmToAU(p.Len()))))
	b.WriteString(field("Speed", fmt.Sprintf("%.3f km/s", v.Len()/astro.SecondsPerDay)))
	b.WriteString(field("Radius", fmt.Sprintf("%.0f km", body.Radius())))
	if star := body.SystemStar(tdb); star != nil {
		b.WriteString(field("System", star.Name()))
	}

	b.WriteString("\n  " + sectionStyle.Render("Rotation") + "\n")
	w := body.AngularVelocity(tdb)
	b.WriteString(field("Angular rate", fmt.Sprintf("%.4f deg/day", w.Len()*180/math.Pi)))
	if w.Len() > 0 {
		axis := w.Normalize()
		b.WriteString(field("Spin axis", fmt.Sprintf("(%.3f, %.3f, %.3f)", axis.X(), axis.Y(), axis.Z())))
	}
	if rm := body.RotationModel(tdb); rm != nil && rm.IsPeriodic() {
		b.WriteString(field("Spin period", fmt.Sprintf("%.4f days", rm.Period())))
	}

	b.WriteString("\n  " + sectionStyle.Render("Frames") + "\n")
	if f := body.OrbitFrame(tdb); f != nil {
		b.WriteString(field("Orbit frame", describeFrame(f)))
	}
	if f := body.BodyFrame(tdb); f != nil {
		b.WriteString(field("Body frame", describeFrame(f)))
	}

	if tl := body.Timeline(); tl != nil && tl.PhaseCount() > 0 {
		b.WriteString("\n  " + sectionStyle.Render("Timeline") + "\n")
		b.WriteString(field("Span", fmt.Sprintf("JD %.2f – %.2f", tl.StartTime(), tl.EndTime())))
		b.WriteString(field("Phases", fmt.Sprintf("%d", tl.PhaseCount())))
		if phase := tl.FindPhase(tdb); phase != nil {
			b.WriteString(field("Active phase", fmt.Sprintf("JD %.2f – %.2f", phase.StartTime(), phase.EndTime())))
		} else {
			b.WriteString(field("Active phase", "none (outside timeline)"))
		}
	}

	return b.String()
}

// describeFrame renders a frame's kind, center and inertia in one line.
func describeFrame(f engine.ReferenceFrame) string {
	kind := "custom"
	switch f.(type) {
	case *engine.J2000EclipticFrame:
		kind = "J2000 ecliptic"
	case *engine.J2000EquatorFrame:
		kind = "J2000 equator"
	case *engine.BodyFixedFrame:
		kind = "body-fixed"
	case *engine.BodyMeanEquatorFrame:
		kind = "mean equator"
	case *engine.TwoVectorFrame:
		kind = "two-vector"
	}

	inertia := "rotating"
	if f.IsInertial() {
		inertia = "inertial"
	}

	center := f.Center().Name()
	if center == "" {
		center = "origin"
	}
	return fmt.Sprintf("%s about %s (%s)", kind, center, inertia)
}
