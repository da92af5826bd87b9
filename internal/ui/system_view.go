package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-frames/astro"
	"github.com/litescript/ls-frames/engine"
	"github.com/litescript/ls-frames/internal/sim"
)

// SystemViewModel renders the bodies of the first solar system as a table
// of star-relative states at the current simulation time.
type SystemViewModel struct {
	universe *engine.Universe
	snapshot sim.Snapshot

	bodies   []*engine.Body
	selected int
	width    int
	height   int
}

// NewSystemViewModel creates the system table view.
func NewSystemViewModel(universe *engine.Universe) SystemViewModel {
	return SystemViewModel{universe: universe}
}

// SetSize updates the view dimensions.
func (m SystemViewModel) SetSize(width, height int) SystemViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData refreshes the body list and simulation time.
func (m SystemViewModel) UpdateData(snap sim.Snapshot) SystemViewModel {
	m.snapshot = snap
	m.bodies = m.systemBodies()
	if m.selected >= len(m.bodies) {
		m.selected = 0
	}
	return m
}

// SelectedBody returns the currently highlighted body, nil when the system
// is empty.
func (m SystemViewModel) SelectedBody() *engine.Body {
	if m.selected < 0 || m.selected >= len(m.bodies) {
		return nil
	}
	return m.bodies[m.selected]
}

func (m SystemViewModel) systemBodies() []*engine.Body {
	stars := m.universe.Stars()
	if len(stars) == 0 {
		return nil
	}
	return m.universe.SolarSystem(stars[0]).Bodies()
}

// Update implements the sub-model protocol.
func (m SystemViewModel) Update(msg tea.Msg) (SystemViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.bodies)-1 {
				m.selected++
			}
		}
	}
	return m, nil
}

// View implements the sub-model protocol.
func (m SystemViewModel) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#D946EF")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	if len(m.bodies) == 0 {
		return "\n  " + dimStyle.Render("No bodies in the universe.")
	}

	var b strings.Builder
	b.WriteString("\n")

	star := m.universe.Stars()[0]
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("System: %s", star.Name())) + "\n\n")

	header := fmt.Sprintf("  %-12s %12s %12s %12s %12s %10s", "BODY", "X (AU)", "Y (AU)", "Z (AU)", "R (AU)", "V (km/s)")
	b.WriteString(headerStyle.Render(header) + "\n")
	b.WriteString(dimStyle.Render("  "+strings.Repeat("─", len(header)-2)) + "\n")

	tdb := m.snapshot.TDB
	for i, body := range m.bodies {
		p := body.AstrocentricPosition(tdb)
		v := body.Velocity(tdb).Len() / astro.SecondsPerDay

		line := fmt.Sprintf("  %-12s %12.5f %12.5f %12.5f %12.5f %10.3f",
			body.Name(),
			astro.KmToAU(p.X()), astro.KmToAU(p.Y()), astro.KmToAU(p.Z()),
			astro.KmToAU(p.Len()), v)

		if i == m.selected {
			b.WriteString(selectedStyle.Render("▶"+line[1:]) + "\n")
		} else {
			b.WriteString(rowStyle.Render(line) + "\n")
		}
	}

	return b.String()
}
