// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-frames/engine"
	"github.com/litescript/ls-frames/internal/sim"
	"github.com/litescript/ls-frames/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewSystem ViewMode = iota
	ViewDetail
)

// TickMsg drives the simulation clock and periodic redraws.
type TickMsg time.Time

const tickInterval = 100 * time.Millisecond

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	universe *engine.Universe
	clock    *sim.Clock

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	lastTick time.Time

	// Sub-models
	system SystemViewModel
	detail DetailViewModel

	// Clock snapshot, refreshed on every tick
	snapshot sim.Snapshot
}

// New creates the root UI model for a universe. The viewer shows the first
// solar system created in the universe.
func New(universe *engine.Universe, clock *sim.Clock) Model {
	m := Model{
		universe: universe,
		clock:    clock,
		viewMode: ViewSystem,
		system:   NewSystemViewModel(universe),
		detail:   NewDetailViewModel(universe),
		snapshot: clock.Snapshot(),
		lastTick: time.Now(),
	}
	m.system = m.system.UpdateData(m.snapshot)
	m.detail = m.detail.UpdateData(m.snapshot, m.system.SelectedBody())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "s":
			m.viewMode = ViewSystem
		case "2", "d", "enter":
			m.detail = m.detail.SetBody(m.system.SelectedBody())
			m.viewMode = ViewDetail
		case "tab":
			if m.viewMode == ViewSystem {
				m.detail = m.detail.SetBody(m.system.SelectedBody())
				m.viewMode = ViewDetail
			} else {
				m.viewMode = ViewSystem
			}

		case " ":
			m.clock.TogglePause()
		case "+", "=":
			m.clock.ScaleBy(10)
		case "-", "_":
			m.clock.ScaleBy(0.1)
		case ",":
			m.clock.Step(-1)
		case ".":
			m.clock.Step(1)
		case "<":
			m.clock.Step(-30)
		case ">":
			m.clock.Step(30)

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 7 // header + footer
		m.system = m.system.SetSize(msg.Width, contentHeight)
		m.detail = m.detail.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		now := time.Time(msg)
		m.clock.Advance(now.Sub(m.lastTick))
		m.lastTick = now

		m.snapshot = m.clock.Snapshot()
		m.system = m.system.UpdateData(m.snapshot)
		m.detail = m.detail.UpdateData(m.snapshot, m.system.SelectedBody())

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewSystem:
		m.system, cmd = m.system.Update(msg)
	case ViewDetail:
		m.detail, cmd = m.detail.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewSystem:
		content = m.system.View()
	case ViewDetail:
		content = m.detail.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(title.Render("ls-frames"))
	b.WriteString(muted.Render(fmt.Sprintf("  reference frame explorer · v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderClockLine())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderClockLine() string {
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color("#E8A627"))

	state := accent.Render(fmt.Sprintf("%.0fx", m.snapshot.Scale))
	if m.snapshot.Paused {
		state = warn.Render("paused")
	}

	return fmt.Sprintf("  %s  %s  %s",
		accent.Render(fmt.Sprintf("JD %.5f", m.snapshot.TDB)),
		muted.Render(m.snapshot.Time.UTC().Format("2006-01-02 15:04:05 UTC")),
		state)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] System", "[2] Body"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var help string
	switch m.viewMode {
	case ViewDetail:
		help = "←/→: body | space: pause | +/-: speed | ,/.: ±1d | </>: ±30d"
	default:
		help = "↑↓: select | enter: detail | space: pause | +/-: speed | ,/.: ±1d"
	}
	return "  " + dimStyle.Render(help)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
