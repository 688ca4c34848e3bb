package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/coulomb/internal/config"
	"github.com/san-kum/coulomb/internal/pairwise"
	"github.com/san-kum/coulomb/internal/viz"
)

var schemeInfo = map[string]string{
	"plain":         "hard truncation",
	"wolf":          "damped, energy shifted",
	"ewald":         "real-space ewald",
	"poisson":       "polynomial (n,m) family",
	"reactionfield": "dielectric continuum boundary",
	"qpotential":    "product kernel",
}

// schemeParams lists the tunable knobs per scheme, in display order.
var schemeParams = map[string][]string{
	"plain":         {"cutoff"},
	"wolf":          {"cutoff", "kappa"},
	"ewald":         {"cutoff", "alpha", "debye_length"},
	"poisson":       {"cutoff", "n", "m"},
	"reactionfield": {"cutoff", "eps_out", "eps_in"},
	"qpotential":    {"cutoff", "order"},
}

// paramSteps is the left/right nudge size per knob.
var paramSteps = map[string]float64{
	"cutoff":       1,
	"kappa":        0.02,
	"alpha":        0.01,
	"debye_length": 1,
	"n":            1,
	"m":            1,
	"eps_out":      2,
	"eps_in":       0.5,
	"order":        1,
}

var derivLabels = []string{"f0", "f1", "f2", "f3"}

type state int

const (
	stateMenu state = iota
	stateExplore
)

type model struct {
	state  state
	cursor int
	names  []string

	selected    string
	params      map[string]float64
	paramNames  []string
	paramCursor int
	order       int

	width  int
	height int
}

// NewExplorer builds the interactive kernel explorer.
func NewExplorer() *model {
	return &model{
		state: stateMenu,
		names: config.ListSchemes(),
		params: map[string]float64{
			"cutoff": 12, "kappa": 0.2, "alpha": 0.1, "debye_length": 0,
			"n": 4, "m": 3, "eps_out": 78.5, "eps_in": 1, "order": 3,
		},
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	default:
		return m.exploreKey(msg)
	}
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.names[m.cursor]
		m.paramNames = schemeParams[m.selected]
		m.paramCursor = 0
		m.order = 0
		m.state = stateExplore
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) exploreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "escape":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "left", "h":
		name := m.paramNames[m.paramCursor]
		m.params[name] -= paramSteps[name]
	case "right", "l":
		name := m.paramNames[m.paramCursor]
		m.params[name] += paramSteps[name]
	case "d", "tab":
		m.order = (m.order + 1) % len(derivLabels)
	}
	return m, nil
}

// scheme builds the currently configured scheme, or an error when the
// nudged parameters have left the valid domain.
func (m model) scheme() (pairwise.ShortRange, error) {
	return config.BuildScheme(config.SchemeConfig{
		Name:        m.selected,
		Cutoff:      m.params["cutoff"],
		Kappa:       m.params["kappa"],
		Alpha:       m.params["alpha"],
		DebyeLength: m.params["debye_length"],
		N:           int(m.params["n"]),
		M:           int(m.params["m"]),
		Order:       int(m.params["order"]),
		EpsOut:      m.params["eps_out"],
		EpsIn:       m.params["eps_in"],
		Shifted:     true,
	})
}

func (m model) View() string {
	if m.state == stateMenu {
		return m.viewMenu()
	}
	return m.viewExplore()
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(viz.Subtle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + viz.Title.Render("c o u l o m b") + "\n")
	b.WriteString(viz.Subtle.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.names {
		desc := schemeInfo[name]
		if i == m.cursor {
			b.WriteString("      " + viz.Title.Render("▸ ") + viz.White.Render(fmt.Sprintf("%-16s", name)) + viz.Label.Render(desc) + "\n")
		} else {
			b.WriteString("        " + viz.Label.Render(fmt.Sprintf("%-16s", name)) + viz.Subtle.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(viz.Label.Render("      ↑↓ select   enter explore   q quit") + "\n")

	return b.String()
}

func (m model) viewExplore() string {
	var b strings.Builder

	b.WriteString("\n   " + viz.Title.Render(m.selected) + "  " + viz.Label.Render(schemeInfo[m.selected]) + "\n")
	b.WriteString("   " + viz.Separator(40) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.3f", m.params[name])
		if i == m.paramCursor {
			b.WriteString("   " + viz.Title.Render("▸ ") + viz.White.Render(fmt.Sprintf("%-14s", name)) + viz.Value.Render(val) + "\n")
		} else {
			b.WriteString("     " + viz.Label.Render(fmt.Sprintf("%-14s", name)) + viz.Label.Render(val) + "\n")
		}
	}
	b.WriteString("\n")

	s, err := m.scheme()
	if err != nil {
		b.WriteString("   " + viz.Warn.Render(err.Error()) + "\n")
	} else {
		w := m.width - 14
		if w < 40 {
			w = 40
		}
		h := m.height - len(m.paramNames) - 12
		if h < 8 {
			h = 8
		}
		caption := fmt.Sprintf("%s over q ∈ [0,1]", derivLabels[m.order])
		b.WriteString(viz.Panel.Render(viz.PlotKernel(s, m.order, w, h, caption)) + "\n")

		if k := pairwise.ContinuityOrder(s); k >= 0 {
			b.WriteString("\n   " + viz.Label.Render(fmt.Sprintf("continuous through f%d at the cutoff", k)) + "\n")
		} else {
			b.WriteString("\n   " + viz.Label.Render("discontinuous at the cutoff") + "\n")
		}
	}

	b.WriteString("\n" + viz.Label.Render("   ↑↓ param  ←→ adjust  d derivative  esc back  q quit") + "\n")

	return b.String()
}

// RunExplorer starts the full-screen kernel explorer.
func RunExplorer() error {
	p := tea.NewProgram(NewExplorer(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
