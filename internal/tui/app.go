// Package tui provides the interactive Bubble Tea dashboard for rendita.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/config"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/components"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/theme"
)

const (
	tabOverview = iota
	tabSchedule
	tabCashflow
	tabScenario
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 150
	minContentHeight = 5
)

// App is the root Bubble Tea model. The projection is recomputed
// whenever the scenario form is applied; everything else is pure
// rendering of the computed series.
type App struct {
	scenario config.Scenario
	project  *engine.Project

	width     int
	height    int
	activeTab int
	showHelp  bool

	// Period tables scroll independently per tab.
	schedView    viewport.Model
	flowView     viewport.Model
	schedYearly  bool
	flowYearly   bool
	viewsSized   bool

	// Scenario editing (huh form)
	form     *huh.Form
	formVals scenarioForm
	editing  bool
	applyErr error
}

// NewApp creates the dashboard model for an already-validated project.
func NewApp(scenario config.Scenario, project *engine.Project) App {
	return App{
		scenario:  scenario,
		project:   project,
		schedView: viewport.New(0, 0),
		flowView:  viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resizeViewports()
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth()).WithHeight(a.contentHeight())
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The scenario form intercepts all other keys while open.
		if a.editing && a.form != nil {
			return a.updateForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "y":
			switch a.activeTab {
			case tabSchedule:
				a.schedYearly = !a.schedYearly
				a.schedView.SetContent(a.scheduleContent())
				a.schedView.GotoTop()
			case tabCashflow:
				a.flowYearly = !a.flowYearly
				a.flowView.SetContent(a.cashflowContent())
				a.flowView.GotoTop()
			}
			return a, nil
		case "enter":
			if a.activeTab == tabScenario {
				return a.startEdit()
			}
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		// Remaining keys scroll the active period table.
		switch a.activeTab {
		case tabSchedule:
			var cmd tea.Cmd
			a.schedView, cmd = a.schedView.Update(msg)
			return a, cmd
		case tabCashflow:
			var cmd tea.Cmd
			a.flowView, cmd = a.flowView.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	if a.editing && a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) startEdit() (tea.Model, tea.Cmd) {
	a.formVals = scenarioFormFrom(a.scenario)
	a.form = newScenarioForm(&a.formVals)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.contentWidth()).WithHeight(a.contentHeight())
	}
	a.editing = true
	a.applyErr = nil
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		scenario, project, err := a.formVals.apply(a.scenario)
		if err != nil {
			// Reopen the form so the values can be corrected.
			a.applyErr = err
			a.form = newScenarioForm(&a.formVals)
			if a.width > 0 {
				a.form = a.form.WithWidth(a.contentWidth()).WithHeight(a.contentHeight())
			}
			return a, a.form.Init()
		}
		a.scenario = scenario
		a.project = project
		a.applyErr = nil
		a.editing = false
		a.form = nil
		a.refreshViewports()
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.editing = false
		a.form = nil
		a.applyErr = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) contentHeight() int {
	// Tab bar and status bar are one line each.
	ch := a.height - 2
	if ch < minContentHeight {
		ch = minContentHeight
	}
	return ch
}

func (a *App) resizeViewports() {
	a.schedView.Width = a.contentWidth()
	a.schedView.Height = a.contentHeight() - 2 // table header + hint line
	a.flowView.Width = a.contentWidth()
	a.flowView.Height = a.contentHeight() - 2
	if !a.viewsSized {
		a.viewsSized = true
		a.refreshViewports()
	}
}

func (a *App) refreshViewports() {
	a.schedView.SetContent(a.scheduleContent())
	a.flowView.SetContent(a.cashflowContent())
	a.schedView.GotoTop()
	a.flowView.GotoTop()
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  rendita needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	t := theme.Active
	w := a.width
	h := a.height
	cw := a.contentWidth()
	contentH := a.contentHeight()

	header := components.RenderTabBar(a.activeTab, w)

	s := a.project.Summary()
	name := a.scenario.Name
	if name == "" {
		name = "scenario"
	}
	statusBar := components.RenderStatusBar(w, name, cli.FormatMoney(s.NPV), s.NPV >= 0)

	var content string
	switch {
	case a.showHelp:
		content = a.viewHelp()
	case a.editing && a.form != nil:
		content = a.form.View()
	default:
		switch a.activeTab {
		case tabOverview:
			content = a.renderOverviewTab(cw, contentH)
		case tabSchedule:
			content = a.renderScheduleTab(cw)
		case tabCashflow:
			content = a.renderCashflowTab(cw)
		case tabScenario:
			content = a.renderScenarioTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o s c e", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Scroll period tables"},
		{"y", "Toggle yearly rollup"},
		{"Enter", "Edit scenario (Scenario tab)"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.contentWidth(), a.contentHeight(), lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
