package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/config"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	scenario := config.DefaultScenario()
	p, err := engine.New(scenario.Params())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	return NewApp(scenario, p)
}

func sized(t *testing.T, a App) App {
	t.Helper()
	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return app
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestApp_ViewBeforeSize(t *testing.T) {
	a := newTestApp(t)
	if v := a.View(); v != "" {
		t.Errorf("expected empty view before first WindowSizeMsg, got %d bytes", len(v))
	}
}

func TestApp_TabNavigation(t *testing.T) {
	a := sized(t, newTestApp(t))

	m, _ := a.Update(keyMsg("s"))
	a = m.(App)
	if a.activeTab != tabSchedule {
		t.Errorf("after 's': activeTab = %d, want %d", a.activeTab, tabSchedule)
	}

	m, _ = a.Update(keyMsg("c"))
	a = m.(App)
	if a.activeTab != tabCashflow {
		t.Errorf("after 'c': activeTab = %d, want %d", a.activeTab, tabCashflow)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = m.(App)
	if a.activeTab != tabScenario {
		t.Errorf("after right arrow: activeTab = %d, want %d", a.activeTab, tabScenario)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	a = m.(App)
	if a.activeTab != tabOverview {
		t.Errorf("right arrow should wrap to overview, got %d", a.activeTab)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	a := sized(t, newTestApp(t))

	_, cmd := a.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command for 'q'")
	}
	if msg := cmd(); msg != (tea.QuitMsg{}) {
		t.Errorf("expected tea.QuitMsg, got %T", msg)
	}
}

func TestApp_ViewShowsHeadlineMetrics(t *testing.T) {
	a := sized(t, newTestApp(t))

	view := a.View()
	if !strings.Contains(view, "Net present value") {
		t.Error("overview should show the NPV card")
	}
	if !strings.Contains(view, "Initial equity") {
		t.Error("overview should show the initial equity card")
	}
}

func TestApp_YearlyToggleRebuildsSchedule(t *testing.T) {
	a := sized(t, newTestApp(t))

	m, _ := a.Update(keyMsg("s"))
	a = m.(App)
	m, _ = a.Update(keyMsg("y"))
	a = m.(App)

	if !a.schedYearly {
		t.Fatal("'y' on schedule tab should enable yearly rollup")
	}
	// 20-year loan: yearly rollup has 20 rows.
	rows := strings.Count(a.scheduleContent(), "\n") + 1
	if rows != 20 {
		t.Errorf("yearly schedule rows = %d, want 20", rows)
	}
}

func TestApp_ScenarioFormOpensOnEnter(t *testing.T) {
	a := sized(t, newTestApp(t))

	m, _ := a.Update(keyMsg("e"))
	a = m.(App)
	if a.activeTab != tabScenario {
		t.Fatalf("after 'e': activeTab = %d, want %d", a.activeTab, tabScenario)
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	if !a.editing || a.form == nil {
		t.Error("enter on scenario tab should open the edit form")
	}
}

func TestScenarioForm_ApplyRecomputes(t *testing.T) {
	scenario := config.DefaultScenario()
	vals := scenarioFormFrom(scenario)
	vals.rent = "1200"

	updated, p, err := vals.apply(scenario)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.Property.MonthlyRent != 1200 {
		t.Errorf("rent = %g, want 1200", updated.Property.MonthlyRent)
	}
	if p.Summary().TotalRent != 1200*240 {
		t.Errorf("total rent = %g, want %g", p.Summary().TotalRent, 1200.0*240)
	}
}

func TestScenarioForm_ApplyRejectsBadParams(t *testing.T) {
	scenario := config.DefaultScenario()
	vals := scenarioFormFrom(scenario)
	vals.share = "150"

	got, _, err := vals.apply(scenario)
	if err == nil {
		t.Fatal("expected error for loan share above 100%")
	}
	if got.Loan.Share != scenario.Loan.Share {
		t.Error("failed apply must leave the scenario unchanged")
	}
}
