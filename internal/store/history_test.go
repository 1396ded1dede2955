package store

import (
	"path/filepath"
	"testing"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

func openTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = h.Close() })
	return h
}

func testRun(scenario string, npv float64) Run {
	return Run{
		Scenario: scenario,
		Params: model.ProjectParams{
			Price:            200000,
			MonthlyRent:      900,
			LoanShare:        0.8,
			AnnualRate:       0.03,
			LoanTermYears:    20,
			Mode:             model.FixedInstallment,
			PaymentsPerYear:  12,
			TaxRate:          0.21,
			ProjectTermYears: 25,
			DiscountRate:     0.03,
		},
		Summary: model.Summary{
			NPV:           npv,
			InitialEquity: 40000,
			TotalPayments: 212959,
			TotalInterest: 52959,
			TotalTaxes:    30000,
		},
	}
}

func TestHistory_SaveAndList(t *testing.T) {
	h := openTestHistory(t)

	if _, err := h.SaveRun(testRun("first", -10000)); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if _, err := h.SaveRun(testRun("second", -9000)); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	count, err := h.RunCount()
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("RunCount = %d, want 2", count)
	}

	runs, err := h.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}

	// Newest first.
	if runs[0].Scenario != "second" || runs[1].Scenario != "first" {
		t.Errorf("unexpected order: %q, %q", runs[0].Scenario, runs[1].Scenario)
	}

	got := runs[1]
	if got.Params.Mode != model.FixedInstallment {
		t.Errorf("mode round trip = %q", got.Params.Mode)
	}
	if got.Params.ProjectTermYears != 25 || got.Summary.NPV != -10000 {
		t.Errorf("run round trip mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created_at not recorded")
	}
}

func TestHistory_RecentRunsLimit(t *testing.T) {
	h := openTestHistory(t)

	for i := 0; i < 5; i++ {
		if _, err := h.SaveRun(testRun("bulk", float64(-i))); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}

	runs, err := h.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("got %d runs, want 3", len(runs))
	}
}
