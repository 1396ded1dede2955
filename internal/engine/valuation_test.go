package engine

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

func TestNPV_ZeroDiscountIsPlainSum(t *testing.T) {
	params := baseParams()
	params.DiscountRate = 0
	p := mustProject(t, params)

	net, _ := p.CashFlows()
	sum := -p.InitialEquity()
	for _, v := range net {
		sum += v
	}
	assertClose(t, p.NPV(), sum, 1e-9, "undiscounted NPV")
}

func TestNPV_DiscountingReducesPositiveFlows(t *testing.T) {
	// Untaxed scenario with rent well above the installment: every
	// monthly net flow is positive, so discounting must pull the
	// valuation down.
	flat := baseParams()
	flat.MonthlyRent = 1500
	flat.TaxRate = 0
	flat.DiscountRate = 0
	discounted := flat
	discounted.DiscountRate = 0.05

	p0 := mustProject(t, flat)
	p5 := mustProject(t, discounted)

	if p5.NPV() >= p0.NPV() {
		t.Errorf("NPV at 5%% (%.2f) should be below undiscounted NPV (%.2f)", p5.NPV(), p0.NPV())
	}
}

func TestNPV_PercentAndFractionInputsAgree(t *testing.T) {
	a := baseParams()
	a.DiscountRate = 3
	b := baseParams()
	b.DiscountRate = 0.03

	if mustProject(t, a).NPV() != mustProject(t, b).NPV() {
		t.Error("discount rate 3 and 0.03 should produce identical NPV")
	}
}

func TestSummary_Aggregates(t *testing.T) {
	p := mustProject(t, baseParams())
	s := p.Summary()

	assertClose(t, s.InitialEquity, 40000, 1e-9, "initial equity")
	assertClose(t, s.TotalRent, 900*240, 1e-6, "total rent")
	assertClose(t, s.TotalInterest, s.TotalPayments-160000, 1e-4, "interest = payments - principal")
	if s.TotalTaxes < 0 {
		t.Errorf("total taxes = %g, want reported as a positive amount", s.TotalTaxes)
	}
	if s.LoanTermMonths != 240 || s.ProjectTermMonths != 240 {
		t.Errorf("terms = %d/%d months, want 240/240", s.LoanTermMonths, s.ProjectTermMonths)
	}
	assertClose(t, s.NPV, p.NPV(), 0, "summary NPV matches NPV()")
}

func TestTable_MonthZeroCarriesEquity(t *testing.T) {
	p := mustProject(t, baseParams())
	rows := p.Table()

	if len(rows) != 241 {
		t.Fatalf("expected 241 rows, got %d", len(rows))
	}
	if rows[0].Month != 0 {
		t.Fatalf("first row month = %d, want 0", rows[0].Month)
	}
	assertClose(t, rows[0].Net, -40000, 1e-9, "month-0 net")
	assertClose(t, rows[0].Remaining, 160000, 1e-9, "month-0 opening balance")
}

func TestTabulate_UnregisteredFormat(t *testing.T) {
	p := mustProject(t, baseParams())

	if p.CanTabulate("parquet") {
		t.Fatal("no parquet backend should be registered in this package")
	}

	var sb strings.Builder
	err := p.Tabulate("parquet", &sb)
	if !errors.Is(err, ErrUnavailableFeature) {
		t.Fatalf("expected ErrUnavailableFeature, got %v", err)
	}

	// The failed export must not poison the instance.
	if got := p.NPV(); got != p.NPV() {
		t.Error("NPV changed after a failed Tabulate")
	}
	if _, months := p.CashFlows(); len(months) != 240 {
		t.Error("CashFlows unusable after a failed Tabulate")
	}
}

func TestTabulate_RegisteredBackend(t *testing.T) {
	RegisterTableWriter("test-count", func(rows []model.TableRow, w io.Writer) error {
		_, err := fmt.Fprintf(w, "%d", len(rows))
		return err
	})

	p := mustProject(t, baseParams())
	if !p.CanTabulate("test-count") {
		t.Fatal("backend registered but CanTabulate is false")
	}

	var sb strings.Builder
	if err := p.Tabulate("test-count", &sb); err != nil {
		t.Fatalf("Tabulate: %v", err)
	}
	if sb.String() != "241" {
		t.Errorf("backend saw %s rows, want 241", sb.String())
	}
}
