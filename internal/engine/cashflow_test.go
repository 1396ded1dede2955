package engine

import (
	"errors"
	"testing"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

func TestCashFlows_LengthAndOperating(t *testing.T) {
	p := mustProject(t, baseParams())
	net, months := p.CashFlows()

	if len(months) != 240 || len(net) != 240 {
		t.Fatalf("expected 240 months, got %d/%d", len(months), len(net))
	}

	for _, m := range months {
		assertClose(t, m.Operating, m.Rent-m.Payment, 1e-12, "operating cash flow")
		assertClose(t, m.Net, m.Operating+m.Tax, 1e-12, "net cash flow")
	}
}

func TestCashFlows_TaxOnlyAtYearEnd(t *testing.T) {
	p := mustProject(t, baseParams())
	_, months := p.CashFlows()

	for _, m := range months {
		if m.Month%12 != 0 && m.Tax != 0 {
			t.Fatalf("month %d is not a year end but has tax %g", m.Month, m.Tax)
		}
		if m.Tax > 0 {
			t.Fatalf("month %d has positive tax adjustment %g", m.Month, m.Tax)
		}
	}
}

func TestCashFlows_TaxOnRentMinusInterest(t *testing.T) {
	p := mustProject(t, baseParams())
	_, months := p.CashFlows()

	// Year 1: taxable profit is the year's rent minus the year's
	// interest; principal repayment is not deductible.
	rent, interest := 0.0, 0.0
	for _, m := range months[:12] {
		rent += m.Rent
		interest += m.Interest
	}
	wantTax := -(rent - interest) * 0.21
	assertClose(t, months[11].Tax, wantTax, 1e-9, "year-1 tax settlement")
}

func TestCashFlows_NoTaxOnNegativeProfit(t *testing.T) {
	// Tiny rent against a large expensive loan: rent never covers the
	// interest in the early years, so no tax is due there.
	params := baseParams()
	params.MonthlyRent = 100
	params.AnnualRate = 0.05
	p := mustProject(t, params)

	_, months := p.CashFlows()
	if months[11].Tax != 0 {
		t.Errorf("year-1 tax = %g, want 0 for negative taxable profit", months[11].Tax)
	}
}

func TestCashFlows_ProjectOutlivesLoan(t *testing.T) {
	params := baseParams()
	params.ProjectTermYears = 25
	p := mustProject(t, params)

	_, months := p.CashFlows()
	if len(months) != 300 {
		t.Fatalf("expected 300 months, got %d", len(months))
	}

	for _, m := range months[240:] {
		if m.Payment != 0 {
			t.Fatalf("month %d is past the loan term but has payment %g", m.Month, m.Payment)
		}
		assertClose(t, m.Operating, 900, 1e-12, "post-loan operating cash flow")
	}

	// With no interest deduction left, each of the extra years is taxed
	// on the full annual rent: 10800 × 21% = 2268, posted in December.
	for year := 21; year <= 25; year++ {
		dec := months[year*12-1]
		assertClose(t, dec.Tax, -2268, 1e-9, "post-loan December tax")
	}
}

func TestCashFlows_Idempotent(t *testing.T) {
	p := mustProject(t, baseParams())

	net1, _ := p.CashFlows()
	net2, _ := p.CashFlows()
	for i := range net1 {
		if net1[i] != net2[i] {
			t.Fatalf("month %d differs between calls: %v vs %v", i+1, net1[i], net2[i])
		}
	}
}

func TestNew_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ProjectParams)
	}{
		{"zero price", func(p *model.ProjectParams) { p.Price = 0 }},
		{"negative rent", func(p *model.ProjectParams) { p.MonthlyRent = -1 }},
		{"negative rate", func(p *model.ProjectParams) { p.AnnualRate = -3 }},
		{"loan share above 100%", func(p *model.ProjectParams) { p.LoanShare = 120 }},
		{"zero loan term", func(p *model.ProjectParams) { p.LoanTermYears = 0 }},
		{"negative payments per year", func(p *model.ProjectParams) { p.PaymentsPerYear = -1 }},
		{"project shorter than loan", func(p *model.ProjectParams) { p.ProjectTermYears = 10 }},
		{"unknown mode", func(p *model.ProjectParams) { p.Mode = "bullet" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := baseParams()
			tt.mutate(&params)
			if _, err := New(params); err == nil {
				t.Fatal("expected error, got nil")
			} else if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	params := baseParams()
	params.Mode = ""
	params.PaymentsPerYear = 0
	params.ProjectTermYears = 0

	p := mustProject(t, params)
	if p.Mode() != model.FixedInstallment {
		t.Errorf("default mode = %q, want fixed-installment", p.Mode())
	}
	if got := len(p.Schedule()); got != 240 {
		t.Errorf("default payments per year gave %d periods, want 240", got)
	}
	if _, months := p.CashFlows(); len(months) != 240 {
		t.Errorf("default project term gave %d months, want 240", len(months))
	}
}
