package engine

import (
	"math"
	"testing"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

func baseParams() model.ProjectParams {
	return model.ProjectParams{
		Price:         200000,
		MonthlyRent:   900,
		LoanShare:     0.8,
		AnnualRate:    0.03,
		LoanTermYears: 20,
		TaxRate:       0.21,
		Mode:          model.FixedInstallment,
	}
}

func mustProject(t *testing.T, params model.ProjectParams) *Project {
	t.Helper()
	p, err := New(params)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

func assertClose(t *testing.T, got, want, tol float64, what string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f (tolerance %g)", what, got, want, tol)
	}
}

func TestSchedule_ReferenceScenario(t *testing.T) {
	p := mustProject(t, baseParams())
	schedule := p.Schedule()

	if len(schedule) != 240 {
		t.Fatalf("expected 240 periods, got %d", len(schedule))
	}

	// First payment must match the annuity formula for 160000 @ 0.25%/period.
	want := annuityPayment(160000, 0.03/12, 240)
	assertClose(t, schedule[0].Payment, want, 1e-9, "first payment")
	assertClose(t, schedule[0].Payment, 887.33, 0.5, "first payment vs reference")

	if last := schedule[len(schedule)-1]; last.Remaining != 0 {
		t.Errorf("final remaining balance = %g, want exactly 0", last.Remaining)
	}
}

func TestSchedule_FixedInstallment_PaymentsConstant(t *testing.T) {
	p := mustProject(t, baseParams())
	schedule := p.Schedule()

	first := schedule[0].Payment
	for _, sp := range schedule[:len(schedule)-1] {
		assertClose(t, sp.Payment, first, 1e-6, "installment")
	}
	// Last payment only absorbs rounding drift.
	assertClose(t, schedule[len(schedule)-1].Payment, first, 1e-4, "final installment")
}

func TestSchedule_FixedPrincipal(t *testing.T) {
	params := baseParams()
	params.Mode = model.FixedPrincipal
	p := mustProject(t, params)
	schedule := p.Schedule()

	share := 160000.0 / 240
	for _, sp := range schedule[:len(schedule)-1] {
		assertClose(t, sp.Principal, share, 1e-6, "principal share")
	}

	// Payments decrease as the balance shrinks.
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Payment >= schedule[i-1].Payment {
			t.Fatalf("payment did not decrease at period %d: %g -> %g",
				schedule[i].Period, schedule[i-1].Payment, schedule[i].Payment)
		}
	}

	if last := schedule[len(schedule)-1]; last.Remaining != 0 {
		t.Errorf("final remaining balance = %g, want exactly 0", last.Remaining)
	}
}

func TestSchedule_PrincipalSumsToFinancedAmount(t *testing.T) {
	for _, mode := range []model.Mode{model.FixedInstallment, model.FixedPrincipal} {
		t.Run(string(mode), func(t *testing.T) {
			params := baseParams()
			params.Mode = mode
			p := mustProject(t, params)

			sum := 0.0
			for _, sp := range p.Schedule() {
				sum += sp.Principal
			}
			assertClose(t, sum, 160000, 160000*1e-6, "sum of principal components")
		})
	}
}

func TestSchedule_BalanceNonNegativeAndDecreasing(t *testing.T) {
	p := mustProject(t, baseParams())

	prev := p.FinancedAmount()
	for _, sp := range p.Schedule() {
		if sp.Remaining < 0 {
			t.Fatalf("negative balance %g at period %d", sp.Remaining, sp.Period)
		}
		if sp.Remaining >= prev {
			t.Fatalf("balance did not decrease at period %d: %g -> %g", sp.Period, prev, sp.Remaining)
		}
		prev = sp.Remaining
	}
}

func TestSchedule_ZeroRate(t *testing.T) {
	params := baseParams()
	params.Price = 125000
	params.LoanShare = 0.8 // financed 100000
	params.AnnualRate = 0
	params.LoanTermYears = 10
	p := mustProject(t, params)

	schedule := p.Schedule()
	if len(schedule) != 120 {
		t.Fatalf("expected 120 periods, got %d", len(schedule))
	}
	// 100000 / 120 = 833.33, no interest at all.
	assertClose(t, schedule[0].Payment, 833.3333333, 1e-4, "zero-rate payment")
	for _, sp := range schedule {
		if sp.Interest != 0 {
			t.Fatalf("period %d has interest %g with a zero rate", sp.Period, sp.Interest)
		}
	}
}

func TestSchedule_MortgageReferenceVector(t *testing.T) {
	// 200000 financed @ 4% over 25 years -> 1055.67/month.
	p := mustProject(t, model.ProjectParams{
		Price:         200000,
		MonthlyRent:   1200,
		LoanShare:     1.0,
		AnnualRate:    0.04,
		LoanTermYears: 25,
		TaxRate:       0.21,
	})

	assertClose(t, p.Schedule()[0].Payment, 1055.67, 0.5, "monthly payment")
}
