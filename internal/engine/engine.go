// Package engine implements the investment calculation core: loan
// amortization scheduling, monthly cash-flow composition, year-end tax
// settlement, and NPV discounting.
package engine

import (
	"fmt"
	"slices"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

// Project is a fully validated, fully computed investment projection.
// New performs all validation and computes the schedule and cash-flow
// series eagerly, so every method on a constructed Project succeeds
// (Tabulate excepted, which can report an unavailable format). A
// Project is never mutated after construction; repeated calls return
// identical results.
type Project struct {
	price        float64
	rent         float64
	loanShare    Fraction
	annualRate   Fraction
	taxRate      Fraction
	discountRate Fraction
	loanYears    int
	projectYears int
	perYear      int
	mode         model.Mode

	schedule []model.SchedulePeriod
	months   []model.CashFlowMonth
	npv      float64
}

// New validates and normalizes params, then computes the amortization
// schedule, the cash-flow series, and the NPV. All ErrInvalidParameter
// cases surface here, never mid-calculation.
func New(params model.ProjectParams) (*Project, error) {
	if params.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive, got %g", ErrInvalidParameter, params.Price)
	}
	if params.MonthlyRent < 0 {
		return nil, fmt.Errorf("%w: monthly rent must not be negative, got %g", ErrInvalidParameter, params.MonthlyRent)
	}

	loanShare, err := NormalizeShare("loan share", params.LoanShare)
	if err != nil {
		return nil, err
	}
	annualRate, err := NormalizeRate("interest rate", params.AnnualRate)
	if err != nil {
		return nil, err
	}
	taxRate, err := NormalizeShare("tax rate", params.TaxRate)
	if err != nil {
		return nil, err
	}
	discountRate, err := NormalizeRate("discount rate", params.DiscountRate)
	if err != nil {
		return nil, err
	}

	if params.LoanTermYears < 1 {
		return nil, fmt.Errorf("%w: loan term must be at least 1 year, got %d", ErrInvalidParameter, params.LoanTermYears)
	}
	perYear := params.PaymentsPerYear
	if perYear == 0 {
		perYear = 12
	}
	if perYear < 1 {
		return nil, fmt.Errorf("%w: payments per year must be at least 1, got %d", ErrInvalidParameter, params.PaymentsPerYear)
	}
	projectYears := params.ProjectTermYears
	if projectYears == 0 {
		projectYears = params.LoanTermYears
	}
	if projectYears < params.LoanTermYears {
		return nil, fmt.Errorf("%w: project term (%dy) must be at least the loan term (%dy)",
			ErrInvalidParameter, projectYears, params.LoanTermYears)
	}

	mode := params.Mode
	if mode == "" {
		mode = model.FixedInstallment
	}
	if mode != model.FixedInstallment && mode != model.FixedPrincipal {
		return nil, fmt.Errorf("%w: unknown amortization mode %q", ErrInvalidParameter, params.Mode)
	}

	p := &Project{
		price:        params.Price,
		rent:         params.MonthlyRent,
		loanShare:    loanShare,
		annualRate:   annualRate,
		taxRate:      taxRate,
		discountRate: discountRate,
		loanYears:    params.LoanTermYears,
		projectYears: projectYears,
		perYear:      perYear,
		mode:         mode,
	}

	p.schedule = amortize(p.FinancedAmount(), annualRate, p.loanYears, perYear, mode)
	p.months = composeCashFlows(p.schedule, p.rent, projectYears, perYear, taxRate)
	p.npv = presentValue(p.months, p.InitialEquity(), discountRate, perYear)

	return p, nil
}

// FinancedAmount is the mortgage principal: price × loan share.
func (p *Project) FinancedAmount() float64 {
	return p.price * float64(p.loanShare)
}

// InitialEquity is the buyer's own outlay: price × (1 − loan share).
func (p *Project) InitialEquity() float64 {
	return p.price * (1 - float64(p.loanShare))
}

// Mode returns the amortization mode in effect.
func (p *Project) Mode() model.Mode { return p.mode }

// PaymentsPerYear returns the payment frequency in effect (12 unless
// overridden).
func (p *Project) PaymentsPerYear() int { return p.perYear }

// Normalized rate accessors, as fractions in [0,1].

func (p *Project) LoanShare() float64    { return float64(p.loanShare) }
func (p *Project) AnnualRate() float64   { return float64(p.annualRate) }
func (p *Project) TaxRate() float64      { return float64(p.taxRate) }
func (p *Project) DiscountRate() float64 { return float64(p.discountRate) }

// Schedule returns the amortization schedule, one entry per payment
// period over the loan term.
func (p *Project) Schedule() []model.SchedulePeriod {
	return slices.Clone(p.schedule)
}

// CashFlows returns the net monthly cash-flow series together with the
// per-month detail bundle (rent, payment, interest, principal, tax,
// operating cash flow).
func (p *Project) CashFlows() ([]float64, []model.CashFlowMonth) {
	net := make([]float64, len(p.months))
	for i, m := range p.months {
		net[i] = m.Net
	}
	return net, slices.Clone(p.months)
}

// NPV returns the net present value of the projection. The initial
// equity outlay is included as an undiscounted month-0 outflow; each
// month m is discounted by (1+r)^m with r the per-period equivalent of
// the annual discount rate. With a zero discount rate this is the
// plain sum of the series minus the initial equity.
func (p *Project) NPV() float64 { return p.npv }

// Summary aggregates headline metrics from the schedule and the
// cash-flow series. Taxes are reported as a positive amount paid. The
// NPV field follows the same month-0 equity convention as NPV.
func (p *Project) Summary() model.Summary {
	s := model.Summary{
		InitialEquity:     p.InitialEquity(),
		NPV:               p.npv,
		LoanTermMonths:    p.loanYears * p.perYear,
		ProjectTermMonths: p.projectYears * p.perYear,
	}
	for _, m := range p.months {
		s.TotalRent += m.Rent
		s.TotalPayments += m.Payment
		s.TotalInterest += m.Interest
		s.TotalTaxes += -m.Tax
	}
	return s
}
