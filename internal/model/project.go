// Package model defines the input parameters and result types shared by
// the calculation engine and its consumers (CLI, TUI, export, store).
package model

// Mode selects the amortization policy for the mortgage.
type Mode string

const (
	// FixedInstallment keeps the periodic payment constant (French
	// amortization); the principal share grows over time.
	FixedInstallment Mode = "fixed-installment"
	// FixedPrincipal keeps the principal share constant; the payment
	// shrinks as the balance decreases.
	FixedPrincipal Mode = "fixed-principal"
)

// ProjectParams holds the raw inputs for a real-estate investment
// financed by a mortgage. Rate-like fields accept either fractions
// (0.03) or whole percentages (3); the engine normalizes them at
// construction and rejects invalid combinations.
type ProjectParams struct {
	// Property
	Price       float64 // apartment purchase price
	MonthlyRent float64 // flat rent estimate per month

	// Loan
	LoanShare       float64 // share of the price financed by the mortgage
	AnnualRate      float64 // annual mortgage interest rate
	LoanTermYears   int
	Mode            Mode
	PaymentsPerYear int // defaults to 12 when zero

	// Taxation and valuation
	TaxRate          float64
	ProjectTermYears int     // defaults to LoanTermYears when zero
	DiscountRate     float64 // annual discount rate for NPV
}
