package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

// Scenario is the on-disk TOML description of an investment project.
// It only carries raw values; numeric validation and rate
// normalization happen in the engine at construction time.
type Scenario struct {
	Name      string          `toml:"name,omitempty"`
	Property  PropertySection `toml:"property"`
	Loan      LoanSection     `toml:"loan"`
	Tax       TaxSection      `toml:"tax"`
	Valuation ValuationSect   `toml:"valuation"`
}

// PropertySection describes the apartment.
type PropertySection struct {
	Price       float64 `toml:"price"`
	MonthlyRent float64 `toml:"monthly_rent"`
}

// LoanSection describes the mortgage.
type LoanSection struct {
	Share           float64 `toml:"share"`
	AnnualRate      float64 `toml:"annual_rate"`
	TermYears       int     `toml:"term_years"`
	Mode            string  `toml:"mode,omitempty"`
	PaymentsPerYear int     `toml:"payments_per_year,omitempty"`
}

// TaxSection describes annual taxation.
type TaxSection struct {
	Rate float64 `toml:"rate"`
}

// ValuationSect describes the project horizon and discounting.
type ValuationSect struct {
	ProjectTermYears int     `toml:"project_term_years,omitempty"`
	DiscountRate     float64 `toml:"discount_rate"`
}

// DefaultScenario returns a filled-in starter scenario.
func DefaultScenario() Scenario {
	return Scenario{
		Name: "apartment",
		Property: PropertySection{
			Price:       200000,
			MonthlyRent: 900,
		},
		Loan: LoanSection{
			Share:           0.8,
			AnnualRate:      0.03,
			TermYears:       20,
			Mode:            string(model.FixedInstallment),
			PaymentsPerYear: 12,
		},
		Tax:       TaxSection{Rate: 0.21},
		Valuation: ValuationSect{DiscountRate: 0.03},
	}
}

// Params converts the scenario to engine input parameters.
func (s Scenario) Params() model.ProjectParams {
	return model.ProjectParams{
		Price:            s.Property.Price,
		MonthlyRent:      s.Property.MonthlyRent,
		LoanShare:        s.Loan.Share,
		AnnualRate:       s.Loan.AnnualRate,
		LoanTermYears:    s.Loan.TermYears,
		Mode:             model.Mode(s.Loan.Mode),
		PaymentsPerYear:  s.Loan.PaymentsPerYear,
		TaxRate:          s.Tax.Rate,
		ProjectTermYears: s.Valuation.ProjectTermYears,
		DiscountRate:     s.Valuation.DiscountRate,
	}
}

// LoadScenario reads a scenario file.
func LoadScenario(path string) (Scenario, error) {
	var s Scenario
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading scenario: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return s, nil
}

// SaveScenario writes a scenario file.
func SaveScenario(path string, s Scenario) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating scenario file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}
