package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/config"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

// scenarioForm holds the string-typed field values bound to the huh
// form. Parsing and range validation happen on apply, in the engine.
type scenarioForm struct {
	price     string
	rent      string
	share     string
	rate      string
	loanYears string
	mode      string
	taxRate   string
	horizon   string
	discount  string
}

func scenarioFormFrom(s config.Scenario) scenarioForm {
	return scenarioForm{
		price:     strconv.FormatFloat(s.Property.Price, 'f', -1, 64),
		rent:      strconv.FormatFloat(s.Property.MonthlyRent, 'f', -1, 64),
		share:     strconv.FormatFloat(s.Loan.Share, 'f', -1, 64),
		rate:      strconv.FormatFloat(s.Loan.AnnualRate, 'f', -1, 64),
		loanYears: strconv.Itoa(s.Loan.TermYears),
		mode:      s.Loan.Mode,
		taxRate:   strconv.FormatFloat(s.Tax.Rate, 'f', -1, 64),
		horizon:   strconv.Itoa(s.Valuation.ProjectTermYears),
		discount:  strconv.FormatFloat(s.Valuation.DiscountRate, 'f', -1, 64),
	}
}

func validFloat(s string) error {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	return nil
}

func validInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("not a whole number: %q", s)
	}
	return nil
}

func newScenarioForm(vals *scenarioForm) *huh.Form {
	if vals.mode == "" {
		vals.mode = string(model.FixedInstallment)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Apartment price").
				Value(&vals.price).
				Validate(validFloat),
			huh.NewInput().
				Title("Monthly rent").
				Value(&vals.rent).
				Validate(validFloat),
			huh.NewInput().
				Title("Loan share").
				Description("Fraction (0.8) or percentage (80)").
				Value(&vals.share).
				Validate(validFloat),
			huh.NewInput().
				Title("Annual rate").
				Description("Fraction (0.03) or percentage (3)").
				Value(&vals.rate).
				Validate(validFloat),
			huh.NewInput().
				Title("Loan term (years)").
				Value(&vals.loanYears).
				Validate(validInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Amortization mode").
				Options(
					huh.NewOption("Fixed installment (French)", string(model.FixedInstallment)),
					huh.NewOption("Fixed principal", string(model.FixedPrincipal)),
				).
				Value(&vals.mode),
			huh.NewInput().
				Title("Tax rate").
				Description("On yearly rental profit").
				Value(&vals.taxRate).
				Validate(validFloat),
			huh.NewInput().
				Title("Project horizon (years)").
				Description("0 keeps the loan term").
				Value(&vals.horizon).
				Validate(validInt),
			huh.NewInput().
				Title("Discount rate").
				Value(&vals.discount).
				Validate(validFloat),
		),
	)
}

// apply parses the form fields into a scenario and recomputes the
// projection. The original scenario is returned unchanged on error.
func (f scenarioForm) apply(base config.Scenario) (config.Scenario, *engine.Project, error) {
	s := base
	s.Property.Price, _ = strconv.ParseFloat(f.price, 64)
	s.Property.MonthlyRent, _ = strconv.ParseFloat(f.rent, 64)
	s.Loan.Share, _ = strconv.ParseFloat(f.share, 64)
	s.Loan.AnnualRate, _ = strconv.ParseFloat(f.rate, 64)
	s.Loan.TermYears, _ = strconv.Atoi(f.loanYears)
	s.Loan.Mode = f.mode
	s.Tax.Rate, _ = strconv.ParseFloat(f.taxRate, 64)
	s.Valuation.ProjectTermYears, _ = strconv.Atoi(f.horizon)
	s.Valuation.DiscountRate, _ = strconv.ParseFloat(f.discount, 64)

	p, err := engine.New(s.Params())
	if err != nil {
		return base, nil, err
	}
	return s, p, nil
}
