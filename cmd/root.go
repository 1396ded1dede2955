// Package cmd implements the rendita CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/config"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/store"
)

var (
	flagScenario     string
	flagPrice        float64
	flagRent         float64
	flagShare        float64
	flagRate         float64
	flagTax          float64
	flagLoanYears    int
	flagProjectYears int
	flagMode         string
	flagPerYear      int
	flagDiscount     float64
	flagQuiet        bool
	flagNoHistory    bool
)

var rootCmd = &cobra.Command{
	Use:   "rendita",
	Short: "Real-estate investment valuation CLI",
	Long: "Project the cash flows of a mortgage-financed rental apartment:\n" +
		"amortization schedule, monthly cash flows with year-end taxes, and NPV.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runSummary
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagScenario, "scenario", "s", "", "Scenario TOML file (default from config)")
	pf.Float64Var(&flagPrice, "price", 0, "Apartment price")
	pf.Float64Var(&flagRent, "rent", 0, "Estimated monthly rent")
	pf.Float64Var(&flagShare, "share", 0, "Loan share (fraction or percentage)")
	pf.Float64Var(&flagRate, "rate", 0, "Annual loan interest rate (fraction or percentage)")
	pf.Float64Var(&flagTax, "tax", 0, "Annual tax rate (fraction or percentage)")
	pf.IntVar(&flagLoanYears, "loan-years", 0, "Loan term in years")
	pf.IntVar(&flagProjectYears, "project-years", 0, "Project term in years (default: loan term)")
	pf.StringVarP(&flagMode, "mode", "m", "", "Amortization mode: fixed-installment or fixed-principal")
	pf.IntVar(&flagPerYear, "payments-per-year", 0, "Payments per year (default 12)")
	pf.Float64Var(&flagDiscount, "discount", 0, "Annual discount rate for NPV (fraction or percentage)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	pf.BoolVar(&flagNoHistory, "no-history", false, "Skip recording the run in the history database")
}

// loadScenario resolves the scenario in three layers: built-in
// defaults, then the scenario file (--scenario flag or the configured
// default), then individual parameter flags on top.
func loadScenario() (config.Scenario, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Scenario{}, err
	}

	path := flagScenario
	if path == "" {
		path = cfg.General.DefaultScenario
	}

	scenario := config.DefaultScenario()
	if path != "" {
		scenario, err = config.LoadScenario(path)
		if err != nil {
			return config.Scenario{}, err
		}
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Scenario: %s\n", path)
		}
	}

	applyFlagOverrides(&scenario)
	return scenario, nil
}

func applyFlagOverrides(s *config.Scenario) {
	pf := rootCmd.PersistentFlags()
	if pf.Changed("price") {
		s.Property.Price = flagPrice
	}
	if pf.Changed("rent") {
		s.Property.MonthlyRent = flagRent
	}
	if pf.Changed("share") {
		s.Loan.Share = flagShare
	}
	if pf.Changed("rate") {
		s.Loan.AnnualRate = flagRate
	}
	if pf.Changed("tax") {
		s.Tax.Rate = flagTax
	}
	if pf.Changed("loan-years") {
		s.Loan.TermYears = flagLoanYears
	}
	if pf.Changed("project-years") {
		s.Valuation.ProjectTermYears = flagProjectYears
	}
	if pf.Changed("mode") {
		s.Loan.Mode = flagMode
	}
	if pf.Changed("payments-per-year") {
		s.Loan.PaymentsPerYear = flagPerYear
	}
	if pf.Changed("discount") {
		s.Valuation.DiscountRate = flagDiscount
	}
}

// buildProject is the shared construction path used by all commands.
// Validation failures surface here, before any output is rendered.
func buildProject() (*engine.Project, config.Scenario, error) {
	scenario, err := loadScenario()
	if err != nil {
		return nil, config.Scenario{}, err
	}

	p, err := engine.New(scenario.Params())
	if err != nil {
		return nil, config.Scenario{}, err
	}
	return p, scenario, nil
}

// recordRun stores the run in the history database. Failures are not
// fatal: the computed output has already been produced.
func recordRun(p *engine.Project, scenario config.Scenario) {
	if flagNoHistory {
		return
	}
	cfg, err := config.Load()
	if err != nil || !cfg.General.SaveHistory {
		return
	}

	h, err := store.Open(store.DefaultPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Warning: history unavailable: %v\n", err)
		}
		return
	}
	defer func() { _ = h.Close() }()

	params := scenario.Params()
	if params.Mode == "" {
		params.Mode = p.Mode()
	}
	if _, err := h.SaveRun(store.Run{
		Scenario: scenario.Name,
		Params:   params,
		Summary:  p.Summary(),
	}); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Warning: failed to record run: %v\n", err)
	}
}

// yearlyNets rolls the monthly net series up into per-year sums.
func yearlyNets(months []model.CashFlowMonth, perYear int) []float64 {
	if perYear < 1 {
		return nil
	}
	years := len(months) / perYear
	nets := make([]float64, years)
	for y := 0; y < years; y++ {
		for _, m := range months[y*perYear : (y+1)*perYear] {
			nets[y] += m.Net
		}
	}
	return nets
}
