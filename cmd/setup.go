package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/config"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()
	scenario := config.DefaultScenario()

	fmt.Println()
	fmt.Println("  Welcome to rendita!")
	fmt.Println("  Describe the investment; press Enter to keep the default.")
	fmt.Println()

	fmt.Println("  1. Property")
	scenario.Property.Price = askFloat(reader, "Apartment price", scenario.Property.Price)
	scenario.Property.MonthlyRent = askFloat(reader, "Monthly rent", scenario.Property.MonthlyRent)
	fmt.Println()

	fmt.Println("  2. Mortgage")
	scenario.Loan.Share = askFloat(reader, "Loan share (e.g. 0.8 or 80)", scenario.Loan.Share)
	scenario.Loan.AnnualRate = askFloat(reader, "Annual rate (e.g. 0.03 or 3)", scenario.Loan.AnnualRate)
	scenario.Loan.TermYears = askInt(reader, "Loan term in years", scenario.Loan.TermYears)
	fmt.Println("     Amortization mode")
	fmt.Println("     (1) Fixed installment (French) [default]")
	fmt.Println("     (2) Fixed principal")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	if strings.TrimSpace(choice) == "2" {
		scenario.Loan.Mode = string(model.FixedPrincipal)
	} else {
		scenario.Loan.Mode = string(model.FixedInstallment)
	}
	fmt.Println()

	fmt.Println("  3. Taxes and valuation")
	scenario.Tax.Rate = askFloat(reader, "Tax rate on rental profit (e.g. 0.21 or 21)", scenario.Tax.Rate)
	scenario.Valuation.ProjectTermYears = askInt(reader, "Project horizon in years (0 = loan term)", scenario.Valuation.ProjectTermYears)
	scenario.Valuation.DiscountRate = askFloat(reader, "Annual discount rate (e.g. 0.03 or 3)", scenario.Valuation.DiscountRate)
	fmt.Println()

	// Validate before writing anything to disk.
	if _, err := engine.New(scenario.Params()); err != nil {
		return fmt.Errorf("scenario is not valid: %w", err)
	}

	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Catppuccin Mocha")
	fmt.Println("     (3) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "catppuccin-mocha"
	case "3":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}
	fmt.Println()

	scenarioPath := filepath.Join(config.Dir(), "apartment.toml")
	fmt.Printf("  5. Scenario file [%s]\n", scenarioPath)
	fmt.Print("     > ")
	pathInput, _ := reader.ReadString('\n')
	if p := strings.TrimSpace(pathInput); p != "" {
		scenarioPath = p
	}

	if err := os.MkdirAll(filepath.Dir(scenarioPath), 0o755); err != nil {
		return fmt.Errorf("creating scenario dir: %w", err)
	}
	if err := config.SaveScenario(scenarioPath, scenario); err != nil {
		return err
	}

	cfg.General.DefaultScenario = scenarioPath
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved scenario to %s\n", scenarioPath)
	fmt.Printf("  Saved config to %s\n", config.Path())
	fmt.Println("  Run `rendita summary` to see the projection, or `rendita setup` to reconfigure.")
	fmt.Println()

	return nil
}

func askFloat(reader *bufio.Reader, prompt string, def float64) float64 {
	fmt.Printf("     %s [%g]\n     > ", prompt, def)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		fmt.Printf("     Not a number, keeping %g\n", def)
		return def
	}
	return v
}

func askInt(reader *bufio.Reader, prompt string, def int) int {
	fmt.Printf("     %s [%d]\n     > ", prompt, def)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		fmt.Printf("     Not a number, keeping %d\n", def)
		return def
	}
	return v
}
