package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultScenario != "" {
		fmt.Printf("    Default scenario: %s\n", cfg.General.DefaultScenario)
	} else {
		fmt.Println("    Default scenario: not set (built-in defaults)")
	}
	fmt.Printf("    Currency:         %s\n", cfg.General.Currency)
	fmt.Printf("    Save history:     %v\n", cfg.General.SaveHistory)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `rendita setup` to reconfigure.")
	return nil
}
