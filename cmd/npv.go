package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
)

var npvCmd = &cobra.Command{
	Use:   "npv",
	Short: "Net present value of the project",
	Long: "Discounts the monthly net cash-flow series at the annual discount\n" +
		"rate. The initial equity outlay is included as an undiscounted\n" +
		"month-0 outflow.",
	RunE: runNPV,
}

func init() {
	rootCmd.AddCommand(npvCmd)
}

func runNPV(_ *cobra.Command, _ []string) error {
	p, scenario, err := buildProject()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  NPV: %s\n", cli.RenderSigned(p.NPV()))
	fmt.Printf("  (discount rate %s, initial equity %s at month 0)\n",
		cli.FormatPercent(p.DiscountRate()),
		cli.FormatMoney(p.InitialEquity()))
	fmt.Println()

	recordRun(p, scenario)
	return nil
}
