package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Headline metrics: equity, totals, and NPV",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	p, scenario, err := buildProject()
	if err != nil {
		return err
	}

	s := p.Summary()
	schedule := p.Schedule()

	title := "INVESTMENT SUMMARY"
	if scenario.Name != "" {
		title = fmt.Sprintf("INVESTMENT SUMMARY  %s", scenario.Name)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := [][]string{
		{"Apartment price", cli.FormatMoney(scenario.Property.Price)},
		{"Initial equity", cli.FormatMoney(s.InitialEquity)},
		{"Financed amount", cli.FormatMoney(p.FinancedAmount())},
		{"Amortization", string(p.Mode())},
		{"First installment", cli.FormatMoney(schedule[0].Payment)},
		{"---"},
		{"Loan term", cli.FormatMonths(s.LoanTermMonths)},
		{"Project term", cli.FormatMonths(s.ProjectTermMonths)},
		{"---"},
		{"Total rent", cli.FormatMoney(s.TotalRent)},
		{"Total payments", cli.FormatMoney(s.TotalPayments)},
		{"Total interest", cli.FormatMoney(s.TotalInterest)},
		{"Total taxes", cli.FormatMoney(s.TotalTaxes)},
		{"---"},
		{"NPV", cli.FormatMoney(s.NPV)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	_, months := p.CashFlows()
	nets := yearlyNets(months, p.PaymentsPerYear())
	if len(nets) > 1 {
		fmt.Printf("\n  Yearly net cash flow  %s\n", cli.RenderSparkline(nets))
	}

	recordRun(p, scenario)
	return nil
}
