package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
)

var flagCashflowYearly bool

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Monthly cash-flow series with year-end taxes",
	RunE:  runCashflow,
}

func init() {
	cashflowCmd.Flags().BoolVarP(&flagCashflowYearly, "yearly", "y", false, "Roll months up into years")
	rootCmd.AddCommand(cashflowCmd)
}

func runCashflow(_ *cobra.Command, _ []string) error {
	p, scenario, err := buildProject()
	if err != nil {
		return err
	}

	_, months := p.CashFlows()
	perYear := p.PaymentsPerYear()

	fmt.Println()
	fmt.Println(cli.RenderTitle("PROJECT CASH FLOW"))
	fmt.Println()

	var rows [][]string
	if flagCashflowYearly {
		for y := 0; y*perYear < len(months); y++ {
			var rent, payment, tax, net float64
			for _, m := range months[y*perYear : (y+1)*perYear] {
				rent += m.Rent
				payment += m.Payment
				tax += m.Tax
				net += m.Net
			}
			rows = append(rows, []string{
				strconv.Itoa(y + 1),
				cli.FormatMoney(rent),
				cli.FormatMoney(payment),
				cli.FormatMoney(tax),
				cli.FormatMoney(net),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Year", "Rent", "Payments", "Tax", "Net"},
			Rows:    rows,
		}))
	} else {
		for _, m := range months {
			rows = append(rows, []string{
				strconv.Itoa(m.Month),
				cli.FormatMoney(m.Rent),
				cli.FormatMoney(m.Payment),
				cli.FormatMoney(m.Operating),
				cli.FormatMoney(m.Tax),
				cli.FormatMoney(m.Net),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Month", "Rent", "Payment", "Operating", "Tax", "Net"},
			Rows:    rows,
		}))
	}

	nets := yearlyNets(months, perYear)
	if len(nets) > 1 {
		fmt.Printf("\n  Yearly net  %s\n", cli.RenderSparkline(nets))
	}

	recordRun(p, scenario)
	return nil
}
