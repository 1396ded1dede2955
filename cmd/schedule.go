package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
)

var flagScheduleYearly bool

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Loan amortization schedule",
	RunE:  runSchedule,
}

func init() {
	scheduleCmd.Flags().BoolVarP(&flagScheduleYearly, "yearly", "y", false, "Roll periods up into years")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(_ *cobra.Command, _ []string) error {
	p, scenario, err := buildProject()
	if err != nil {
		return err
	}

	schedule := p.Schedule()
	perYear := p.PaymentsPerYear()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("AMORTIZATION  %s  %s",
		cli.FormatMoney(p.FinancedAmount()), p.Mode())))
	fmt.Println()

	var rows [][]string
	if flagScheduleYearly {
		for y := 0; y*perYear < len(schedule); y++ {
			var payment, interest, principal float64
			end := (y + 1) * perYear
			if end > len(schedule) {
				end = len(schedule)
			}
			for _, sp := range schedule[y*perYear : end] {
				payment += sp.Payment
				interest += sp.Interest
				principal += sp.Principal
			}
			rows = append(rows, []string{
				strconv.Itoa(y + 1),
				cli.FormatMoney(payment),
				cli.FormatMoney(interest),
				cli.FormatMoney(principal),
				cli.FormatMoney(schedule[end-1].Remaining),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Year", "Payments", "Interest", "Principal", "Remaining"},
			Rows:    rows,
		}))
	} else {
		for _, sp := range schedule {
			rows = append(rows, []string{
				strconv.Itoa(sp.Period),
				cli.FormatMoney(sp.Payment),
				cli.FormatMoney(sp.Interest),
				cli.FormatMoney(sp.Principal),
				cli.FormatMoney(sp.Remaining),
			})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Period", "Payment", "Interest", "Principal", "Remaining"},
			Rows:    rows,
		}))
	}

	recordRun(p, scenario)
	return nil
}
