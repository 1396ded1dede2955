package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/store"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Recent recorded runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 15, "Number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer func() { _ = h.Close() }()

	runs, err := h.RecentRuns(flagHistoryLimit)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	total, err := h.RunCount()
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RUN HISTORY"))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("  No recorded runs yet. Run `rendita summary` first.")
		fmt.Println()
		return nil
	}

	var rows [][]string
	for _, r := range runs {
		scenario := r.Scenario
		if scenario == "" {
			scenario = "-"
		}
		rows = append(rows, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			scenario,
			cli.FormatMoneyShort(r.Params.Price),
			cli.FormatMoney(r.Params.MonthlyRent),
			strconv.Itoa(r.Params.LoanTermYears) + "y",
			cli.FormatMoney(r.Summary.NPV),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"When", "Scenario", "Price", "Rent", "Loan", "NPV"},
		Rows:    rows,
	}))

	fmt.Printf("\n  Showing %d of %d runs (%s)\n\n", len(runs), total, store.DefaultPath())
	return nil
}
