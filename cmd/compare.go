package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/engine"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Fixed-installment vs fixed-principal side by side",
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, _ []string) error {
	scenario, err := loadScenario()
	if err != nil {
		return err
	}

	params := scenario.Params()
	params.Mode = model.FixedInstallment
	installment, err := engine.New(params)
	if err != nil {
		return err
	}
	params.Mode = model.FixedPrincipal
	principal, err := engine.New(params)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("AMORTIZATION MODE COMPARISON"))
	fmt.Println()

	si, sp := installment.Summary(), principal.Summary()
	schedI, schedP := installment.Schedule(), principal.Schedule()

	rows := [][]string{
		{"First payment", cli.FormatMoney(schedI[0].Payment), cli.FormatMoney(schedP[0].Payment)},
		{"Last payment", cli.FormatMoney(schedI[len(schedI)-1].Payment), cli.FormatMoney(schedP[len(schedP)-1].Payment)},
		{"---"},
		{"Total payments", cli.FormatMoney(si.TotalPayments), cli.FormatMoney(sp.TotalPayments)},
		{"Total interest", cli.FormatMoney(si.TotalInterest), cli.FormatMoney(sp.TotalInterest)},
		{"Total taxes", cli.FormatMoney(si.TotalTaxes), cli.FormatMoney(sp.TotalTaxes)},
		{"---"},
		{"NPV", cli.FormatMoney(si.NPV), cli.FormatMoney(sp.NPV)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Fixed installment", "Fixed principal"},
		Rows:    rows,
	}))

	return nil
}
