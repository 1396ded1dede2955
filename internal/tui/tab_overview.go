package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/components"
)

func (a App) renderOverviewTab(cw, contentH int) string {
	s := a.project.Summary()
	schedule := a.project.Schedule()

	firstPayment := 0.0
	if len(schedule) > 0 {
		firstPayment = schedule[0].Payment
	}

	cards := components.MetricCardRow([]struct{ Label, Value, Note string }{
		{"Net present value", cli.FormatMoney(s.NPV), "discounted at " + cli.FormatPercent(a.project.DiscountRate())},
		{"Initial equity", cli.FormatMoney(s.InitialEquity), "month-0 outlay"},
		{"First installment", cli.FormatMoney(firstPayment), string(a.project.Mode())},
		{"Total interest", cli.FormatMoney(s.TotalInterest), "over " + cli.FormatMonths(s.LoanTermMonths)},
	}, cw)

	cards2 := components.MetricCardRow([]struct{ Label, Value, Note string }{
		{"Total rent", cli.FormatMoney(s.TotalRent), "over " + cli.FormatMonths(s.ProjectTermMonths)},
		{"Total payments", cli.FormatMoney(s.TotalPayments), ""},
		{"Total taxes", cli.FormatMoney(s.TotalTaxes), "on rental profit"},
		{"Financed", cli.FormatMoney(a.project.FinancedAmount()), cli.FormatPercent(a.project.LoanShare()) + " of price"},
	}, cw)

	_, months := a.project.CashFlows()
	nets := yearlyTotals(months, a.project.PaymentsPerYear())
	labels := make([]string, len(nets))
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}

	chartH := contentH - lipgloss.Height(cards) - lipgloss.Height(cards2) - 3
	if chartH < 6 {
		chartH = 6
	}
	if chartH > 14 {
		chartH = 14
	}
	chart := components.SignedBarChart(nets, labels, components.CardInnerWidth(cw), chartH)
	chartCard := components.ContentCard("Yearly net cash flow", chart, cw)

	return fmt.Sprintf("%s\n%s\n%s", cards, cards2, chartCard)
}

// yearlyTotals rolls the monthly net series up into per-year sums.
func yearlyTotals(months []model.CashFlowMonth, perYear int) []float64 {
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
