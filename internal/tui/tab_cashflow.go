package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/theme"
)

func (a App) renderCashflowTab(cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	unit := "Month"
	if a.flowYearly {
		unit = "Year"
	}
	header := headerStyle.Render(fmt.Sprintf("  %-6s %12s %12s %12s %12s %13s",
		unit, "Rent", "Payment", "Operating", "Tax", "Net"))

	hint := hintStyle.Render("  j/k scroll · y yearly rollup")

	return header + "\n" + a.flowView.View() + "\n" + hint
}

// cashflowContent builds the cash-flow table shown in the viewport.
// Net amounts are tinted by sign; tax-settlement months read at a
// glance.
func (a App) cashflowContent() string {
	t := theme.Active
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	posStyle := lipgloss.NewStyle().Foreground(t.Green)
	negStyle := lipgloss.NewStyle().Foreground(t.Red)

	_, months := a.project.CashFlows()
	perYear := a.project.PaymentsPerYear()

	signed := func(v float64) string {
		s := fmt.Sprintf("%13s", cli.FormatMoney(v))
		if v < 0 {
			return negStyle.Render(s)
		}
		return posStyle.Render(s)
	}

	var b strings.Builder
	if a.flowYearly {
		for y := 0; y*perYear < len(months); y++ {
			end := (y + 1) * perYear
			if end > len(months) {
				end = len(months)
			}
			var rent, payment, operating, tax, net float64
			for _, m := range months[y*perYear : end] {
				rent += m.Rent
				payment += m.Payment
				operating += m.Operating
				tax += m.Tax
				net += m.Net
			}
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-6d %12s %12s %12s %12s",
				y+1,
				cli.FormatMoney(rent),
				cli.FormatMoney(payment),
				cli.FormatMoney(operating),
				cli.FormatMoney(tax))))
			b.WriteString(signed(net))
			b.WriteString("\n")
		}
	} else {
		for _, m := range months {
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-6d %12s %12s %12s %12s",
				m.Month,
				cli.FormatMoney(m.Rent),
				cli.FormatMoney(m.Payment),
				cli.FormatMoney(m.Operating),
				cli.FormatMoney(m.Tax))))
			b.WriteString(signed(m.Net))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
