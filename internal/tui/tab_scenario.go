package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/components"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/theme"
)

func (a App) renderScenarioTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	errStyle := lipgloss.NewStyle().Foreground(t.Red)

	p := a.project
	s := a.scenario

	line := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("  %-22s", label)) + valueStyle.Render(value)
	}

	horizon := strconv.Itoa(s.Loan.TermYears) + "y (loan term)"
	if s.Valuation.ProjectTermYears > 0 {
		horizon = strconv.Itoa(s.Valuation.ProjectTermYears) + "y"
	}

	var b strings.Builder
	b.WriteString(line("Apartment price", cli.FormatMoney(s.Property.Price)))
	b.WriteString("\n")
	b.WriteString(line("Monthly rent", cli.FormatMoney(s.Property.MonthlyRent)))
	b.WriteString("\n\n")
	b.WriteString(line("Loan share", cli.FormatPercent(p.LoanShare())))
	b.WriteString("\n")
	b.WriteString(line("Annual rate", cli.FormatPercent(p.AnnualRate())))
	b.WriteString("\n")
	b.WriteString(line("Loan term", strconv.Itoa(s.Loan.TermYears)+"y"))
	b.WriteString("\n")
	b.WriteString(line("Mode", string(p.Mode())))
	b.WriteString("\n")
	b.WriteString(line("Payments per year", strconv.Itoa(p.PaymentsPerYear())))
	b.WriteString("\n\n")
	b.WriteString(line("Tax rate", cli.FormatPercent(p.TaxRate())))
	b.WriteString("\n")
	b.WriteString(line("Project horizon", horizon))
	b.WriteString("\n")
	b.WriteString(line("Discount rate", cli.FormatPercent(p.DiscountRate())))

	if a.applyErr != nil {
		b.WriteString("\n\n")
		b.WriteString(errStyle.Render("  " + a.applyErr.Error()))
	}

	card := components.ContentCard("Scenario parameters", b.String(), cw)

	return card + "\n" + hintStyle.Render("  Enter to edit · changes recompute the projection")
}
