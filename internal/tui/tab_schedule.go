package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/cli"
	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/theme"
)

func (a App) renderScheduleTab(cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	unit := "Period"
	if a.schedYearly {
		unit = "Year"
	}
	header := headerStyle.Render(fmt.Sprintf("  %-7s %14s %14s %14s %16s",
		unit, "Payment", "Interest", "Principal", "Remaining"))

	hint := hintStyle.Render("  j/k scroll · y yearly rollup")

	return header + "\n" + a.schedView.View() + "\n" + hint
}

// scheduleContent builds the amortization table shown in the schedule
// viewport, per period or rolled up per year.
func (a App) scheduleContent() string {
	t := theme.Active
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	schedule := a.project.Schedule()
	perYear := a.project.PaymentsPerYear()

	var b strings.Builder
	if a.schedYearly {
		for y := 0; y*perYear < len(schedule); y++ {
			end := (y + 1) * perYear
			if end > len(schedule) {
				end = len(schedule)
			}
			var payment, interest, principal float64
			for _, p := range schedule[y*perYear : end] {
				payment += p.Payment
				interest += p.Interest
				principal += p.Principal
			}
			remaining := schedule[end-1].Remaining
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-7d %14s %14s %14s %16s",
				y+1,
				cli.FormatMoney(payment),
				cli.FormatMoney(interest),
				cli.FormatMoney(principal),
				cli.FormatMoney(remaining))))
			b.WriteString("\n")
		}
	} else {
		for _, p := range schedule {
			b.WriteString(rowStyle.Render(fmt.Sprintf("  %-7d %14s %14s %14s %16s",
				p.Period,
				cli.FormatMoney(p.Payment),
				cli.FormatMoney(p.Interest),
				cli.FormatMoney(p.Principal),
				cli.FormatMoney(p.Remaining))))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
