package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: scenario identity on
// the left, key hints on the right.
func RenderStatusBar(width int, scenario, npv string, npvPositive bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Background(t.SurfaceHover).Width(width)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.SurfaceHover)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.SurfaceHover)

	npvColor := t.Red
	if npvPositive {
		npvColor = t.Green
	}
	npvStyle := lipgloss.NewStyle().Foreground(npvColor).Background(t.SurfaceHover).Bold(true)

	left := labelStyle.Render(" "+scenario+"  NPV ") + npvStyle.Render(npv)
	right := hintStyle.Render("? help · q quit ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Background(t.SurfaceHover).Render(
		lipgloss.PlaceHorizontal(gap, lipgloss.Left, ""))

	return barStyle.Render(left + spacer + right)
}
