package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values. Values are scaled
// between the series minimum and maximum so that negative entries
// (tax-settlement months) still show their shape.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	low, high := values[0], values[0]
	for _, v := range values[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	span := high - low
	if span == 0 {
		span = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int((v - low) / span * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// SignedBarChart renders a bar chart around a zero axis. Positive bars
// grow up in green, negative bars grow down in red. Cash-flow series
// swing negative in tax-settlement years, so both halves are drawn to
// a shared per-unit row scale.
func SignedBarChart(values []float64, labels []string, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	maxPos, maxNeg := 0.0, 0.0
	for _, v := range values {
		if v > maxPos {
			maxPos = v
		}
		if -v > maxNeg {
			maxNeg = -v
		}
	}
	if maxPos == 0 && maxNeg == 0 {
		maxPos = 1
	}

	if height < 4 {
		height = 4
	}
	// Split rows between halves proportionally to magnitude; an active
	// half always gets at least one row.
	posRows := height
	negRows := 0
	if maxNeg > 0 {
		negRows = int(math.Round(float64(height) * maxNeg / (maxPos + maxNeg)))
		if negRows < 1 {
			negRows = 1
		}
		if negRows > height-1 && maxPos > 0 {
			negRows = height - 1
		}
		posRows = height - negRows
	}
	if maxPos == 0 {
		posRows = 0
		negRows = height
	}

	perRow := 1.0
	if posRows > 0 {
		perRow = maxPos / float64(posRows)
	}
	if negRows > 0 {
		if alt := maxNeg / float64(negRows); alt > perRow {
			perRow = alt
		}
	}

	yLabelW := len(formatChartLabel(math.Max(maxPos, maxNeg))) + 2
	if yLabelW < 5 {
		yLabelW = 5
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := 2
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	} else {
		barW = chartW
	}
	if barW < 1 {
		barW = 1
		gap = 0
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	posStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	negStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	fill := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	// Positive half, top row first.
	for row := posRows; row >= 1; row-- {
		rowTop := float64(row) * perRow
		rowBottom := float64(row-1) * perRow

		label := ""
		if row == posRows {
			label = formatChartLabel(maxPos)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(fill.Render(" "))
			}
			switch {
			case v >= rowTop:
				b.WriteString(posStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / perRow
				idx := int(frac * 8)
				if idx < 1 {
					idx = 1
				}
				if idx > 8 {
					idx = 8
				}
				b.WriteString(posStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(fill.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// Zero axis.
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("┼"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Negative half, growing down. Partial cells render as full blocks;
	// terminals have no bottom-anchored partials.
	for row := 1; row <= negRows; row++ {
		rowTop := float64(row-1) * perRow
		rowBottom := float64(row) * perRow

		label := ""
		if row == negRows {
			label = "-" + formatChartLabel(maxNeg)
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(fill.Render(" "))
			}
			mag := -v
			switch {
			case mag >= rowBottom:
				b.WriteString(negStyle.Render(strings.Repeat("█", barW)))
			case mag > rowTop:
				b.WriteString(negStyle.Render(strings.Repeat("▀", barW)))
			default:
				b.WriteString(fill.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X-axis labels.
	if len(labels) == n && n > 0 {
		buf := make([]byte, axisLen)
		for i := range buf {
			buf[i] = ' '
		}

		minSpacing := 5
		labelStep := max(1, (n*minSpacing)/(axisLen+1))

		lastEnd := -1
		for i := 0; i < n; i += labelStep {
			pos := i * (barW + gap)
			lbl := labels[i]
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end
		}

		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(fill.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return strings.TrimRight(b.String(), "\n")
}

// formatChartLabel compacts an axis value (1.2k, 3M).
func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
