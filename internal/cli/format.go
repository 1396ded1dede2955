// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatMoney formats an amount in euros with cents and thousands
// separators. e.g., 1234.5 -> "€1,234.50", -40000 -> "-€40,000.00"
func FormatMoney(v float64) string {
	if v < 0 {
		return "-" + FormatMoney(-v)
	}
	whole := int64(math.Floor(v))
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents == 100 { // rounding carried into the next euro
		whole++
		cents = 0
	}
	return fmt.Sprintf("€%s.%02d", FormatNumber(whole), cents)
}

// FormatMoneyShort formats an amount with k/M suffixes for chart axes
// and compact views. e.g., 160000 -> "€160k"
func FormatMoneyShort(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("€%.1fM", v/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("€%.0fk", v/1_000)
	case abs >= 1_000:
		return fmt.Sprintf("€%.1fk", v/1_000)
	default:
		return fmt.Sprintf("€%.0f", v)
	}
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatMonths renders a month count as years and months.
// e.g., 246 -> "20y 6m", 240 -> "20y"
func FormatMonths(months int) string {
	years := months / 12
	rest := months % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%dm", rest)
	case rest == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dm", years, rest)
	}
}
