package cli

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "€0.00"},
		{12.5, "€12.50"},
		{887.334, "€887.33"},
		{1234.5, "€1,234.50"},
		{160000, "€160,000.00"},
		{-40000, "-€40,000.00"},
		{999.999, "€1,000.00"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{6, "6m"},
		{12, "1y"},
		{240, "20y"},
		{246, "20y 6m"},
	}

	for _, tt := range tests {
		if got := FormatMonths(tt.in); got != tt.want {
			t.Errorf("FormatMonths(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.21); got != "21.0%" {
		t.Errorf("FormatPercent(0.21) = %q, want 21.0%%", got)
	}
}

func TestRenderSparkline_NegativeValues(t *testing.T) {
	out := RenderSparkline([]float64{-100, 0, 100})
	if out == "" {
		t.Fatal("empty sparkline")
	}
	runes := []rune(out)
	if len(runes) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(runes))
	}
	if runes[0] != '▁' || runes[2] != '█' {
		t.Errorf("expected min/max blocks at the ends, got %q", out)
	}
}
