package engine

import (
	"errors"
	"testing"
)

func TestNormalizeRate(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  Fraction
	}{
		{"fraction stays", 0.80, 0.80},
		{"percentage divided", 80, 0.80},
		{"small rate fraction", 0.03, 0.03},
		{"small rate percentage", 3, 0.03},
		{"zero is valid", 0, 0},
		{"exactly one is ambiguous but coincides", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRate("rate", tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeRate(%g) = %g, want %g", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRate_Negative(t *testing.T) {
	_, err := NormalizeRate("rate", -0.5)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestNormalizeShare_OverOneHundredPercent(t *testing.T) {
	if _, err := NormalizeShare("loan share", 150); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for 150%%, got %v", err)
	}

	got, err := NormalizeShare("loan share", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1 {
		t.Errorf("NormalizeShare(100) = %g, want 1", got)
	}
}

func TestNormalizer_PercentAndFractionAgree(t *testing.T) {
	a, err := NormalizeRate("interest rate", 3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NormalizeRate("interest rate", 0.03)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("3 and 0.03 normalized to %g and %g, want identical", a, b)
	}
}
