package engine

import "fmt"

// Fraction is a normalized rate: a value in [0,1] for shares, >= 0 for
// interest and discount rates. All rate-like inputs are converted to
// Fractions exactly once, at construction, so the scheduler and the
// valuation code never see raw percentage values.
type Fraction float64

// NormalizeRate canonicalizes a rate-like input. Values in [0,1] are
// taken as fractions; values above 1 are read as whole percentages and
// divided by 100 (so 3 and 0.03 both normalize to 0.03). Negative
// values are rejected.
func NormalizeRate(name string, v float64) (Fraction, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %s must not be negative, got %g", ErrInvalidParameter, name, v)
	}
	if v > 1 {
		v /= 100
	}
	return Fraction(v), nil
}

// NormalizeShare is NormalizeRate for inputs that must resolve to
// [0,1], such as the loan share and the tax rate. An input of exactly
// 1 means 100% either way, so no special-casing is needed at that
// boundary.
func NormalizeShare(name string, v float64) (Fraction, error) {
	f, err := NormalizeRate(name, v)
	if err != nil {
		return 0, err
	}
	if f > 1 {
		return 0, fmt.Errorf("%w: %s must resolve to [0,1], got %g", ErrInvalidParameter, name, v)
	}
	return f, nil
}
