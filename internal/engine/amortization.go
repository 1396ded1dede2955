package engine

import (
	"math"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

// amortize computes the per-period schedule for the financed amount.
// The final period's principal absorbs floating-point drift so the
// remaining balance ends at exactly zero.
func amortize(principal float64, annualRate Fraction, years, perYear int, mode model.Mode) []model.SchedulePeriod {
	n := years * perYear
	r := float64(annualRate) / float64(perYear)

	periods := make([]model.SchedulePeriod, 0, n)
	balance := principal

	switch mode {
	case model.FixedInstallment:
		payment := annuityPayment(principal, r, n)
		for k := 1; k <= n; k++ {
			interest := balance * r
			share := payment - interest
			if k == n {
				share = balance
			}
			balance -= share
			if k == n {
				balance = 0
			}
			periods = append(periods, model.SchedulePeriod{
				Period:    k,
				Payment:   interest + share,
				Interest:  interest,
				Principal: share,
				Remaining: balance,
			})
		}

	case model.FixedPrincipal:
		share := principal / float64(n)
		for k := 1; k <= n; k++ {
			interest := balance * r
			thisShare := share
			if k == n {
				thisShare = balance
			}
			balance -= thisShare
			if k == n {
				balance = 0
			}
			periods = append(periods, model.SchedulePeriod{
				Period:    k,
				Payment:   interest + thisShare,
				Interest:  interest,
				Principal: thisShare,
				Remaining: balance,
			})
		}
	}

	return periods
}

// annuityPayment is the standard constant-installment formula
// P·r(1+r)^n / ((1+r)^n − 1). A zero per-period rate degenerates to
// P/n, avoiding the division by zero.
func annuityPayment(principal, r float64, n int) float64 {
	if r == 0 {
		return principal / float64(n)
	}
	growth := math.Pow(1+r, float64(n))
	return principal * (r * growth) / (growth - 1)
}
