package engine

import (
	"math"

	"github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"
)

// presentValue discounts the net series to today. The annual discount
// rate is converted to its effective per-period equivalent
// (1+annual)^(1/perYear) − 1 and the discount factor is accumulated
// multiplicatively across periods. The initial equity enters
// undiscounted at month 0.
func presentValue(months []model.CashFlowMonth, equity float64, discountRate Fraction, perYear int) float64 {
	rm := math.Pow(1+float64(discountRate), 1/float64(perYear)) - 1

	npv := -equity
	factor := 1.0
	for _, m := range months {
		factor /= 1 + rm
		npv += m.Net * factor
	}
	return npv
}
