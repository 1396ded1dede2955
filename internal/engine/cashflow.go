package engine

import "github.com/Issem-Sato/Valutazione-investimento-immobiliare/internal/model"

// composeCashFlows builds the month-indexed series over the full
// project term. Months past the loan term carry no payment. The annual
// tax settlement is posted in full to each year's last payment period:
// taxable profit is the year's rent minus the year's interest
// (mortgage interest is deductible, principal repayment is not), and
// no tax is due on a non-positive profit.
func composeCashFlows(schedule []model.SchedulePeriod, rent float64, projectYears, perYear int, taxRate Fraction) []model.CashFlowMonth {
	months := make([]model.CashFlowMonth, projectYears*perYear)

	for i := range months {
		m := model.CashFlowMonth{Month: i + 1, Rent: rent}
		if i < len(schedule) {
			sp := schedule[i]
			m.Payment = sp.Payment
			m.Interest = sp.Interest
			m.Principal = sp.Principal
			m.Remaining = sp.Remaining
		}
		m.Operating = m.Rent - m.Payment
		months[i] = m
	}

	for y := 0; y < projectYears; y++ {
		start := y * perYear
		end := start + perYear

		profit := 0.0
		for _, m := range months[start:end] {
			profit += m.Rent - m.Interest
		}
		if profit > 0 {
			months[end-1].Tax = -profit * float64(taxRate)
		}
	}

	for i := range months {
		months[i].Net = months[i].Operating + months[i].Tax
	}

	return months
}
