package model

// SchedulePeriod is one payment period of the amortization schedule.
type SchedulePeriod struct {
	Period    int // 1-based
	Payment   float64
	Interest  float64
	Principal float64
	Remaining float64 // balance after this period's principal
}

// CashFlowMonth is one entry of the monthly cash-flow series over the
// project term. Tax is zero except at each year's last payment period,
// where it is the (non-positive) annual settlement.
type CashFlowMonth struct {
	Month     int // 1-based
	Rent      float64
	Payment   float64
	Interest  float64
	Principal float64
	Remaining float64
	Operating float64 // Rent - Payment
	Tax       float64 // <= 0, year-end only
	Net       float64 // Operating + Tax
}

// Summary aggregates headline metrics from the schedule and the
// cash-flow series. Taxes are reported as a positive amount paid.
type Summary struct {
	InitialEquity     float64
	TotalRent         float64
	TotalPayments     float64
	TotalInterest     float64
	TotalTaxes        float64
	NPV               float64
	LoanTermMonths    int
	ProjectTermMonths int
}

// TableRow is one display-oriented row of the tabular export. Row 0
// carries the initial equity outlay; rows 1..n mirror the cash-flow
// series month by month.
type TableRow struct {
	Month     int
	Rent      float64
	Payment   float64
	Interest  float64
	Principal float64
	Remaining float64
	Tax       float64
	PreTax    float64
	Net       float64
}
