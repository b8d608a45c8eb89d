package model

// CostBreakdown is the derived spend estimate for one inventory snapshot.
// Total equals the sum of the four subtotals; ProjectedMonthly extrapolates
// linearly from Total and PeriodDays. All amounts are USD rounded to cents.
type CostBreakdown struct {
	ClientID   string
	Provider   Provider
	PeriodDays int

	Compute  float64
	Storage  float64
	Network  float64
	Database float64

	Total            float64
	ProjectedMonthly float64
}
