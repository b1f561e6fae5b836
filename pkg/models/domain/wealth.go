package domain

// CohortMeta describes how the wealth cohort was selected, so callers can
// tell a strict month match from the degraded tag-only fallback.
type CohortMeta struct {
	MonthPattern string
	UsedFallback bool
}

// WealthReport is the monthly wealth-account production report.
type WealthReport struct {
	Month Month

	TotalRentedAccounts         int
	TotalRentedAmount           float64
	PreviousMonthRentedAccounts int
	RentalTrendPercentage       float64

	TotalSalesQuantity int
	TotalSalesAmount   float64

	TotalAccountCreated         int
	PreviousMonthAccountCreated int
	GrowthRate                  float64

	DailyAccountCreation DailySeries
	RentalTrend          DailySeries
	SalesTrend           DailySeries
	UsageVolumeTrend     DailySeries

	Cohort CohortMeta
}

// WNLECount is the month-labelled count of new-location issues.
type WNLECount struct {
	Month Month
	Count int
	Daily DailySeries
}
