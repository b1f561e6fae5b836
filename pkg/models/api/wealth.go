package api

// WealthReport is the JSON shape of the monthly wealth production report.
type WealthReport struct {
	TotalRentedAccounts         int                `json:"totalRentedAccounts"`
	TotalRentedAmount           float64            `json:"totalRentedAmount"`
	PreviousMonthRentedAccounts int                `json:"previousMonthRentedAccounts"`
	RentalTrendPercentage       float64            `json:"rentalTrendPercentage"`
	TotalSalesQuantity          int                `json:"totalSalesQuantity"`
	TotalSalesAmount            float64            `json:"totalSalesAmount"`
	TotalAccountCreated         int                `json:"totalAccountCreated"`
	PreviousMonthAccountCreated int                `json:"previousMonthAccountCreated"`
	GrowthRate                  float64            `json:"growthRate"`
	DailyAccountCreation        map[string]float64 `json:"dailyAccountCreation"`
	RentalTrend                 map[string]float64 `json:"rentalTrend"`
	SalesTrend                  map[string]float64 `json:"salesTrend"`
	UsageVolumeTrend            map[string]float64 `json:"usageVolumeTrend"`
	Cohort                      CohortMeta         `json:"cohort"`
}

// CohortMeta tells API consumers whether the degraded tag-only cohort was
// served in place of a strict month match.
type CohortMeta struct {
	MonthPattern string `json:"monthPattern"`
	UsedFallback bool   `json:"usedFallback"`
}

type WNLECount struct {
	Month string             `json:"month"`
	Count int                `json:"count"`
	Daily map[string]float64 `json:"daily"`
}
