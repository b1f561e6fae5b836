package adapters

import (
	"github.com/yzxotic23-commits/nexsight/pkg/models/api"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
)

func MapIssueStoreToDomain(issue store.IssueRecord) domain.Record {
	return domain.Record{
		ID:         issue.ID,
		ProjectKey: issue.ProjectKey,
		CreatedAt:  issue.CreatedAt,
		Labels:     issue.Labels,
		Fields: map[string]string{
			domain.FieldRentalAmount:     issue.RentalAmount,
			domain.FieldSellingPrice:     issue.SellingPrice,
			domain.FieldCommissionAmount: issue.CommissionAmount,
		},
	}
}

func MapWealthReportDomainToApi(r domain.WealthReport) api.WealthReport {
	return api.WealthReport{
		TotalRentedAccounts:         r.TotalRentedAccounts,
		TotalRentedAmount:           r.TotalRentedAmount,
		PreviousMonthRentedAccounts: r.PreviousMonthRentedAccounts,
		RentalTrendPercentage:       r.RentalTrendPercentage,
		TotalSalesQuantity:          r.TotalSalesQuantity,
		TotalSalesAmount:            r.TotalSalesAmount,
		TotalAccountCreated:         r.TotalAccountCreated,
		PreviousMonthAccountCreated: r.PreviousMonthAccountCreated,
		GrowthRate:                  r.GrowthRate,
		DailyAccountCreation:        r.DailyAccountCreation,
		RentalTrend:                 r.RentalTrend,
		SalesTrend:                  r.SalesTrend,
		UsageVolumeTrend:            r.UsageVolumeTrend,
		Cohort: api.CohortMeta{
			MonthPattern: r.Cohort.MonthPattern,
			UsedFallback: r.Cohort.UsedFallback,
		},
	}
}

func MapWNLECountDomainToApi(c domain.WNLECount) api.WNLECount {
	return api.WNLECount{
		Month: c.Month.String(),
		Count: c.Count,
		Daily: c.Daily,
	}
}
