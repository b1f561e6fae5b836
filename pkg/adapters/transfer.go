package adapters

import (
	"github.com/yzxotic23-commits/nexsight/pkg/models/api"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
)

func MapTransferReportDomainToApi(r domain.TransferReport) api.TransferReport {
	out := api.TransferReport{
		Currency:          r.Currency,
		TotalTransaction:  r.TotalTransaction,
		TotalAmount:       r.TotalAmount,
		AvgProcessingTime: r.AvgProcessingTime,
		DailyCounts:       r.DailyCounts,
		ChartData: api.TransferChart{
			OverdueTrans:      r.Chart.OverdueTrans,
			AvgProcessingTime: r.Chart.AvgProcessingTime,
			TransactionVolume: r.Chart.TransactionVolume,
		},
		SlowTransactions: []api.SlowTransaction{},
		SlowTransactionSummary: api.SlowTransactionSummary{
			TotalSlowTransaction: r.SlowTransactionSummary.TotalSlowTransaction,
			AvgProcessingTime:    r.SlowTransactionSummary.AvgProcessingTime,
			Brand:                r.SlowTransactionSummary.Brand,
		},
		BrandComparison: []api.BrandStats{},
	}

	for _, s := range r.SlowTransactions {
		out.SlowTransactions = append(out.SlowTransactions, api.SlowTransaction{
			Brand:          s.Brand,
			CustomerName:   s.CustomerName,
			Amount:         s.Amount,
			ProcessingTime: s.ProcessingTime,
			Completed:      s.Completed,
			Date:           s.Date,
			OperatorGroup:  s.OperatorGroup,
		})
	}
	for _, b := range r.BrandComparison {
		out.BrandComparison = append(out.BrandComparison, api.BrandStats{
			Brand:            b.Brand,
			AvgTime:          b.AvgTime,
			TotalTransaction: b.TotalTransaction,
			TotalOverdue:     b.TotalOverdue,
		})
	}

	return out
}
