package transfer

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
	"github.com/yzxotic23-commits/nexsight/pkg/services/report"
	"github.com/yzxotic23-commits/nexsight/pkg/store/postgres"
)

// Keep slow-transaction payloads bounded; the dashboard table pages anyway.
const slowTransactionLimit = 200

// TransferSource is the slice of the record store this service reads.
type TransferSource interface {
	GetTransfers(
		ctx context.Context,
		kind domain.TransferKind,
		currency string,
		window domain.DateWindow,
		brand string,
	) ([]store.TransferRecord, error)
}

// Service builds deposit/withdraw dashboard reports per market and the
// combined all-markets view.
type Service interface {
	Report(
		ctx context.Context,
		kind domain.TransferKind,
		currency string,
		window domain.DateWindow,
		brand string,
	) (*domain.TransferReport, error)
	CombinedReport(ctx context.Context, kind domain.TransferKind, window domain.DateWindow) (*domain.TransferReport, error)
}

type service struct {
	transfers TransferSource
	markets   []string
}

func NewService(transfers TransferSource) Service {
	return &service{
		transfers: transfers,
		markets:   []string{domain.CurrencyMYR, domain.CurrencySGD, domain.CurrencyUSC},
	}
}

func (s *service) Report(
	ctx context.Context,
	kind domain.TransferKind,
	currency string,
	window domain.DateWindow,
	brand string,
) (*domain.TransferReport, error) {
	if !window.Valid() {
		return nil, fmt.Errorf("invalid date window: start %s is after end %s",
			window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))
	}

	rows, err := s.transfers.GetTransfers(ctx, kind, currency, window, brand)
	if err != nil {
		if errors.Is(err, postgres.ErrUnknownMarket) {
			return emptyReport(kind, currency), nil
		}
		return nil, err
	}

	return buildReport(kind, currency, rows), nil
}

func emptyReport(kind domain.TransferKind, currency string) *domain.TransferReport {
	return &domain.TransferReport{
		Currency:    currency,
		Kind:        kind,
		DailyCounts: domain.DailySeries{},
		Chart: domain.TransferChart{
			OverdueTrans:      domain.DailySeries{},
			AvgProcessingTime: domain.DailySeries{},
			TransactionVolume: domain.DailySeries{},
		},
		SlowTransactionSummary: domain.SlowTransactionSummary{Brand: "N/A"},
	}
}

func buildReport(kind domain.TransferKind, currency string, rows []store.TransferRecord) *domain.TransferReport {
	r := emptyReport(kind, currency)
	r.TotalTransaction = len(rows)

	type dayAvg struct {
		sum   float64
		count int
	}
	dailyAvg := map[string]*dayAvg{}

	type brandAcc struct {
		total, overdue int
		procSum        float64
		procCount      int
	}
	brands := map[string]*brandAcc{}

	var procSum float64
	var procCount int

	for _, row := range rows {
		amount := report.ParseMoney(row.Amount)
		secs := timeToSeconds(row.ProcessTime)
		r.TotalAmount += amount

		if row.Date != "" {
			r.DailyCounts[row.Date]++
			r.Chart.TransactionVolume[row.Date] += amount
			if secs > 0 {
				a := dailyAvg[row.Date]
				if a == nil {
					a = &dayAvg{}
					dailyAvg[row.Date] = a
				}
				a.sum += secs
				a.count++
			}
			if secs > domain.OverdueThresholdSeconds {
				r.Chart.OverdueTrans[row.Date]++
			}
		}

		if secs > 0 {
			procSum += secs
			procCount++
		}

		brandName := row.Line
		if brandName == "" {
			brandName = "UNKNOWN"
		}
		b := brands[brandName]
		if b == nil {
			b = &brandAcc{}
			brands[brandName] = b
		}
		b.total++
		if secs > 0 {
			b.procSum += secs
			b.procCount++
		}
		if secs > domain.OverdueThresholdSeconds {
			b.overdue++
		}

		if secs > domain.OverdueThresholdSeconds && len(r.SlowTransactions) < slowTransactionLimit {
			r.SlowTransactions = append(r.SlowTransactions, domain.SlowTransaction{
				Brand:          brandName,
				CustomerName:   firstNonEmpty(row.UserName, "N/A"),
				Amount:         amount,
				ProcessingTime: round1(secs),
				Completed:      row.Completed,
				Date:           row.Date,
				OperatorGroup:  row.OperatorGroup,
			})
		}
	}

	if procCount > 0 {
		r.AvgProcessingTime = procSum / float64(procCount)
	}
	for date, a := range dailyAvg {
		if a.count > 0 {
			r.Chart.AvgProcessingTime[date] = a.sum / float64(a.count)
		}
	}

	r.SlowTransactionSummary = slowSummary(r.SlowTransactions)

	names := make([]string, 0, len(brands))
	for name := range brands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b := brands[name]
		avg := 0.0
		if b.procCount > 0 {
			avg = round1(b.procSum / float64(b.procCount))
		}
		r.BrandComparison = append(r.BrandComparison, domain.BrandStats{
			Brand:            name,
			AvgTime:          avg,
			TotalTransaction: b.total,
			TotalOverdue:     b.overdue,
		})
	}

	return r
}

func slowSummary(slow []domain.SlowTransaction) domain.SlowTransactionSummary {
	summary := domain.SlowTransactionSummary{
		TotalSlowTransaction: len(slow),
		Brand:                "N/A",
	}
	if len(slow) == 0 {
		return summary
	}

	var sum float64
	for _, s := range slow {
		sum += s.ProcessingTime
	}
	summary.AvgProcessingTime = round1(sum / float64(len(slow)))
	summary.Brand = slow[0].Brand
	return summary
}

// timeToSeconds converts an operator clock string (HH:MM:SS) to seconds.
// Plain numeric strings pass through; anything else is 0.
func timeToSeconds(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}

	parts := strings.Split(s, ":")
	if len(parts) >= 2 {
		hours, _ := strconv.Atoi(parts[0])
		minutes, _ := strconv.Atoi(parts[1])
		var seconds float64
		if len(parts) > 2 {
			seconds, _ = strconv.ParseFloat(parts[2], 64)
		}
		return float64(hours)*3600 + float64(minutes)*60 + seconds
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
