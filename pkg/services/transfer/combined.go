package transfer

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/services/report"
	"golang.org/x/sync/errgroup"
)

// CombinedReport fetches every configured market concurrently and merges
// the per-market reports with the engine's count-weighted merge. A market
// that fails contributes zeros and is logged; the combined view never
// fails because one market's fetch did.
func (s *service) CombinedReport(
	ctx context.Context,
	kind domain.TransferKind,
	window domain.DateWindow,
) (*domain.TransferReport, error) {
	logger := zerolog.Ctx(ctx)

	reports := make([]*domain.TransferReport, len(s.markets))

	g, gctx := errgroup.WithContext(ctx)
	for i, currency := range s.markets {
		i, currency := i, currency
		g.Go(func() error {
			r, err := s.Report(gctx, kind, currency, window, "")
			if err != nil {
				logger.Error().Err(err).
					Str("currency", currency).
					Str("kind", string(kind)).
					Msg("market fetch failed, combined view degrades to zero for it")
				r = emptyReport(kind, currency)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := emptyReport(kind, domain.CurrencyAll)

	results := make([]domain.AggregateResult, 0, len(reports))
	for _, r := range reports {
		results = append(results, domain.AggregateResult{
			Count:   r.TotalTransaction,
			Sum:     r.TotalAmount,
			Average: r.AvgProcessingTime,
			Daily:   r.DailyCounts,
		})
	}
	merged := report.Merge(results...)

	combined.TotalTransaction = merged.Count
	combined.TotalAmount = merged.Sum
	combined.AvgProcessingTime = merged.Average
	combined.DailyCounts = merged.Daily

	brandTotals := map[string]*domain.BrandStats{}
	brandWeights := map[string]int{}
	for _, r := range reports {
		for d, v := range r.Chart.OverdueTrans {
			combined.Chart.OverdueTrans[d] += v
		}
		for d, v := range r.Chart.TransactionVolume {
			combined.Chart.TransactionVolume[d] += v
		}

		for _, b := range r.BrandComparison {
			agg := brandTotals[b.Brand]
			if agg == nil {
				agg = &domain.BrandStats{Brand: b.Brand}
				brandTotals[b.Brand] = agg
			}
			agg.AvgTime += b.AvgTime * float64(b.TotalTransaction)
			brandWeights[b.Brand] += b.TotalTransaction
			agg.TotalTransaction += b.TotalTransaction
			agg.TotalOverdue += b.TotalOverdue
		}

		if len(r.SlowTransactions) > 0 && len(combined.SlowTransactions) < slowTransactionLimit {
			room := slowTransactionLimit - len(combined.SlowTransactions)
			if room > len(r.SlowTransactions) {
				room = len(r.SlowTransactions)
			}
			combined.SlowTransactions = append(combined.SlowTransactions, r.SlowTransactions[:room]...)
		}
	}

	names := make([]string, 0, len(brandTotals))
	for name := range brandTotals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b := brandTotals[name]
		if w := brandWeights[name]; w > 0 {
			b.AvgTime = round1(b.AvgTime / float64(w))
		}
		combined.BrandComparison = append(combined.BrandComparison, *b)
	}

	combined.SlowTransactionSummary = slowSummary(combined.SlowTransactions)
	return combined, nil
}
