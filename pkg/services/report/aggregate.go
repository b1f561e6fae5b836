package report

import (
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
)

// Options selects the value field for one aggregation pass. With an empty
// ValueField the pass counts records only: Sum stays 0 and the daily series
// holds per-day counts.
type Options struct {
	ValueField string
}

// Aggregate reduces a cohort of records into totals and a daily series.
// Bad numeric input coerces to 0 and an empty cohort yields a zero result;
// the function never fails.
func Aggregate(records []domain.Record, opts Options) domain.AggregateResult {
	res := domain.AggregateResult{
		Count: len(records),
		Daily: domain.DailySeries{},
	}

	for _, r := range records {
		if opts.ValueField == "" {
			res.Daily.Add(r.CreatedAt, 1)
			continue
		}
		v := ParseMoney(r.Field(opts.ValueField))
		res.Sum += v
		res.Daily.Add(r.CreatedAt, v)
	}

	if res.Count > 0 {
		res.Average = res.Sum / float64(res.Count)
	}
	return res
}

// GrowthRate returns the percentage change from previous to current,
// defined as 0 when there is no previous-period value to compare against.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// Merge combines pre-aggregated per-market results into one view: counts,
// sums and daily series add, and the average is recomputed count-weighted.
// The dashboard always shows an ALL-markets view next to the per-market
// ones, so this is a first-class operation of the engine.
func Merge(results ...domain.AggregateResult) domain.AggregateResult {
	merged := domain.AggregateResult{Daily: domain.DailySeries{}}

	var weighted float64
	for _, r := range results {
		merged.Count += r.Count
		merged.Sum += r.Sum
		weighted += r.Average * float64(r.Count)
		for d, v := range r.Daily {
			merged.Daily[d] += v
		}
	}

	if merged.Count > 0 {
		merged.Average = weighted / float64(merged.Count)
	}
	return merged
}
