package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
)

func record(day int, amount string) domain.Record {
	return domain.Record{
		CreatedAt: time.Date(2026, time.January, day, 10, 30, 0, 0, time.UTC),
		Fields:    map[string]string{"amount": amount},
	}
}

func TestAggregate(t *testing.T) {
	t.Run("empty cohort yields zero result", func(t *testing.T) {
		res := Aggregate(nil, Options{ValueField: "amount"})
		assert.Equal(t, 0, res.Count)
		assert.Equal(t, 0.0, res.Sum)
		assert.Equal(t, 0.0, res.Average)
		assert.Empty(t, res.Daily)
	})

	t.Run("count matches record length", func(t *testing.T) {
		records := []domain.Record{record(1, "10"), record(2, "20"), record(2, "5")}
		res := Aggregate(records, Options{ValueField: "amount"})
		assert.Equal(t, len(records), res.Count)
	})

	t.Run("sum average and daily series", func(t *testing.T) {
		records := []domain.Record{record(1, "10"), record(2, "20"), record(2, "5")}
		res := Aggregate(records, Options{ValueField: "amount"})
		assert.Equal(t, 35.0, res.Sum)
		assert.InDelta(t, 35.0/3.0, res.Average, 1e-9)
		assert.Equal(t, domain.DailySeries{
			"2026-01-01": 10,
			"2026-01-02": 25,
		}, res.Daily)
	})

	t.Run("bad numeric input coerces to zero", func(t *testing.T) {
		records := []domain.Record{record(1, "not-a-number"), record(1, ""), record(2, "1,500")}
		res := Aggregate(records, Options{ValueField: "amount"})
		assert.Equal(t, 1500.0, res.Sum)
		assert.Equal(t, 3, res.Count)
	})

	t.Run("count-only pass", func(t *testing.T) {
		records := []domain.Record{record(1, "10"), record(1, "20"), record(3, "30")}
		res := Aggregate(records, Options{})
		assert.Equal(t, 0.0, res.Sum)
		assert.Equal(t, domain.DailySeries{
			"2026-01-01": 2,
			"2026-01-03": 1,
		}, res.Daily)
	})

	t.Run("day truncation is UTC", func(t *testing.T) {
		// 2026-01-01T23:30-05:00 is 2026-01-02 in UTC.
		loc := time.FixedZone("EST", -5*3600)
		records := []domain.Record{{
			CreatedAt: time.Date(2026, time.January, 1, 23, 30, 0, 0, loc),
			Fields:    map[string]string{"amount": "1"},
		}}
		res := Aggregate(records, Options{ValueField: "amount"})
		assert.Contains(t, res.Daily, "2026-01-02")
	})
}

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name              string
		current, previous float64
		want              float64
	}{
		{name: "ten percent up", current: 110, previous: 100, want: 10},
		{name: "decline", current: 50, previous: 100, want: -50},
		{name: "zero previous", current: 42, previous: 0, want: 0},
		{name: "both zero", current: 0, previous: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, GrowthRate(tt.current, tt.previous), 1e-9)
		})
	}
}

func TestMerge(t *testing.T) {
	t.Run("weighted merge equals aggregating the concatenation", func(t *testing.T) {
		myr := []domain.Record{record(1, "10"), record(2, "30")}
		sgd := []domain.Record{record(2, "100")}
		usc := []domain.Record{record(3, "7"), record(3, "3"), record(4, "40")}

		merged := Merge(
			Aggregate(myr, Options{ValueField: "amount"}),
			Aggregate(sgd, Options{ValueField: "amount"}),
			Aggregate(usc, Options{ValueField: "amount"}),
		)

		all := append(append(append([]domain.Record{}, myr...), sgd...), usc...)
		direct := Aggregate(all, Options{ValueField: "amount"})

		assert.Equal(t, direct.Count, merged.Count)
		assert.Equal(t, direct.Sum, merged.Sum)
		assert.InDelta(t, direct.Average, merged.Average, 1e-9)
		assert.Equal(t, direct.Daily, merged.Daily)
	})

	t.Run("empty inputs merge to zero result", func(t *testing.T) {
		merged := Merge(domain.AggregateResult{}, domain.AggregateResult{})
		assert.Equal(t, 0, merged.Count)
		assert.Equal(t, 0.0, merged.Average)
	})

	t.Run("weights averages by count", func(t *testing.T) {
		a := domain.AggregateResult{Count: 3, Average: 10, Daily: domain.DailySeries{}}
		b := domain.AggregateResult{Count: 1, Average: 50, Daily: domain.DailySeries{}}
		merged := Merge(a, b)
		require.Equal(t, 4, merged.Count)
		assert.InDelta(t, 20.0, merged.Average, 1e-9)
	})
}
