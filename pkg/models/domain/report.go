package domain

import (
	"sort"
	"time"
)

// DailySeries maps a calendar date (YYYY-MM-DD, UTC) to a numeric aggregate.
type DailySeries map[string]float64

func (s DailySeries) Add(t time.Time, v float64) {
	key := t.UTC().Format("2006-01-02")
	s[key] += v
}

// Dates returns the series keys in ascending order.
func (s DailySeries) Dates() []string {
	dates := make([]string, 0, len(s))
	for d := range s {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// AggregateResult is the value object produced by one aggregation pass.
type AggregateResult struct {
	Count   int
	Sum     float64
	Average float64
	Daily   DailySeries
}

// Report is the renderable form of a monthly report, consumed by the
// terminal reporter.
type Report struct {
	Title    string
	Period   TimePeriod
	Sections []ReportSection
}

// TimePeriod represents the report's time range.
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// ReportSection is a logical section in the report.
type ReportSection struct {
	Title   string
	Summary map[string]any
}
