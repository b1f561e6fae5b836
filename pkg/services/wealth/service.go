package wealth

import (
	"context"
	"fmt"

	"github.com/yzxotic23-commits/nexsight/pkg/adapters"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
	"github.com/yzxotic23-commits/nexsight/pkg/services/report"
)

// IssueSource is the slice of the record store this service reads.
type IssueSource interface {
	GetIssues(ctx context.Context, projectKeys []string, window domain.DateWindow) ([]store.IssueRecord, error)
}

// Service builds the monthly wealth-account production reports.
type Service interface {
	MonthlyReport(ctx context.Context, month domain.Month) (*domain.WealthReport, error)
	WNLECount(ctx context.Context, month domain.Month) (*domain.WNLECount, error)
}

type service struct {
	issues     IssueSource
	classifier report.Classifier
}

func NewService(issues IssueSource, classifier report.Classifier) Service {
	return &service{issues: issues, classifier: classifier}
}

func (s *service) MonthlyReport(ctx context.Context, month domain.Month) (*domain.WealthReport, error) {
	window := month.Window()
	prevMonth := month.Previous()

	projects := []string{domain.ProjectWealthOps, domain.ProjectWealthNewLoc}

	current, err := s.fetch(ctx, projects, window)
	if err != nil {
		return nil, fmt.Errorf("fetch current month issues: %w", err)
	}
	previous, err := s.fetch(ctx, projects, prevMonth.Window())
	if err != nil {
		return nil, fmt.Errorf("fetch previous month issues: %w", err)
	}

	weo := byProject(current, domain.ProjectWealthOps)
	prevWEO := byProject(previous, domain.ProjectWealthOps)

	cohort, usedFallback := s.classifier.Filter(ctx, weo, month)
	prevCohort, _ := s.classifier.Filter(ctx, prevWEO, prevMonth)

	rented := report.Aggregate(cohort, report.Options{ValueField: domain.FieldRentalAmount})

	salesTotal, salesTrend := salesAmounts(weo)

	created := report.Aggregate(current, report.Options{})
	usage := report.Aggregate(weo, report.Options{})

	r := &domain.WealthReport{
		Month: month,

		TotalRentedAccounts:         rented.Count,
		TotalRentedAmount:           rented.Sum,
		PreviousMonthRentedAccounts: len(prevCohort),
		RentalTrendPercentage: report.GrowthRate(
			float64(rented.Count), float64(len(prevCohort))),

		TotalSalesQuantity: len(weo),
		TotalSalesAmount:   salesTotal,

		TotalAccountCreated:         created.Count,
		PreviousMonthAccountCreated: len(previous),
		GrowthRate: report.GrowthRate(
			float64(created.Count), float64(len(previous))),

		DailyAccountCreation: created.Daily,
		RentalTrend:          rented.Daily,
		SalesTrend:           salesTrend,
		UsageVolumeTrend:     usage.Daily,

		Cohort: domain.CohortMeta{
			MonthPattern: report.MonthPatterns(month)[0],
			UsedFallback: usedFallback,
		},
	}
	return r, nil
}

func (s *service) WNLECount(ctx context.Context, month domain.Month) (*domain.WNLECount, error) {
	records, err := s.fetch(ctx, []string{domain.ProjectWealthNewLoc}, month.Window())
	if err != nil {
		return nil, fmt.Errorf("fetch WNLE issues: %w", err)
	}

	var cohort []domain.Record
	for _, r := range records {
		if report.MatchesMonth(r.Labels, month) {
			cohort = append(cohort, r)
		}
	}

	counted := report.Aggregate(cohort, report.Options{})
	return &domain.WNLECount{
		Month: month,
		Count: counted.Count,
		Daily: counted.Daily,
	}, nil
}

func (s *service) fetch(
	ctx context.Context,
	projects []string,
	window domain.DateWindow,
) ([]domain.Record, error) {
	rows, err := s.issues.GetIssues(ctx, projects, window)
	if err != nil {
		return nil, err
	}
	records := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, adapters.MapIssueStoreToDomain(row))
	}
	return records, nil
}

func byProject(records []domain.Record, projectKey string) []domain.Record {
	var out []domain.Record
	for _, r := range records {
		if r.ProjectKey == projectKey {
			out = append(out, r)
		}
	}
	return out
}

// salesAmounts computes the per-record sales margin (selling price minus
// rental and commission amounts) over records that carry a selling price.
func salesAmounts(records []domain.Record) (float64, domain.DailySeries) {
	total := 0.0
	trend := domain.DailySeries{}
	for _, r := range records {
		if r.Field(domain.FieldSellingPrice) == "" {
			continue
		}
		margin := report.ParseMoney(r.Field(domain.FieldSellingPrice)) -
			report.ParseMoney(r.Field(domain.FieldRentalAmount)) -
			report.ParseMoney(r.Field(domain.FieldCommissionAmount))
		total += margin
		trend.Add(r.CreatedAt, margin)
	}
	return total, trend
}
