package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/runtime/terminal/export"
	"github.com/yzxotic23-commits/nexsight/pkg/services/wealth"
)

type WealthCmd struct {
	month    string
	service  wealth.Service
	reporter *export.Reporter
}

func NewWealthCmd(service wealth.Service, reporter *export.Reporter) *cobra.Command {
	wc := &WealthCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "wealth",
		Short: "Print the monthly wealth-account production report",
		RunE:  wc.run,
	}

	cmd.Flags().StringVar(&wc.month, "month", "", "Report month as YYYY-MM (default: current month)")

	return cmd
}

func (wc *WealthCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	month, err := parseMonth(wc.month)
	if err != nil {
		return err
	}

	report, err := wc.service.MonthlyReport(ctx, month)
	if err != nil {
		return fmt.Errorf("failed to build monthly report: %w", err)
	}

	return wc.reporter.Handle(monthlyReportView(report))
}

func parseMonth(raw string) (domain.Month, error) {
	if raw == "" {
		return domain.MonthOf(time.Now().UTC()), nil
	}
	t, err := time.ParseInLocation("2006-01", raw, time.UTC)
	if err != nil {
		return domain.Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM", raw)
	}
	return domain.MonthOf(t), nil
}

func monthlyReportView(r *domain.WealthReport) *domain.Report {
	window := r.Month.Window()
	days := int(window.End.Sub(window.Start).Hours()/24) + 1

	rentalSection := domain.ReportSection{
		Title: "Rentals",
		Summary: map[string]any{
			"Rented accounts":         r.TotalRentedAccounts,
			"Rented amount":           fmt.Sprintf("%.2f", r.TotalRentedAmount),
			"Previous month accounts": r.PreviousMonthRentedAccounts,
			"Rental trend":            fmt.Sprintf("%.1f%%", r.RentalTrendPercentage),
		},
	}
	if r.Cohort.UsedFallback {
		rentalSection.Summary["Cohort"] = "tag-only fallback"
	}

	return &domain.Report{
		Title: fmt.Sprintf("Wealth production report %s", r.Month.String()),
		Period: domain.TimePeriod{
			Start:    window.Start,
			End:      window.End,
			Duration: days,
		},
		Sections: []domain.ReportSection{
			rentalSection,
			{
				Title: "Sales",
				Summary: map[string]any{
					"Sales quantity": r.TotalSalesQuantity,
					"Sales amount":   fmt.Sprintf("%.2f", r.TotalSalesAmount),
				},
			},
			{
				Title: "Accounts",
				Summary: map[string]any{
					"Created":                r.TotalAccountCreated,
					"Created previous month": r.PreviousMonthAccountCreated,
					"Growth rate":            fmt.Sprintf("%.1f%%", r.GrowthRate),
				},
			},
		},
	}
}
