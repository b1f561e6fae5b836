package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/runtime/terminal/export"
	"github.com/yzxotic23-commits/nexsight/pkg/services/rental"
)

type RentalsCmd struct {
	currency string
	month    string
	service  rental.Service
	reporter *export.Reporter
}

func NewRentalsCmd(service rental.Service, reporter *export.Reporter) *cobra.Command {
	rc := &RentalsCmd{service: service, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "rentals",
		Short: "Print the rental book summary for one market",
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.currency, "currency", domain.CurrencyMYR, "Market currency (MYR, SGD, USC)")
	cmd.Flags().StringVar(&rc.month, "month", "", "Book month as YYYY-MM (default: current month)")

	return cmd
}

func (rc *RentalsCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
	defer cancel()

	month, err := parseMonth(rc.month)
	if err != nil {
		return err
	}
	window := month.Window()

	book, err := rc.service.MarketBook(ctx, rc.currency, window)
	if err != nil {
		return fmt.Errorf("failed to build rental book: %w", err)
	}

	days := int(window.End.Sub(window.Start).Hours()/24) + 1
	return rc.reporter.Handle(&domain.Report{
		Title: fmt.Sprintf("Rental book %s %s", book.Currency, month.String()),
		Period: domain.TimePeriod{
			Start:    window.Start,
			End:      window.End,
			Duration: days,
		},
		Sections: []domain.ReportSection{
			{
				Title: "Summary",
				Summary: map[string]any{
					"Total accounts":  book.Summary.TotalAccounts,
					"Active accounts": book.Summary.ActiveAccounts,
					"Total payment":   fmt.Sprintf("%.2f", book.Summary.TotalPayment),
				},
			},
		},
	})
}
