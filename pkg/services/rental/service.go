package rental

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yzxotic23-commits/nexsight/pkg/adapters"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
	"github.com/yzxotic23-commits/nexsight/pkg/services/report"
)

// RentalSource is the slice of the record store this service reads.
type RentalSource interface {
	GetAccounts(ctx context.Context, currency string, window domain.DateWindow) ([]store.RentalRow, error)
}

// Service builds the per-market bank-account rental book with prorated
// payment totals.
type Service interface {
	MarketBook(ctx context.Context, currency string, window domain.DateWindow) (*domain.RentalBook, error)
}

type service struct {
	rentals RentalSource
}

func NewService(rentals RentalSource) Service {
	return &service{rentals: rentals}
}

func (s *service) MarketBook(
	ctx context.Context,
	currency string,
	window domain.DateWindow,
) (*domain.RentalBook, error) {
	rows, err := s.rentals.GetAccounts(ctx, currency, window)
	if err != nil {
		return nil, fmt.Errorf("fetch rental accounts: %w", err)
	}

	book := &domain.RentalBook{Currency: currency}

	// Payments sum through decimal so a long book doesn't accumulate
	// float drift in its summary line.
	total := decimal.Zero
	for _, row := range rows {
		acc := adapters.MapRentalRowToDomain(row)

		input := report.ProrationInput{
			SellOff:          acc.SellOff,
			RentalCommission: acc.RentalCommission,
			Commission:       acc.Commission,
			Addition:         acc.Addition,
		}
		if acc.StartDate != nil {
			input.StartDate = acc.StartDate.Format("2006-01-02")
		}

		acc.PaymentTotal = report.CalculatePayment(ctx, input)
		total = total.Add(decimal.NewFromFloat(acc.PaymentTotal))

		book.Accounts = append(book.Accounts, acc)
		book.Summary.TotalAccounts++
		if strings.EqualFold(acc.Status, "ACTIVE") {
			book.Summary.ActiveAccounts++
		}
	}

	book.Summary.TotalPayment, _ = total.Round(2).Float64()
	return book, nil
}
