package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
)

// RentalStore reads the bank-account rental book.
type RentalStore interface {
	GetAccounts(ctx context.Context, currency string, window domain.DateWindow) ([]store.RentalRow, error)
}

type rentalStore struct {
	pools *Pools
}

func NewRentalStore(pools *Pools) (RentalStore, error) {
	if pools == nil {
		return nil, fmt.Errorf("connection pools are nil")
	}
	return &rentalStore{pools: pools}, nil
}

func (s *rentalStore) GetAccounts(
	ctx context.Context,
	currency string,
	window domain.DateWindow,
) ([]store.RentalRow, error) {
	logger := zerolog.Ctx(ctx)
	query := `
		SELECT id, supplier, bank_account_name, status, department, sell_off,
		       start_date, currency, rental_commission::text, commission::text,
		       addition::text, remark
		FROM bank_price
		WHERE currency = $1
		  AND start_date >= $2
		  AND start_date <= $3
		ORDER BY created_at DESC`

	rows, err := s.pools.DB(currency).QueryContext(ctx, query,
		currency,
		window.Start.UTC().Format("2006-01-02"),
		window.End.UTC().Format("2006-01-02"),
	)
	if err != nil {
		return nil, fmt.Errorf("rental query failed: %w", err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close rental query rows")
		}
	}(rows)

	var records []store.RentalRow
	for rows.Next() {
		var (
			id, supplier, accountName, status, department, sellOff sql.NullString
			curr, rentalCommission, commission, addition, remark   sql.NullString
			startDate                                              sql.NullTime
		)
		if err := rows.Scan(&id, &supplier, &accountName, &status, &department,
			&sellOff, &startDate, &curr, &rentalCommission, &commission,
			&addition, &remark); err != nil {
			return nil, err
		}
		records = append(records, store.RentalRow{
			ID:               id.String,
			Supplier:         supplier.String,
			BankAccountName:  accountName.String,
			Status:           status.String,
			Department:       department.String,
			SellOff:          sellOff.String,
			StartDate:        startDate,
			Currency:         curr.String,
			RentalCommission: rentalCommission.String,
			Commission:       commission.String,
			Addition:         addition.String,
			Remark:           remark.String,
		})
	}

	return records, rows.Err()
}
