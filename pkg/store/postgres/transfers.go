package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/models/store"
)

// ErrUnknownMarket marks a currency with no backing table. Callers treat
// it as an empty report, not a failure.
var ErrUnknownMarket = errors.New("unknown market currency")

// TransferStore reads deposit/withdraw rows from the per-currency tables.
type TransferStore interface {
	GetTransfers(
		ctx context.Context,
		kind domain.TransferKind,
		currency string,
		window domain.DateWindow,
		brand string,
	) ([]store.TransferRecord, error)
}

type transferStore struct {
	pools *Pools
}

func NewTransferStore(pools *Pools) (TransferStore, error) {
	if pools == nil {
		return nil, fmt.Errorf("connection pools are nil")
	}
	return &transferStore{pools: pools}, nil
}

// transferTable routes a kind+currency pair to its table. The MYR tables
// predate the multi-market split and carry no suffix.
func transferTable(kind domain.TransferKind, currency string) (string, bool) {
	if !kind.Valid() {
		return "", false
	}
	switch currency {
	case domain.CurrencyMYR:
		return string(kind), true
	case domain.CurrencySGD:
		return string(kind) + "_sgd", true
	case domain.CurrencyUSC:
		return string(kind) + "_usc", true
	}
	return "", false
}

func (s *transferStore) GetTransfers(
	ctx context.Context,
	kind domain.TransferKind,
	currency string,
	window domain.DateWindow,
	brand string,
) ([]store.TransferRecord, error) {
	logger := zerolog.Ctx(ctx)

	table, ok := transferTable(kind, currency)
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownMarket, kind, currency)
	}

	query := fmt.Sprintf(`
		SELECT date::text, line, user_name, amount::text, process_time, completed, operator_group
		FROM %s
		WHERE date >= $1 AND date <= $2`, table)

	args := []any{
		window.Start.UTC().Format("2006-01-02"),
		window.End.UTC().Format("2006-01-02"),
	}
	brand = strings.TrimSpace(brand)
	if brand != "" && brand != "ALL" {
		query += " AND line ILIKE $3"
		args = append(args, "%"+brand+"%")
	}

	rows, err := s.pools.DB(currency).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s %s query failed: %w", currency, kind, err)
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close transfer query rows")
		}
	}(rows)

	var records []store.TransferRecord
	for rows.Next() {
		var date, line, userName, amount, processTime, completed, operatorGroup sql.NullString
		if err := rows.Scan(&date, &line, &userName, &amount, &processTime, &completed, &operatorGroup); err != nil {
			return nil, err
		}
		records = append(records, store.TransferRecord{
			Date:          date.String,
			Line:          line.String,
			UserName:      userName.String,
			Amount:        amount.String,
			ProcessTime:   processTime.String,
			Completed:     completed.String,
			OperatorGroup: operatorGroup.String,
		})
	}

	return records, rows.Err()
}
