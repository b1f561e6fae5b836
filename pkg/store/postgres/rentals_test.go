package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
)

func TestRentalStore_GetAccounts(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	cols := []string{
		"id", "supplier", "bank_account_name", "status", "department", "sell_off",
		"start_date", "currency", "rental_commission", "commission", "addition", "remark",
	}
	start := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(cols).
		AddRow("r1", "WEALTH+", "acc-1", "ACTIVE", "NP_INT_SGD", "", start, "SGD", "100", "38", "0", "").
		AddRow("r2", "WEALTH+", "acc-2", "INACTIVE", "NP_INT_SGD", "OFF", nil, "SGD", nil, "50", "10", nil)

	mock.ExpectQuery(`FROM bank_price`).
		WithArgs("SGD", "2026-01-01", "2026-01-31").
		WillReturnRows(rows)

	s, err := NewRentalStore(testPools(t, db))
	require.NoError(t, err)

	window := domain.Month{Year: 2026, Month: time.January}.Window()
	records, err := s.GetAccounts(context.Background(), "SGD", window)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "acc-1", records[0].BankAccountName)
	assert.True(t, records[0].StartDate.Valid)
	assert.Equal(t, start, records[0].StartDate.Time)

	assert.Equal(t, "OFF", records[1].SellOff)
	assert.False(t, records[1].StartDate.Valid)
	assert.Equal(t, "", records[1].RentalCommission)

	assert.NoError(t, mock.ExpectationsWereMet())
}
