package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yzxotic23-commits/nexsight/pkg/cache"
	"github.com/yzxotic23-commits/nexsight/pkg/models/api"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
)

type mockWealthService struct {
	mock.Mock
}

func (m *mockWealthService) MonthlyReport(ctx context.Context, month domain.Month) (*domain.WealthReport, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WealthReport), args.Error(1)
}

func (m *mockWealthService) WNLECount(ctx context.Context, month domain.Month) (*domain.WNLECount, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WNLECount), args.Error(1)
}

type mockTransferService struct {
	mock.Mock
}

func (m *mockTransferService) Report(
	ctx context.Context,
	kind domain.TransferKind,
	currency string,
	window domain.DateWindow,
	brand string,
) (*domain.TransferReport, error) {
	args := m.Called(ctx, kind, currency, window, brand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReport), args.Error(1)
}

func (m *mockTransferService) CombinedReport(
	ctx context.Context,
	kind domain.TransferKind,
	window domain.DateWindow,
) (*domain.TransferReport, error) {
	args := m.Called(ctx, kind, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferReport), args.Error(1)
}

type mockRentalService struct {
	mock.Mock
}

func (m *mockRentalService) MarketBook(
	ctx context.Context,
	currency string,
	window domain.DateWindow,
) (*domain.RentalBook, error) {
	args := m.Called(ctx, currency, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalBook), args.Error(1)
}

type apiEnvelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Error   string `json:"error"`
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	wealthSvc := new(mockWealthService)
	transferSvc := new(mockTransferService)
	rentalSvc := new(mockRentalService)

	webAPI := NewWebAPI(logger, Config{
		Addr:     ":8080",
		CacheTTL: time.Minute,
		Dependencies: Dependencies{
			Wealth:    wealthSvc,
			Transfers: transferSvc,
			Rentals:   rentalSvc,
			Cache:     cache.NewMemory(),
		},
	})
	testServer := httptest.NewServer(webAPI.router)
	defer testServer.Close()

	month := domain.Month{Year: 2026, Month: time.January}
	window := domain.DateWindow{
		Start: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	wealthSvc.On("MonthlyReport", mock.Anything, month).
		Return(&domain.WealthReport{Month: month, TotalRentedAccounts: 5}, nil)
	wealthSvc.On("WNLECount", mock.Anything, month).
		Return(&domain.WNLECount{Month: month, Count: 2}, nil)
	transferSvc.On("Report", mock.Anything, domain.TransferWithdraw, "SGD", window, "BRAND-A").
		Return(&domain.TransferReport{Currency: "SGD", TotalTransaction: 4}, nil)
	transferSvc.On("CombinedReport", mock.Anything, domain.TransferDeposit, window).
		Return(&domain.TransferReport{Currency: domain.CurrencyAll, TotalTransaction: 12}, nil)
	rentalSvc.On("MarketBook", mock.Anything, domain.CurrencyUSC, window).
		Return(&domain.RentalBook{Currency: domain.CurrencyUSC}, nil)

	t.Run("WealthReport", func(t *testing.T) {
		body := getOK(t, testServer.URL+"/api/v1/wealth/report?startDate=2026-01-15")
		var resp apiEnvelope[api.WealthReport]
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 5, resp.Data.TotalRentedAccounts)
	})

	t.Run("WNLECount", func(t *testing.T) {
		body := getOK(t, testServer.URL+"/api/v1/wealth/wnle-count?startDate=2026-01-15")
		var resp apiEnvelope[api.WNLECount]
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Data.Count)
	})

	t.Run("TransferReport", func(t *testing.T) {
		body := getOK(t, testServer.URL+
			"/api/v1/transfers/withdraw/report?startDate=2026-01-01&endDate=2026-01-31&currency=SGD&brand=BRAND-A")
		var resp apiEnvelope[api.TransferReport]
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 4, resp.Data.TotalTransaction)
	})

	t.Run("CombinedTransferReport", func(t *testing.T) {
		body := getOK(t, testServer.URL+
			"/api/v1/transfers/deposit/combined?startDate=2026-01-01&endDate=2026-01-31")
		var resp apiEnvelope[api.TransferReport]
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 12, resp.Data.TotalTransaction)
	})

	t.Run("RentalBook", func(t *testing.T) {
		body := getOK(t, testServer.URL+
			"/api/v1/rentals?currency=USC&startDate=2026-01-01&endDate=2026-01-31")
		var resp apiEnvelope[api.RentalBook]
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, domain.CurrencyUSC, resp.Data.Currency)
	})

	t.Run("UnknownTransferKind", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/transfers/refund/report")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestNewWebAPI_ShutdownTimeout(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(nil))

	webAPI := NewWebAPI(logger, Config{Addr: ":8080"})
	assert.Equal(t, defaultShutdownTimeout, webAPI.shutdownTimeout)

	webAPI = NewWebAPI(logger, Config{Addr: ":8080", ShutdownTimeout: 3 * time.Second})
	assert.Equal(t, 3*time.Second, webAPI.shutdownTimeout)
}

func getOK(t *testing.T, url string) []byte {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return body
}
