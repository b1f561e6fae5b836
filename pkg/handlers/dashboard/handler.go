package dashboard

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/yzxotic23-commits/nexsight/pkg/adapters"
	"github.com/yzxotic23-commits/nexsight/pkg/cache"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
	"github.com/yzxotic23-commits/nexsight/pkg/services/rental"
	"github.com/yzxotic23-commits/nexsight/pkg/services/transfer"
	"github.com/yzxotic23-commits/nexsight/pkg/services/wealth"
)

const (
	dateLayout      = "2006-01-02"
	defaultCacheTTL = 2 * time.Minute
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Handler struct {
	wealth    wealth.Service
	transfers transfer.Service
	rentals   rental.Service
	cache     cache.Cache
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewHandler(
	wealthSvc wealth.Service,
	transferSvc transfer.Service,
	rentalSvc rental.Service,
	responseCache cache.Cache,
	cacheTTL time.Duration,
) *Handler {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &Handler{
		wealth:    wealthSvc,
		transfers: transferSvc,
		rentals:   rentalSvc,
		cache:     responseCache,
		cacheTTL:  cacheTTL,
		now:       time.Now,
	}
}

func (h *Handler) WealthReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	start, err := parseDateParam(r, "startDate", h.now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
		return
	}
	if _, err := parseDateParam(r, "endDate", h.now().UTC()); err != nil {
		writeError(w, http.StatusBadRequest, "invalid endDate, expected YYYY-MM-DD")
		return
	}

	if h.serveCached(w, r) {
		return
	}

	report, err := h.wealth.MonthlyReport(ctx, domain.MonthOf(start))
	if err != nil {
		logger.Error().Err(err).Msg("monthly wealth report failed")
		writeError(w, http.StatusInternalServerError, "failed to build wealth report")
		return
	}

	h.respond(w, r, adapters.MapWealthReportDomainToApi(*report))
}

func (h *Handler) WNLECount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	start, err := parseDateParam(r, "startDate", h.now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid startDate, expected YYYY-MM-DD")
		return
	}

	if h.serveCached(w, r) {
		return
	}

	count, err := h.wealth.WNLECount(ctx, domain.MonthOf(start))
	if err != nil {
		logger.Error().Err(err).Msg("wnle count failed")
		writeError(w, http.StatusInternalServerError, "failed to count new location accounts")
		return
	}

	h.respond(w, r, adapters.MapWNLECountDomainToApi(*count))
}

func (h *Handler) TransferReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	kind := domain.TransferKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		writeError(w, http.StatusNotFound, "unknown transfer kind")
		return
	}

	window, err := h.windowParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = domain.CurrencyMYR
	}
	brand := r.URL.Query().Get("brand")

	if h.serveCached(w, r) {
		return
	}

	report, err := h.transfers.Report(ctx, kind, currency, window, brand)
	if err != nil {
		logger.Error().Err(err).
			Str("kind", string(kind)).
			Str("currency", currency).
			Msg("transfer report failed")
		writeError(w, http.StatusInternalServerError, "failed to build transfer report")
		return
	}

	h.respond(w, r, adapters.MapTransferReportDomainToApi(*report))
}

func (h *Handler) CombinedTransferReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	kind := domain.TransferKind(chi.URLParam(r, "kind"))
	if !kind.Valid() {
		writeError(w, http.StatusNotFound, "unknown transfer kind")
		return
	}

	window, err := h.windowParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	if h.serveCached(w, r) {
		return
	}

	report, err := h.transfers.CombinedReport(ctx, kind, window)
	if err != nil {
		logger.Error().Err(err).Str("kind", string(kind)).Msg("combined transfer report failed")
		writeError(w, http.StatusInternalServerError, "failed to build combined transfer report")
		return
	}

	h.respond(w, r, adapters.MapTransferReportDomainToApi(*report))
}

func (h *Handler) RentalBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	window, err := h.windowParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = domain.CurrencyMYR
	}

	if h.serveCached(w, r) {
		return
	}

	book, err := h.rentals.MarketBook(ctx, currency, window)
	if err != nil {
		logger.Error().Err(err).Str("currency", currency).Msg("rental book failed")
		writeError(w, http.StatusInternalServerError, "failed to build rental book")
		return
	}

	h.respond(w, r, adapters.MapRentalBookDomainToApi(*book))
}

// windowParams reads startDate/endDate, defaulting to the current
// calendar month.
func (h *Handler) windowParams(r *http.Request) (domain.DateWindow, error) {
	month := domain.MonthOf(h.now().UTC())
	def := month.Window()

	start, err := parseDateParam(r, "startDate", def.Start)
	if err != nil {
		return domain.DateWindow{}, err
	}
	end, err := parseDateParam(r, "endDate", def.End)
	if err != nil {
		return domain.DateWindow{}, err
	}
	return domain.DateWindow{Start: start, End: end}, nil
}

func parseDateParam(r *http.Request, name string, defaultDate time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultDate, nil
	}
	return time.ParseInLocation(dateLayout, raw, time.UTC)
}

// cacheKey identifies a response by path and query; the refresh switch
// itself is never part of the key.
func cacheKey(r *http.Request) string {
	query := r.URL.Query()
	query.Del("refresh")
	return r.URL.Path + "?" + query.Encode()
}

func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request) bool {
	if h.cache == nil || r.URL.Query().Get("refresh") == "1" {
		return false
	}
	payload, ok := h.cache.Get(cacheKey(r))
	if !ok {
		return false
	}
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: payload})
	return true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, payload any) {
	if h.cache != nil {
		h.cache.Set(cacheKey(r), payload, h.cacheTTL)
	}
	writeJSON(w, r, http.StatusOK, envelope{Success: true, Data: payload})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode response")
	}
}
