package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/yzxotic23-commits/nexsight/pkg/cache"
	"github.com/yzxotic23-commits/nexsight/pkg/handlers/dashboard"
	nexsightmiddleware "github.com/yzxotic23-commits/nexsight/pkg/server/middleware"
	"github.com/yzxotic23-commits/nexsight/pkg/services/rental"
	"github.com/yzxotic23-commits/nexsight/pkg/services/transfer"
	"github.com/yzxotic23-commits/nexsight/pkg/services/wealth"
)

const defaultShutdownTimeout = 10 * time.Second

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Wealth    wealth.Service
	Transfers transfer.Service
	Rentals   rental.Service
	Cache     cache.Cache
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	CacheTTL        time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := dashboard.NewHandler(
		config.Dependencies.Wealth,
		config.Dependencies.Transfers,
		config.Dependencies.Rentals,
		config.Dependencies.Cache,
		config.CacheTTL,
	)

	router := chi.NewRouter()

	router.Use(nexsightmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/wealth/report", handler.WealthReport)
		r.Get("/wealth/wnle-count", handler.WNLECount)
		r.Get("/transfers/{kind}/report", handler.TransferReport)
		r.Get("/transfers/{kind}/combined", handler.CombinedTransferReport)
		r.Get("/rentals", handler.RentalBook)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
