package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yzxotic23-commits/nexsight/pkg/cache"
	"github.com/yzxotic23-commits/nexsight/pkg/server"
	"github.com/yzxotic23-commits/nexsight/pkg/services/config"
	"github.com/yzxotic23-commits/nexsight/pkg/services/rental"
	"github.com/yzxotic23-commits/nexsight/pkg/services/report"
	"github.com/yzxotic23-commits/nexsight/pkg/services/transfer"
	"github.com/yzxotic23-commits/nexsight/pkg/services/wealth"
	"github.com/yzxotic23-commits/nexsight/pkg/store/postgres"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the reporting dashboard server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "nexsight.yaml",
		"Path to the application config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadApp(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.DatabaseURL = dsn
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no database_url in %s and DATABASE_URL is unset", cfgPath)
	}

	db, err := postgres.NewDB(postgres.Settings{DSN: cfg.DatabaseURL})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	pools, err := postgres.NewPools(db)
	if err != nil {
		return err
	}
	defer pools.Close()

	if cfg.MarketsPath != "" {
		registry, err := config.NewRegistry(cfg.MarketsPath)
		if err != nil {
			return fmt.Errorf("failed to load market profiles: %w", err)
		}
		markets, err := registry.GetMarkets(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list market profiles: %w", err)
		}
		for _, currency := range markets {
			market, err := registry.GetMarket(cmd.Context(), currency)
			if err != nil {
				return fmt.Errorf("failed to load market %s: %w", currency, err)
			}
			if market.DSN == "" || market.DSN == cfg.DatabaseURL {
				continue
			}
			marketDB, err := postgres.NewDB(postgres.Settings{DSN: market.DSN})
			if err != nil {
				return fmt.Errorf("failed to connect to %s database: %w", currency, err)
			}
			pools.AddMarket(currency, marketDB)
			logger.Info().Str("currency", currency).Msg("dedicated market connection opened")
		}
	}

	classifier := report.Classifier{
		RequiredTag:   cfg.RequiredTag,
		AllowFallback: cfg.AllowTagOnly,
	}

	issueStore, err := postgres.NewIssueStore(db)
	if err != nil {
		return fmt.Errorf("failed to create issue store: %w", err)
	}
	transferStore, err := postgres.NewTransferStore(pools)
	if err != nil {
		return fmt.Errorf("failed to create transfer store: %w", err)
	}
	rentalStore, err := postgres.NewRentalStore(pools)
	if err != nil {
		return fmt.Errorf("failed to create rental store: %w", err)
	}

	deps := server.Dependencies{
		Wealth:    wealth.NewService(issueStore, classifier),
		Transfers: transfer.NewService(transferStore),
		Rentals:   rental.NewService(rentalStore),
		Cache:     cache.NewMemory(),
	}

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr:         cfg.Addr,
		CacheTTL:     cfg.CacheTTL,
		Dependencies: deps,
	})

	return webAPI.Start()
}
