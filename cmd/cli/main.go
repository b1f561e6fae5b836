package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/yzxotic23-commits/nexsight/pkg/runtime/terminal"
	"github.com/yzxotic23-commits/nexsight/pkg/services/rental"
	"github.com/yzxotic23-commits/nexsight/pkg/services/report"
	"github.com/yzxotic23-commits/nexsight/pkg/services/wealth"
	"github.com/yzxotic23-commits/nexsight/pkg/store/postgres"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return fmt.Errorf("DATABASE_URL is unset")
	}

	db, err := postgres.NewDB(postgres.Settings{DSN: dsn})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	pools, err := postgres.NewPools(db)
	if err != nil {
		return err
	}
	defer pools.Close()

	issueStore, err := postgres.NewIssueStore(db)
	if err != nil {
		return fmt.Errorf("failed to create issue store: %w", err)
	}
	rentalStore, err := postgres.NewRentalStore(pools)
	if err != nil {
		return fmt.Errorf("failed to create rental store: %w", err)
	}

	cli := terminal.NewCLI(terminal.Options{
		Wealth:  wealth.NewService(issueStore, report.Classifier{RequiredTag: "wealths"}),
		Rentals: rental.NewService(rentalStore),
		Output:  os.Stdout,
	})

	return cli.Execute()
}
