package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

type Settings struct {
	DSN string
}

// NewDB opens a connection pool against the hosted Postgres instance.
func NewDB(settings Settings) (*sql.DB, error) {
	if settings.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	db, err := sql.Open("postgres", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
