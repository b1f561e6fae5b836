package postgres

import (
	"database/sql"
	"fmt"
)

// Pools routes queries to a per-market connection. Markets without their
// own profile share the default pool.
type Pools struct {
	base    *sql.DB
	markets map[string]*sql.DB
}

func NewPools(base *sql.DB) (*Pools, error) {
	if base == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Pools{
		base:    base,
		markets: make(map[string]*sql.DB),
	}, nil
}

// AddMarket registers a dedicated connection for one currency.
func (p *Pools) AddMarket(currency string, db *sql.DB) {
	p.markets[currency] = db
}

// DB returns the connection serving the given currency.
func (p *Pools) DB(currency string) *sql.DB {
	if db, ok := p.markets[currency]; ok {
		return db
	}
	return p.base
}

// Close closes the default pool and every market pool.
func (p *Pools) Close() error {
	err := p.base.Close()
	for _, db := range p.markets {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
