package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Market is one hosted-database connection profile.
type Market struct {
	Currency string
	DSN      string
}

// Registry resolves per-market database profiles from an ini file with
// one section per currency:
//
//	[MYR]
//	dsn = postgres://...
type Registry interface {
	GetMarkets(ctx context.Context) ([]string, error)
	GetMarket(ctx context.Context, currency string) (*Market, error)
}

type marketRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &marketRegistry{cfg: cfg}, nil
}

func (mr *marketRegistry) GetMarkets(_ context.Context) ([]string, error) {
	var markets []string
	for _, section := range mr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			markets = append(markets, section.Name())
		}
	}
	return markets, nil
}

func (mr *marketRegistry) GetMarket(_ context.Context, currency string) (*Market, error) {
	section, err := mr.cfg.GetSection(currency)
	if err != nil {
		return nil, fmt.Errorf("market %s not found", currency)
	}

	return &Market{
		Currency: currency,
		DSN:      section.Key("dsn").String(),
	}, nil
}
