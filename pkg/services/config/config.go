package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type App struct {
	Addr         string        `mapstructure:"addr"`
	DatabaseURL  string        `mapstructure:"database_url" validate:"required"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	RequiredTag  string        `mapstructure:"required_tag"`
	MarketsPath  string        `mapstructure:"markets_path"`
	AllowTagOnly bool          `mapstructure:"allow_tag_only"`
}

// LoadApp reads the application config file and applies defaults for the
// optional knobs.
func LoadApp(path string) (*App, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("addr", ":8080")
	v.SetDefault("cache_ttl", "2m")
	v.SetDefault("required_tag", "wealths")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app config: %w", err)
	}
	return &cfg, nil
}
