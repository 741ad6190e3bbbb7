package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`

	Search struct {
		Mode        string  `mapstructure:"mode"`     // "substring" or "ranked"
		MinRank     float64 `mapstructure:"min_rank"` // ranked mode relevance floor
		NameWeight  string  `mapstructure:"name_weight"`
		QuoteWeight string  `mapstructure:"quote_weight"`
		PageSize    int     `mapstructure:"page_size"`
	} `mapstructure:"search"`

	Seed struct {
		Count int `mapstructure:"count"`
	} `mapstructure:"seed"`

	Auth struct {
		JWTSecret string `mapstructure:"jwt_secret"`
	} `mapstructure:"auth"`
}

// Load reads config.yaml from the working directory when present and lets
// environment variables override everything. DATABASE_URL and JWT_SECRET
// are bound explicitly so the usual deployment variables work unprefixed.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("search.mode", "substring")
	v.SetDefault("search.min_rank", 0.3)
	v.SetDefault("search.name_weight", "B")
	v.SetDefault("search.quote_weight", "A")
	v.SetDefault("search.page_size", 10)
	v.SetDefault("seed.count", 10000)

	v.AutomaticEnv()
	v.BindEnv("database.dsn", "DATABASE_URL")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")

	if err := v.ReadInConfig(); err != nil {
		// Running on env vars alone is fine; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
