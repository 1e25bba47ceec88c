package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

type Server struct {
	Port              string `json:"port" toml:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec" toml:"request_timeout_sec"`
}

type Logging struct {
	Level  string `json:"level" toml:"level"`
	Format string `json:"format" toml:"format"`
}

type Stock struct {
	// Provider selects the adapter: alphavantage, twelvedata or yahoo.
	Provider string `json:"provider" toml:"provider"`
}

// Provider holds the settings shared by every stock provider. A zero
// MinRequestIntervalMS keeps the provider's own spacing; a negative one
// disables it. Every stock lookup spends two requests, so Burst should be
// at least twice the number of lookups expected back to back.
type Provider struct {
	APIKey               string `json:"api_key" toml:"api_key"`
	Endpoint             string `json:"endpoint" toml:"endpoint"`
	MinRequestIntervalMS int    `json:"min_request_interval_ms" toml:"min_request_interval_ms"`
	MaxRequestsPerMinute int    `json:"max_requests_per_minute" toml:"max_requests_per_minute"`
	Burst                int    `json:"burst" toml:"burst"`
}

func (p Provider) MinInterval() time.Duration {
	return time.Duration(p.MinRequestIntervalMS) * time.Millisecond
}

type CoinGecko struct {
	APIKey   string `json:"api_key" toml:"api_key"`
	Endpoint string `json:"endpoint" toml:"endpoint"`
}

type Chart struct {
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
	Dir    string `json:"dir" toml:"dir"`
}

type Config struct {
	Server       Server    `json:"server" toml:"server"`
	Logging      Logging   `json:"logging" toml:"logging"`
	Stock        Stock     `json:"stock" toml:"stock"`
	AlphaVantage Provider  `json:"alphavantage" toml:"alphavantage"`
	TwelveData   Provider  `json:"twelvedata" toml:"twelvedata"`
	Yahoo        Provider  `json:"yahoo" toml:"yahoo"`
	CoinGecko    CoinGecko `json:"coingecko" toml:"coingecko"`
	Chart        Chart     `json:"chart" toml:"chart"`
}

const (
	ProviderAlphaVantage = "alphavantage"
	ProviderTwelveData   = "twelvedata"
	ProviderYahoo        = "yahoo"
)

func Default() Config {
	return Config{
		Server:  Server{Port: "8080", RequestTimeoutSec: 10},
		Logging: Logging{Level: "info", Format: "console"},
		Stock:   Stock{Provider: ProviderAlphaVantage},
		AlphaVantage: Provider{
			APIKey:               "demo",
			Endpoint:             "https://www.alphavantage.co",
			MinRequestIntervalMS: 1200,
			MaxRequestsPerMinute: 5,
			Burst:                4,
		},
		TwelveData: Provider{
			APIKey:               "demo",
			Endpoint:             "https://api.twelvedata.com",
			MaxRequestsPerMinute: 8,
			Burst:                4,
		},
		Yahoo:     Provider{},
		CoinGecko: CoinGecko{Endpoint: "https://api.coingecko.com/api/v3"},
		Chart:     Chart{Width: 640, Height: 320},
	}
}

// Selected returns the settings of the configured stock provider.
func (c Config) Selected() (Provider, error) {
	switch c.Stock.Provider {
	case ProviderAlphaVantage:
		return c.AlphaVantage, nil
	case ProviderTwelveData:
		return c.TwelveData, nil
	case ProviderYahoo:
		return c.Yahoo, nil
	default:
		return Provider{}, fmt.Errorf("unknown stock provider %q", c.Stock.Provider)
	}
}

// Load reads config from path, as TOML when it ends in .toml and JSON
// otherwise. An empty path tries config.toml then config.json; a missing file
// leaves the defaults. Variables from a .env file in the working directory
// are loaded next, and the environment overrides select fields last.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		for _, p := range []string{"config.toml", "config.json"} {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := decode(path, b, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}
	_ = godotenv.Load()
	applyEnv(&cfg)
	cfg.Stock.Provider = strings.ToLower(strings.TrimSpace(cfg.Stock.Provider))
	if _, err := cfg.Selected(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(path string, b []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(b, cfg)
	}
	return json.Unmarshal(b, cfg)
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return x, true
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if x, ok := envInt("REQUEST_TIMEOUT_SEC"); ok && x > 0 {
		cfg.Server.RequestTimeoutSec = x
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("STOCK_PROVIDER"); v != "" {
		cfg.Stock.Provider = v
	}

	if v := os.Getenv("ALPHAVANTAGE_API_KEY"); v != "" {
		cfg.AlphaVantage.APIKey = v
	}
	if v := os.Getenv("ALPHAVANTAGE_ENDPOINT"); v != "" {
		cfg.AlphaVantage.Endpoint = v
	}
	if x, ok := envInt("ALPHAVANTAGE_MIN_INTERVAL_MS"); ok {
		cfg.AlphaVantage.MinRequestIntervalMS = x
	}

	if v := os.Getenv("TWELVEDATA_API_KEY"); v != "" {
		cfg.TwelveData.APIKey = v
	}
	if v := os.Getenv("TWELVEDATA_ENDPOINT"); v != "" {
		cfg.TwelveData.Endpoint = v
	}
	if x, ok := envInt("TWELVEDATA_MIN_INTERVAL_MS"); ok {
		cfg.TwelveData.MinRequestIntervalMS = x
	}

	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.CoinGecko.APIKey = v
	}
	if v := os.Getenv("COINGECKO_ENDPOINT"); v != "" {
		cfg.CoinGecko.Endpoint = v
	}
	if v := os.Getenv("CHART_DIR"); v != "" {
		cfg.Chart.Dir = v
	}
}
