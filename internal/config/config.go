package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Port              string `json:"port" toml:"port"`
	RequestTimeoutSec int    `json:"request_timeout_sec" toml:"request_timeout_sec"`
	Pprof             bool   `json:"pprof" toml:"pprof"`
}

type Yahoo struct {
	BaseURL               string `json:"base_url" toml:"base_url"`
	MaxRequestsPerMinute  int    `json:"max_requests_per_minute" toml:"max_requests_per_minute"`
	MinRequestIntervalSec int    `json:"min_request_interval_sec" toml:"min_request_interval_sec"`
	Burst                 int    `json:"burst" toml:"burst"`
	MaxSymbolsPerRequest  int    `json:"max_symbols_per_request" toml:"max_symbols_per_request"`
	MaxConcurrency        int    `json:"max_concurrency" toml:"max_concurrency"`
}

type Finnhub struct {
	APIKey               string `json:"api_key" toml:"api_key"`
	BaseURL              string `json:"base_url" toml:"base_url"`
	MaxRequestsPerMinute int    `json:"max_requests_per_minute" toml:"max_requests_per_minute"`
	Burst                int    `json:"burst" toml:"burst"`
}

type Cache struct {
	TTLSeconds    int    `json:"ttl_sec" toml:"ttl_sec"`
	MaxItems      int    `json:"max_items" toml:"max_items"`
	RedisAddr     string `json:"redis_addr" toml:"redis_addr"`
	RedisPassword string `json:"redis_password" toml:"redis_password"`
}

type Log struct {
	Level string `json:"level" toml:"level"`
	// File, when set, receives the log as well, rotated by size.
	File       string `json:"file" toml:"file"`
	MaxSizeMB  int    `json:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `json:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `json:"max_age_days" toml:"max_age_days"`
	// Development switches to the human readable console encoder.
	Development bool `json:"development" toml:"development"`
}

type Config struct {
	Server  Server  `json:"server" toml:"server"`
	Yahoo   Yahoo   `json:"yahoo" toml:"yahoo"`
	Finnhub Finnhub `json:"finnhub" toml:"finnhub"`
	Cache   Cache   `json:"cache" toml:"cache"`
	Log     Log     `json:"log" toml:"log"`
}

func Default() Config {
	return Config{
		Server: Server{Port: "8080", RequestTimeoutSec: 10},
		Yahoo: Yahoo{
			BaseURL:              "https://query2.finance.yahoo.com",
			MaxRequestsPerMinute: 120,
			Burst:                10,
			MaxSymbolsPerRequest: 50,
			MaxConcurrency:       4,
		},
		Finnhub: Finnhub{
			BaseURL:              "https://finnhub.io",
			MaxRequestsPerMinute: 60,
			Burst:                5,
		},
		Cache: Cache{
			TTLSeconds: 5,
			MaxItems:   10000,
		},
		Log: Log{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 5,
			MaxAgeDays: 28,
		},
	}
}

// Load reads JSON or TOML config from path, picked by extension. If path is
// empty, config.json and then config.toml in the working directory are
// tried; a missing file means defaults. Environment variables override
// select fields for secrecy.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		for _, candidate := range []string{"config.json", "config.toml"} {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(b), cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(b, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Validate rejects settings the gateway cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	if c.Server.RequestTimeoutSec <= 0 {
		errs = append(errs, errors.New("server.request_timeout_sec must be positive"))
	}
	if c.Yahoo.BaseURL == "" {
		errs = append(errs, errors.New("yahoo.base_url is required"))
	}
	for name, v := range map[string]int{
		"yahoo.max_requests_per_minute":   c.Yahoo.MaxRequestsPerMinute,
		"yahoo.min_request_interval_sec":  c.Yahoo.MinRequestIntervalSec,
		"yahoo.burst":                     c.Yahoo.Burst,
		"yahoo.max_symbols_per_request":   c.Yahoo.MaxSymbolsPerRequest,
		"yahoo.max_concurrency":           c.Yahoo.MaxConcurrency,
		"finnhub.max_requests_per_minute": c.Finnhub.MaxRequestsPerMinute,
		"finnhub.burst":                   c.Finnhub.Burst,
		"cache.ttl_sec":                   c.Cache.TTLSeconds,
		"cache.max_items":                 c.Cache.MaxItems,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", name))
		}
	}
	return errors.Join(errs...)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	envInt("REQUEST_TIMEOUT_SEC", 1, &cfg.Server.RequestTimeoutSec)
	envBool("PPROF_ENABLED", &cfg.Server.Pprof)

	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.Yahoo.BaseURL = v
	}
	envInt("YAHOO_MAX_RPM", 0, &cfg.Yahoo.MaxRequestsPerMinute)
	envInt("YAHOO_BURST", 1, &cfg.Yahoo.Burst)
	envInt("YAHOO_MIN_INTERVAL_SEC", 0, &cfg.Yahoo.MinRequestIntervalSec)
	envInt("YAHOO_MAX_SYMBOLS_PER_REQUEST", 1, &cfg.Yahoo.MaxSymbolsPerRequest)
	envInt("YAHOO_MAX_CONCURRENCY", 1, &cfg.Yahoo.MaxConcurrency)

	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		cfg.Finnhub.APIKey = v
	}
	if v := os.Getenv("FINNHUB_BASE_URL"); v != "" {
		cfg.Finnhub.BaseURL = v
	}
	envInt("FINNHUB_MAX_RPM", 0, &cfg.Finnhub.MaxRequestsPerMinute)

	envInt("CACHE_TTL_SEC", 0, &cfg.Cache.TTLSeconds)
	envInt("CACHE_MAX_ITEMS", 1, &cfg.Cache.MaxItems)
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Cache.RedisPassword = v
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}

// envInt sets *dst from the named variable when it parses to at least min.
func envInt(name string, min int, dst *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	var x int
	if _, err := fmt.Sscanf(v, "%d", &x); err == nil && x >= min {
		*dst = x
	}
}

func envBool(name string, dst *bool) {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes", "y":
		*dst = true
	case "0", "false", "no", "n":
		*dst = false
	}
}
