// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New(ctx) returns a Config holding every default.
// - Load(ctx) layers a YAML file and QUANTUM_* env vars on top of New.
// - Validation failures wrap ErrInvalidConfig; source failures wrap ErrLoadConfig.
package config

import (
	"context"
	"fmt"
	"strings"
)

// Store kinds accepted by the store key.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Store selects the dataset store backend: memory or sqlite.
	Store string `koanf:"store"`

	// SQLitePath is the database file used when Store is sqlite.
	SQLitePath string `koanf:"sqlite_path"`

	// ChartWidth and ChartHeight size rendered chart images in pixels.
	ChartWidth  int `koanf:"chart_width"`
	ChartHeight int `koanf:"chart_height"`

	// ImportanceMarkerDivisor and ImpactMarkerDivisor scale timeline markers.
	ImportanceMarkerDivisor float64 `koanf:"importance_marker_divisor"`
	ImpactMarkerDivisor     float64 `koanf:"impact_marker_divisor"`

	// ChartCacheSize bounds the number of cached chart images. 0 means unbounded.
	ChartCacheSize int `koanf:"chart_cache_size"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:                "info",
		LogFormat:               "text",
		Addr:                    ":9080",
		Store:                   StoreMemory,
		SQLitePath:              "quantumtech.db",
		ChartWidth:              1024,
		ChartHeight:             500,
		ImportanceMarkerDivisor: 2,
		ImpactMarkerDivisor:     20,
		ChartCacheSize:          64,
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.Store != StoreMemory && c.Store != StoreSQLite:
		return fmt.Errorf("%w: store must be %s or %s, got %q", ErrInvalidConfig, StoreMemory, StoreSQLite, c.Store)
	case c.Store == StoreSQLite && strings.TrimSpace(c.SQLitePath) == "":
		return fmt.Errorf("%w: sqlite_path must not be empty when store is sqlite", ErrInvalidConfig)
	case c.ChartWidth <= 0 || c.ChartHeight <= 0:
		return fmt.Errorf("%w: chart size must be positive, got %dx%d", ErrInvalidConfig, c.ChartWidth, c.ChartHeight)
	case c.ImportanceMarkerDivisor <= 0 || c.ImpactMarkerDivisor <= 0:
		return fmt.Errorf("%w: marker divisors must be positive", ErrInvalidConfig)
	case c.ChartCacheSize < 0:
		return fmt.Errorf("%w: chart_cache_size must not be negative, got %d", ErrInvalidConfig, c.ChartCacheSize)
	}
	return nil
}
