package service

import (
	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore selects the store backend. path is only used by sqlite.
func WithStore(kind, path string) Option {
	return func(s *Service) {
		if kind != "" {
			s.storeKind = kind
		}
		s.sqlitePath = path
	}
}

// WithMarkerDivisors sets the timeline marker scale. Non-positive values are ignored.
func WithMarkerDivisors(importance, impact float64) Option {
	return func(s *Service) {
		if importance > 0 {
			s.importanceDivisor = importance
		}
		if impact > 0 {
			s.impactDivisor = impact
		}
	}
}

// WithChartSize sets the rendered chart image size in pixels.
func WithChartSize(width, height int) Option {
	return func(s *Service) {
		if width > 0 && height > 0 {
			s.chartWidth = width
			s.chartHeight = height
		}
	}
}

// WithChartCacheSize bounds the chart image cache. 0 means unbounded; negative values are ignored.
func WithChartCacheSize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.cacheSize = n
		}
	}
}

// WithTables replaces the built-in tables. Used to exercise integrity failures.
func WithTables(t dataset.Tables) Option {
	return func(s *Service) {
		s.tables = &t
	}
}
