// Package repository defines the read-only dataset store and its memory
// and SQLite implementations.
package repository

import (
	"context"

	"github.com/okian/quantumtech/internal/domain/model"
)

// Store kinds, as named in configuration.
const (
	KindMemory = "memory"
	KindSQLite = "sqlite"
)

// Store provides read access to the dataset tables.
type Store interface {
	// Snapshot returns every table in authored order.
	Snapshot(ctx context.Context) (model.Snapshot, error)

	// Technology returns the technology with the given name.
	// Returns ErrNotFound if there is none.
	Technology(ctx context.Context, name string) (model.Technology, error)

	// Count returns the number of rows per table.
	Count(ctx context.Context) (map[string]int, error)

	// Kind names the backing implementation.
	Kind() string

	Close() error
}
