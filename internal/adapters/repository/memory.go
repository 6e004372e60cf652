package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okian/quantumtech/internal/domain/dataset"
	"github.com/okian/quantumtech/internal/domain/model"
)

// MemoryStore serves a snapshot held in memory.
type MemoryStore struct {
	mu     sync.RWMutex
	snap   model.Snapshot
	byName map[string]int
	closed bool
}

// NewMemoryStore creates a store over a private copy of snap.
func NewMemoryStore(snap model.Snapshot) *MemoryStore {
	s := &MemoryStore{
		snap:   cloneSnapshot(snap),
		byName: make(map[string]int, len(snap.Technologies)),
	}
	for i, t := range s.snap.Technologies {
		s.byName[t.Name] = i
	}
	return s
}

// Snapshot implements Store.
func (s *MemoryStore) Snapshot(ctx context.Context) (model.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return model.Snapshot{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return model.Snapshot{}, ErrClosed
	}
	return cloneSnapshot(s.snap), nil
}

// Technology implements Store.
func (s *MemoryStore) Technology(ctx context.Context, name string) (model.Technology, error) {
	if err := ctx.Err(); err != nil {
		return model.Technology{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return model.Technology{}, ErrClosed
	}
	i, ok := s.byName[name]
	if !ok {
		return model.Technology{}, fmt.Errorf("%w: technology %q", ErrNotFound, name)
	}
	return s.snap.Technologies[i], nil
}

// Count implements Store.
func (s *MemoryStore) Count(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	return counts(s.snap), nil
}

// Kind implements Store.
func (s *MemoryStore) Kind() string { return KindMemory }

// Close implements Store. Further reads return ErrClosed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func counts(snap model.Snapshot) map[string]int {
	return map[string]int{
		dataset.TableDiscoveries:     len(snap.Discoveries),
		dataset.TableTechnologies:    len(snap.Technologies),
		dataset.TableCategoryUsages:  len(snap.CategoryUsages),
		dataset.TableCorrespondences: len(snap.Correspondences),
	}
}

func cloneSnapshot(s model.Snapshot) model.Snapshot {
	return model.Snapshot{
		Discoveries:     slices.Clone(s.Discoveries),
		Technologies:    slices.Clone(s.Technologies),
		CategoryUsages:  slices.Clone(s.CategoryUsages),
		Correspondences: slices.Clone(s.Correspondences),
	}
}
