package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is the in-memory Collection used by unit tests and local runs
// without a database. Safe for concurrent use.
type Memory[T Record] struct {
	mu      sync.RWMutex
	records []T
}

func NewMemory[T Record]() *Memory[T] {
	return &Memory[T]{}
}

func (m *Memory[T]) Insert(_ context.Context, rec T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *Memory[T]) List(_ context.Context, page Page) ([]T, error) {
	m.mu.RLock()
	out := append([]T{}, m.records...)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created().After(out[j].Created())
	})

	if page.Skip >= int64(len(out)) {
		return []T{}, nil
	}
	out = out[page.Skip:]
	// Limit <= 0 means no limit, same as the mongo driver's SetLimit(0).
	if page.Limit > 0 && page.Limit < int64(len(out)) {
		out = out[:page.Limit]
	}
	return out, nil
}

func (m *Memory[T]) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.records)), nil
}

func (m *Memory[T]) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var n int64
	for _, rec := range m.records {
		if !rec.Created().Before(since) {
			n++
		}
	}
	return n, nil
}
