// Package store is the thin persistence layer over one document collection
// per submission kind. Stores are interface-driven so the service stays
// testable against the in-memory implementation while production runs on
// MongoDB.
package store

import (
	"context"
	"time"
)

// Record is implemented by every persisted submission type.
type Record interface {
	Created() time.Time
}

// Page is an offset-based pagination window: Skip records are discarded from
// the ordered result before returning up to Limit records. Limit <= 0 means
// no limit. Neither value has an enforced upper bound here; operational
// limits are an external concern.
type Page struct {
	Skip  int64
	Limit int64
}

// Collection abstracts one durable collection of records of a single kind.
//
// Failure semantics: any operation may fail with a storage error; failures
// are surfaced to the caller as-is and never retried here. Insert failures
// are always storage failures, never validation failures - validation has
// already happened by the time a record reaches the store.
type Collection[T Record] interface {
	// Insert durably persists one record.
	Insert(ctx context.Context, rec T) error
	// List returns up to page.Limit records after skipping page.Skip,
	// ordered newest-created first. A non-positive Limit returns everything
	// after Skip.
	List(ctx context.Context, page Page) ([]T, error)
	// Count returns the number of records in the collection.
	Count(ctx context.Context) (int64, error)
	// CountCreatedSince returns the number of records created at or after
	// the given instant.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
