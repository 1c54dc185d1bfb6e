package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	Seq       int
	CreatedAt time.Time
}

func (r fakeRecord) Created() time.Time {
	return r.CreatedAt
}

func seedRecords(t *testing.T, m *Memory[fakeRecord], n int) time.Time {
	t.Helper()
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := m.Insert(context.Background(), fakeRecord{
			Seq:       i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
	return base
}

func TestMemoryListNewestFirst(t *testing.T) {
	m := NewMemory[fakeRecord]()
	seedRecords(t, m, 3)

	got, err := m.List(context.Background(), Page{Skip: 0, Limit: 100})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Seq)
	assert.Equal(t, 2, got[1].Seq)
	assert.Equal(t, 1, got[2].Seq)
}

func TestMemoryListPaginationWindow(t *testing.T) {
	m := NewMemory[fakeRecord]()
	seedRecords(t, m, 5)

	// With 5 records created in order, skip=1 limit=2 returns items 4 and 3
	// by creation order.
	got, err := m.List(context.Background(), Page{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].Seq)
	assert.Equal(t, 3, got[1].Seq)
}

func TestMemoryListZeroLimitReturnsAll(t *testing.T) {
	m := NewMemory[fakeRecord]()
	seedRecords(t, m, 3)

	// Limit 0 is unbounded, matching the mongo driver's SetLimit(0).
	got, err := m.List(context.Background(), Page{Skip: 0, Limit: 0})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].Seq)

	got, err = m.List(context.Background(), Page{Skip: 1, Limit: 0})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].Seq)
}

func TestMemoryListSkipPastEnd(t *testing.T) {
	m := NewMemory[fakeRecord]()
	seedRecords(t, m, 2)

	got, err := m.List(context.Background(), Page{Skip: 10, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryListEmpty(t *testing.T) {
	m := NewMemory[fakeRecord]()

	got, err := m.List(context.Background(), Page{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryCount(t *testing.T) {
	m := NewMemory[fakeRecord]()
	seedRecords(t, m, 4)

	n, err := m.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestMemoryCountCreatedSince(t *testing.T) {
	m := NewMemory[fakeRecord]()
	base := seedRecords(t, m, 4) // records at base, +1m, +2m, +3m

	n, err := m.CountCreatedSince(context.Background(), base.Add(2*time.Minute))
	require.NoError(t, err)
	// Boundary is inclusive: the record created exactly at the cutoff counts.
	assert.Equal(t, int64(2), n)

	n, err = m.CountCreatedSince(context.Background(), base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
