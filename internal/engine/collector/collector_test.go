package collector_test

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/engine/collector"
)

func record(file string) *domain.CompilationRecord {
	return &domain.CompilationRecord{
		Command:   []string{"cc", "-c", file},
		Directory: domain.NewInternedString("/w"),
		File:      file,
	}
}

func files(db *domain.CompilationDatabase) []string {
	var out []string
	for _, rec := range db.All() {
		out = append(out, rec.File)
	}
	return out
}

func TestCollector_RestoresObservationOrder(t *testing.T) {
	const n = 200
	c := collector.New(domain.DedupNone)

	order := rand.Perm(n)
	var wg sync.WaitGroup
	for _, seq := range order {
		wg.Add(1)
		go func(seq int) {
			defer wg.Done()
			var rec *domain.CompilationRecord
			if seq%3 != 0 {
				rec = record(fmt.Sprintf("f%03d.c", seq))
			}
			assert.NoError(t, c.Submit(uint64(seq), rec))
		}(seq)
	}
	wg.Wait()

	db, err := c.Close()
	require.NoError(t, err)
	assert.True(t, db.Sealed())

	var want []string
	for seq := range n {
		if seq%3 != 0 {
			want = append(want, fmt.Sprintf("f%03d.c", seq))
		}
	}
	assert.Equal(t, want, files(db))

	stats := c.Stats()
	assert.Equal(t, n, stats.Submitted)
	assert.Equal(t, len(want), stats.Recorded)
	assert.Equal(t, n-len(want), stats.Dropped)
}

func TestCollector_DedupExact(t *testing.T) {
	c := collector.New(domain.DedupExact)

	require.NoError(t, c.Submit(2, record("a.c")))
	require.NoError(t, c.Submit(0, record("a.c")))
	require.NoError(t, c.Submit(1, record("b.c")))

	db, err := c.Close()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.c"}, files(db))
	assert.Equal(t, 1, c.Stats().Duplicates)
}

func TestCollector_DedupNoneKeepsDuplicates(t *testing.T) {
	c := collector.New(domain.DedupNone)

	require.NoError(t, c.Submit(0, record("a.c")))
	require.NoError(t, c.Submit(1, record("a.c")))

	db, err := c.Close()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "a.c"}, files(db))
}

func TestCollector_WithExisting(t *testing.T) {
	existing := []domain.CompilationRecord{*record("old.c")}
	c := collector.New(domain.DedupExact, collector.WithExisting(existing))

	require.NoError(t, c.Submit(0, record("old.c")))
	require.NoError(t, c.Submit(1, record("new.c")))

	db, err := c.Close()
	require.NoError(t, err)
	assert.Equal(t, []string{"old.c", "new.c"}, files(db))
}

func TestCollector_WithFirstSequence(t *testing.T) {
	c := collector.New(domain.DedupNone, collector.WithFirstSequence(10))

	require.NoError(t, c.Submit(11, record("b.c")))
	require.NoError(t, c.Submit(10, record("a.c")))

	db, err := c.Close()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "b.c"}, files(db))
}

func TestCollector_GapsFlushedInOrder(t *testing.T) {
	c := collector.New(domain.DedupNone)

	require.NoError(t, c.Submit(5, record("e.c")))
	require.NoError(t, c.Submit(2, record("c.c")))
	require.NoError(t, c.Submit(0, record("a.c")))

	db, err := c.Close()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.c", "c.c", "e.c"}, files(db))
}

func TestCollector_DuplicateSequence(t *testing.T) {
	c := collector.New(domain.DedupNone)

	require.NoError(t, c.Submit(0, record("a.c")))
	require.NoError(t, c.Submit(0, record("b.c")))

	db, err := c.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDuplicateSequence.Error())
	assert.Equal(t, []string{"a.c"}, files(db))
}

func TestCollector_SubmitAfterClose(t *testing.T) {
	c := collector.New(domain.DedupNone)
	_, err := c.Close()
	require.NoError(t, err)

	err = c.Submit(0, record("a.c"))
	assert.ErrorIs(t, err, domain.ErrCollectorClosed)

	// Closing twice returns the same database.
	db, err := c.Close()
	require.NoError(t, err)
	assert.Equal(t, 0, db.Len())
}
