// Package collector owns the compilation database of a session.
//
// Workers analyze invocations concurrently and finish in any order. The
// collector receives their results tagged with the observation sequence
// number and appends records strictly in sequence order.
package collector

import (
	"slices"
	"sync"

	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/zerr"
)

// submitBuffer is the capacity of the submission channel.
const submitBuffer = 256

// Stats counts what happened to the submissions of a session.
type Stats struct {
	// Submitted is the number of Submit calls that were accepted.
	Submitted int
	// Recorded is the number of records appended to the database.
	Recorded int
	// Dropped is the number of tombstones, invocations without a record.
	Dropped int
	// Duplicates is the number of records skipped by the dedup policy.
	Duplicates int
}

type submission struct {
	seq uint64
	rec *domain.CompilationRecord
}

// Collector is the single owner of a CompilationDatabase.
type Collector struct {
	db *domain.CompilationDatabase

	mu     sync.RWMutex
	closed bool
	in     chan submission
	done   chan struct{}

	// Owned by the run goroutine until done is closed.
	next    uint64
	pending map[uint64]*domain.CompilationRecord
	stats   Stats
	err     error
}

// Option configures a Collector.
type Option func(*Collector)

// WithExisting seeds the database with records of a previous session.
// They are appended before any submission, subject to the dedup policy.
func WithExisting(records []domain.CompilationRecord) Option {
	return func(c *Collector) {
		for _, rec := range records {
			_, _ = c.db.Append(rec)
		}
	}
}

// WithFirstSequence sets the sequence number of the first submission. The default is 0.
func WithFirstSequence(seq uint64) Option {
	return func(c *Collector) {
		c.next = seq
	}
}

// New starts a collector for a database with the given dedup policy.
func New(policy domain.DedupPolicy, opts ...Option) *Collector {
	c := &Collector{
		db:      domain.NewCompilationDatabase(policy),
		in:      make(chan submission, submitBuffer),
		done:    make(chan struct{}),
		pending: make(map[uint64]*domain.CompilationRecord),
	}
	for _, opt := range opts {
		opt(c)
	}

	go c.run()
	return c
}

// Submit hands over the result of the invocation observed at position seq.
// A nil record is a tombstone marking an invocation that produced no record.
// Submit is safe for concurrent use.
func (c *Collector) Submit(seq uint64, rec *domain.CompilationRecord) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return domain.ErrCollectorClosed
	}
	c.in <- submission{seq: seq, rec: rec}
	return nil
}

// Close waits for every accepted submission, seals the database and returns it.
// Results still waiting for a missing sequence number are appended in order.
// The error reports sequence numbers that were submitted twice.
func (c *Collector) Close() (*domain.CompilationDatabase, error) {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.in)
	}
	c.mu.Unlock()

	<-c.done
	return c.db, c.err
}

// Stats returns the counters of the session. It is only meaningful after Close.
func (c *Collector) Stats() Stats {
	<-c.done
	return c.stats
}

func (c *Collector) run() {
	defer close(c.done)

	for sub := range c.in {
		c.accept(sub)
	}

	// Gaps left by invocations that never reported are skipped.
	rest := make([]uint64, 0, len(c.pending))
	for seq := range c.pending {
		rest = append(rest, seq)
	}
	slices.Sort(rest)
	for _, seq := range rest {
		c.append(c.pending[seq])
		delete(c.pending, seq)
	}

	c.db.Seal()
}

func (c *Collector) accept(sub submission) {
	if _, seen := c.pending[sub.seq]; seen || sub.seq < c.next {
		if c.err == nil {
			c.err = zerr.With(domain.ErrDuplicateSequence, "sequence", sub.seq)
		}
		return
	}

	c.stats.Submitted++
	c.pending[sub.seq] = sub.rec

	for {
		rec, ok := c.pending[c.next]
		if !ok {
			return
		}
		delete(c.pending, c.next)
		c.next++
		c.append(rec)
	}
}

func (c *Collector) append(rec *domain.CompilationRecord) {
	if rec == nil {
		c.stats.Dropped++
		return
	}

	stored, err := c.db.Append(*rec)
	switch {
	case err != nil:
		if c.err == nil {
			c.err = err
		}
	case stored:
		c.stats.Recorded++
	default:
		c.stats.Duplicates++
	}
}
