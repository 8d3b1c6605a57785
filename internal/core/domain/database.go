package domain

import (
	"iter"
	"slices"
)

// DedupPolicy decides what happens to a record identical to one already in the database.
type DedupPolicy string

const (
	// DedupNone appends every record, duplicates included.
	DedupNone DedupPolicy = "none"
	// DedupExact drops a record whose (file, directory, command) is already present.
	DedupExact DedupPolicy = "exact"
)

// ParseDedupPolicy converts a policy name. The empty string selects DedupNone.
func ParseDedupPolicy(name string) (DedupPolicy, error) {
	switch DedupPolicy(name) {
	case "", DedupNone:
		return DedupNone, nil
	case DedupExact:
		return DedupExact, nil
	default:
		return "", ErrInvalidDedupPolicy
	}
}

// CompilationDatabase is the ordered collection of records of one capture session.
// It is not safe for concurrent use; the collector owns it while the session runs.
type CompilationDatabase struct {
	records []CompilationRecord
	policy  DedupPolicy
	seen    map[uint64][]int
	sealed  bool
}

// NewCompilationDatabase creates an empty database with the given dedup policy.
func NewCompilationDatabase(policy DedupPolicy) *CompilationDatabase {
	return &CompilationDatabase{
		policy: policy,
		seen:   make(map[uint64][]int),
	}
}

// Append adds rec at the end of the database.
// It reports whether the record was stored; under DedupExact a duplicate is skipped.
func (db *CompilationDatabase) Append(rec CompilationRecord) (bool, error) {
	if db.sealed {
		return false, ErrDatabaseSealed
	}

	key := rec.Key()
	if db.policy == DedupExact {
		for _, idx := range db.seen[key] {
			if db.records[idx].Equal(rec) {
				return false, nil
			}
		}
	}

	db.seen[key] = append(db.seen[key], len(db.records))
	db.records = append(db.records, rec)
	return true, nil
}

// Seal ends the session. Later appends fail with ErrDatabaseSealed.
func (db *CompilationDatabase) Seal() {
	db.sealed = true
}

// Sealed reports whether the session has ended.
func (db *CompilationDatabase) Sealed() bool {
	return db.sealed
}

// Len returns the number of records.
func (db *CompilationDatabase) Len() int {
	return len(db.records)
}

// Policy returns the dedup policy of the database.
func (db *CompilationDatabase) Policy() DedupPolicy {
	return db.policy
}

// Records returns a copy of the records in insertion order.
func (db *CompilationDatabase) Records() []CompilationRecord {
	return slices.Clone(db.records)
}

// All iterates over the records in insertion order.
func (db *CompilationDatabase) All() iter.Seq2[int, CompilationRecord] {
	return func(yield func(int, CompilationRecord) bool) {
		for i, rec := range db.records {
			if !yield(i, rec) {
				return
			}
		}
	}
}
