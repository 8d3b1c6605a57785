package ports

import "go.trai.ch/cdb/internal/core/domain"

// DatabaseStore defines the interface for reading and writing compilation databases.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type DatabaseStore interface {
	// Read loads the records of an existing database.
	// Returns nil, nil if the file does not exist.
	Read(path string) ([]domain.CompilationRecord, error)

	// Write replaces the database at path with records.
	Write(path string, records []domain.CompilationRecord) error

	// WriteEntries writes unfiltered report entries to path.
	WriteEntries(path string, entries []domain.ReportEntry) error
}
