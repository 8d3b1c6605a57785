package ports

import "go.trai.ch/cdb/internal/core/domain"

// ReportReader defines the interface for reading the files written by the preload library.
//
//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportReader interface {
	// List returns the report files in dir, ordered by modification time and then name.
	List(dir string) ([]string, error)

	// Read parses a single report file.
	Read(path string) (domain.RawInvocation, error)
}
