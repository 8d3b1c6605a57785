// Package store reads and writes compilation database files.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DatabaseStore = (*Store)(nil)

const indent = "    "

// Store implements ports.DatabaseStore with one JSON file per database.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read loads the records of the database at path.
// It returns nil, nil if the file does not exist.
func (s *Store) Read(path string) ([]domain.CompilationRecord, error) {
	//nolint:gosec // Path is the output chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseReadFailed.Error()), "path", path)
	}

	var records []domain.CompilationRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrDatabaseUnmarshalFailed.Error()), "path", path)
	}

	return records, nil
}

// Write replaces the database at path with records.
func (s *Store) Write(path string, records []domain.CompilationRecord) error {
	if records == nil {
		records = []domain.CompilationRecord{}
	}
	return s.write(path, records)
}

// WriteEntries writes unfiltered report entries to path.
func (s *Store) WriteEntries(path string, entries []domain.ReportEntry) error {
	if entries == nil {
		entries = []domain.ReportEntry{}
	}
	return s.write(path, entries)
}

func (s *Store) write(path string, v any) error {
	data, err := encode(v)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseMarshalFailed.Error()), "path", path)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}

	// Write next to the target and rename so readers never see a partial database.
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDatabaseWriteFailed.Error()), "path", path)
	}

	return nil
}

// encode renders v with four space indentation and a trailing newline.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
