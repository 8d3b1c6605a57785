// Package symbolmap reads and writes cross translation unit symbol map files.
package symbolmap

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SymbolMapStore = (*Store)(nil)

// maxLineSize bounds a single symbol map line. Mangled names can be long.
const maxLineSize = 1 << 20

// Store implements ports.SymbolMapStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// ReadDir parses every regular file in dir in name order.
func (s *Store) ReadDir(dir string) ([]domain.SymbolDefinition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSymbolMapReadFailed.Error()), "path", dir)
	}

	var defs []domain.SymbolDefinition
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		parsed, err := readFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, parsed...)
	}
	return defs, nil
}

func readFile(path string) ([]domain.SymbolDefinition, error) {
	//nolint:gosec // path is inside the directory given by the user
	file, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSymbolMapReadFailed.Error()), "path", path)
	}
	defer func() { _ = file.Close() }()

	var defs []domain.SymbolDefinition
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		def, ok, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, zerr.With(zerr.With(err, "path", path), "line", lineNo)
		}
		if ok {
			defs = append(defs, def)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSymbolMapReadFailed.Error()), "path", path)
	}
	return defs, nil
}

// ParseLine splits a "symbol module" line on its first space.
// Blank lines report ok == false.
func ParseLine(line string) (domain.SymbolDefinition, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return domain.SymbolDefinition{}, false, nil
	}
	symbol, module, found := strings.Cut(line, " ")
	if !found || module == "" {
		return domain.SymbolDefinition{}, false, domain.ErrSymbolMapMalformed
	}
	return domain.SymbolDefinition{Symbol: symbol, Module: module}, true, nil
}

// Write stores defs at path, one line each.
func (s *Store) Write(path string, defs []domain.SymbolDefinition) error {
	var buf bytes.Buffer
	for _, def := range defs {
		buf.WriteString(def.Line())
		buf.WriteByte('\n')
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSymbolMapWriteFailed.Error()), "path", path)
	}
	//nolint:gosec // path is the output chosen by the user
	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSymbolMapWriteFailed.Error()), "path", path)
	}
	return nil
}
