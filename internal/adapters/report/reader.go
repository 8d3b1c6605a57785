// Package report reads the invocation reports written by the preload library.
package report

import (
	"cmp"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportReader = (*Reader)(nil)

// reportFields is the number of RS separated fields: pid, ppid, function, directory, command.
const reportFields = 5

var (
	errTruncated    = zerr.New("unexpected end of record")
	errUnterminated = zerr.New("last argument is not terminated")
)

// Reader implements ports.ReportReader on the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

type listedFile struct {
	path    string
	modTime time.Time
}

// List returns the report files in dir ordered by modification time and then name.
// Subdirectories and files not named like reports are ignored.
func (r *Reader) List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrReportDirNotFound, "path", dir)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", dir)
	}

	files := make([]listedFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !domain.IsReportFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		files = append(files, listedFile{
			path:    filepath.Join(dir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	slices.SortStableFunc(files, func(a, b listedFile) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return compareNames(a.path, b.path)
	})

	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.path
	}
	return paths, nil
}

// compareNames orders report files with numeric suffixes numerically, so cmd.2
// comes before cmd.10, and ahead of any other names, which compare as strings.
func compareNames(a, b string) int {
	na, okA := reportNumber(a)
	nb, okB := reportNumber(b)
	switch {
	case okA && okB:
		if c := cmp.Compare(na, nb); c != 0 {
			return c
		}
	case okA:
		return -1
	case okB:
		return 1
	}
	return cmp.Compare(a, b)
}

func reportNumber(path string) (uint64, bool) {
	suffix := strings.TrimPrefix(filepath.Base(path), domain.ReportFilePrefix)
	n, err := strconv.ParseUint(suffix, 10, 64)
	return n, err == nil
}

// Read parses a single report file.
func (r *Reader) Read(path string) (domain.RawInvocation, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from List
	if err != nil {
		return domain.RawInvocation{}, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}

	inv, err := Parse(string(data))
	if err != nil {
		return domain.RawInvocation{}, zerr.With(zerr.Wrap(err, domain.ErrReportMalformed.Error()), "path", path)
	}
	return inv, nil
}

// Parse decodes the content of a report file.
// Fields after the command are ignored.
func Parse(content string) (domain.RawInvocation, error) {
	fields := strings.Split(content, domain.RecordSeparator)
	if len(fields) < reportFields {
		return domain.RawInvocation{}, zerr.With(errTruncated, "fields", len(fields))
	}

	argv := strings.Split(fields[4], domain.UnitSeparator)
	if argv[len(argv)-1] != "" {
		return domain.RawInvocation{}, errUnterminated
	}
	argv = argv[:len(argv)-1]

	inv, err := domain.NewRawInvocation(argv, fields[3])
	if err != nil {
		return domain.RawInvocation{}, err
	}
	inv.PID = fields[0]
	inv.PPID = fields[1]
	inv.Function = fields[2]
	return inv, nil
}

// Format encodes inv in the report file format. It is the inverse of Parse.
func Format(inv domain.RawInvocation) string {
	var b strings.Builder
	for _, field := range []string{inv.PID, inv.PPID, inv.Function, inv.WorkingDirectory()} {
		b.WriteString(field)
		b.WriteString(domain.RecordSeparator)
	}
	for _, arg := range inv.Argv() {
		b.WriteString(arg)
		b.WriteString(domain.UnitSeparator)
	}
	return b.String()
}
