package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// CompilationRecord is one entry of the compilation database.
type CompilationRecord struct {
	Command   []string
	Directory InternedString
	File      string
}

// CommandLine joins the command tokens with single spaces. No quoting is applied.
func (r CompilationRecord) CommandLine() string {
	return strings.Join(r.Command, " ")
}

// Key identifies a record by (file, directory, command line) for deduplication.
// The command is hashed in its serialized form, so a record read back from a
// database keys like the one it was written from.
func (r CompilationRecord) Key() uint64 {
	hasher := xxhash.New()
	_, _ = hasher.WriteString(r.File)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(r.Directory.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(r.CommandLine())
	return hasher.Sum64()
}

// Equal reports whether r and other serialize to the same file, directory and command.
func (r CompilationRecord) Equal(other CompilationRecord) bool {
	return r.File == other.File &&
		r.Directory == other.Directory &&
		r.CommandLine() == other.CommandLine()
}

// recordJSON fixes the serialized field order: command, directory, file.
type recordJSON struct {
	Command   string `json:"command"`
	Directory string `json:"directory"`
	File      string `json:"file"`
}

// MarshalJSON encodes the record with the command as a single string.
// Characters such as < and & in flags are written as is.
func (r CompilationRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(recordJSON{
		Command:   r.CommandLine(),
		Directory: r.Directory.String(),
		File:      r.File,
	}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a record, splitting the command on single spaces.
func (r *CompilationRecord) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Command = nil
	if raw.Command != "" {
		r.Command = strings.Split(raw.Command, " ")
	}
	r.Directory = NewInternedString(raw.Directory)
	r.File = raw.File
	return nil
}
