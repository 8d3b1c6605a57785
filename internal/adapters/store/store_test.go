package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdb/internal/adapters/store"
	"go.trai.ch/cdb/internal/core/domain"
)

func record(file, dir string, command ...string) domain.CompilationRecord {
	return domain.CompilationRecord{
		Command:   command,
		Directory: domain.NewInternedString(dir),
		File:      file,
	}
}

func TestStore_WriteRead(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "compile_commands.json")
	s := store.NewStore()

	records := []domain.CompilationRecord{
		record("lib.c", "/src", "cc", "-c", "-fpic", "-o", "one.o", "lib.c"),
		record("main.c", "/src/app", "gcc", "-c", "-DLIMIT=<8>", "main.c"),
	}
	require.NoError(t, s.Write(path, records))

	got, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestStore_Write_Golden(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "compile_commands.json")
	s := store.NewStore()

	require.NoError(t, s.Write(path, []domain.CompilationRecord{
		record("lib.c", "/src", "cc", "-c", "-fpic", "-o", "one.o", "lib.c"),
		record("main.c", "/src/app", "gcc", "-c", "-DLIMIT=<8>", "main.c"),
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "database", data)
}

func TestStore_WriteEntries_Golden(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "raw.json")
	s := store.NewStore()

	require.NoError(t, s.WriteEntries(path, []domain.ReportEntry{
		{Command: []string{"make", "all"}, Directory: "/src", Function: "execvp", PID: "10", PPID: "9"},
		{Command: []string{"cc", "-c", "a.c"}, Directory: "/src", Function: "execve", PID: "11", PPID: "10"},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "entries", data)
}

func TestStore_Write_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "compile_commands.json")
	s := store.NewStore()

	require.NoError(t, s.Write(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	entries := filepath.Join(filepath.Dir(path), "raw.json")
	require.NoError(t, s.WriteEntries(entries, nil))
	data, err = os.ReadFile(entries)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestStore_Write_Replaces(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "compile_commands.json")
	s := store.NewStore()

	require.NoError(t, s.Write(path, []domain.CompilationRecord{record("a.c", "/w", "cc", "-c", "a.c")}))
	require.NoError(t, s.Write(path, []domain.CompilationRecord{record("b.c", "/w", "cc", "-c", "b.c")}))

	got, err := s.Read(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b.c", got[0].File)

	leftovers, err := filepath.Glob(filepath.Join(dir, ".compile_commands.json.*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStore_Read_Missing(t *testing.T) {
	t.Parallel()

	got, err := store.NewStore().Read(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Read_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "compile_commands.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), domain.PrivateFilePerm))

	_, err := store.NewStore().Read(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDatabaseUnmarshalFailed.Error())
}

func TestStore_Write_Unwritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, domain.PrivateFilePerm))

	err := store.NewStore().Write(filepath.Join(blocker, "compile_commands.json"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDatabaseWriteFailed.Error())
}
