package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdb/internal/adapters/report"
	"go.trai.ch/cdb/internal/core/domain"
)

const (
	rs = domain.RecordSeparator
	us = domain.UnitSeparator
)

func writeReport(t *testing.T, dir, name, content string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func TestParse(t *testing.T) {
	content := "42" + rs + "1" + rs + "execve" + rs + "/src/project" + rs +
		"cc" + us + "-c" + us + "-DNAME=a b" + us + "main.c" + us

	inv, err := report.Parse(content)
	require.NoError(t, err)

	assert.Equal(t, "cc", inv.Program())
	assert.Equal(t, []string{"-c", "-DNAME=a b", "main.c"}, inv.Arguments())
	assert.Equal(t, "/src/project", inv.WorkingDirectory())
	assert.Equal(t, "42", inv.PID)
	assert.Equal(t, "1", inv.PPID)
	assert.Equal(t, "execve", inv.Function)
}

func TestParse_EmptyArgument(t *testing.T) {
	inv, err := report.Parse("1" + rs + "0" + rs + "execvp" + rs + "/w" + rs + "cc" + us + us + "a.c" + us)
	require.NoError(t, err)
	assert.Equal(t, []string{"", "a.c"}, inv.Arguments())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "truncated",
			content: "1" + rs + "0" + rs + "execve",
			wantErr: "unexpected end of record",
		},
		{
			name:    "unterminated argument",
			content: "1" + rs + "0" + rs + "execve" + rs + "/w" + rs + "cc" + us + "-c",
			wantErr: "last argument is not terminated",
		},
		{
			name:    "empty command",
			content: "1" + rs + "0" + rs + "execve" + rs + "/w" + rs,
			wantErr: domain.ErrEmptyArgv.Error(),
		},
		{
			name:    "empty file",
			content: "",
			wantErr: "unexpected end of record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := report.Parse(tt.content)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFormat_Parse(t *testing.T) {
	inv, err := domain.NewRawInvocation([]string{"/usr/bin/gcc", "-c", "-o", "x.o", "x.c"}, "/w")
	require.NoError(t, err)
	inv.PID, inv.PPID, inv.Function = "7", "3", "execv"

	got, err := report.Parse(report.Format(inv))
	require.NoError(t, err)
	assert.Equal(t, inv, got)
}

func TestReader_List_Order(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	late := writeReport(t, dir, "cmd.aaa", "x", base.Add(2*time.Second))
	early := writeReport(t, dir, "cmd.zzz", "x", base)
	tieB := writeReport(t, dir, "cmd.b", "x", base.Add(time.Second))
	tieA := writeReport(t, dir, "cmd.a", "x", base.Add(time.Second))
	writeReport(t, dir, "notes.txt", "x", base)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "cmd.dir"), domain.DirPerm))

	paths, err := report.NewReader().List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{early, tieA, tieB, late}, paths)
}

func TestReader_List_NumericTieBreak(t *testing.T) {
	dir := t.TempDir()
	same := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	ten := writeReport(t, dir, "cmd.10", "x", same)
	two := writeReport(t, dir, "cmd.2", "x", same)
	one := writeReport(t, dir, "cmd.1", "x", same)
	named := writeReport(t, dir, "cmd.abc", "x", same)

	paths, err := report.NewReader().List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{one, two, ten, named}, paths)
}

func TestReader_List_MissingDir(t *testing.T) {
	_, err := report.NewReader().List(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReportDirNotFound.Error())
}

func TestReader_List_Empty(t *testing.T) {
	paths, err := report.NewReader().List(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestReader_Read(t *testing.T) {
	dir := t.TempDir()
	path := writeReport(t, dir, "cmd.1",
		"5"+rs+"4"+rs+"execve"+rs+"/w"+rs+"cc"+us+"-c"+us+"a.c"+us, time.Now())

	inv, err := report.NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"cc", "-c", "a.c"}, inv.Argv())
}

func TestReader_Read_Errors(t *testing.T) {
	dir := t.TempDir()
	reader := report.NewReader()

	_, err := reader.Read(filepath.Join(dir, "cmd.missing"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReportReadFailed.Error())

	path := writeReport(t, dir, "cmd.bad", "garbage", time.Now())
	_, err = reader.Read(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrReportMalformed.Error())
}
