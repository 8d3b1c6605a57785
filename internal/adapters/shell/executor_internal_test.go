package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureEnvironment(t *testing.T) {
	tests := []struct {
		name     string
		sysEnv   []string
		goos     string
		expected []string
	}{
		{
			name:   "linux",
			sysEnv: []string{"USER=test", "PATH=/bin"},
			goos:   "linux",
			expected: []string{
				"USER=test", "PATH=/bin",
				"BEAR_OUTPUT=/tmp/cdb-1", "LD_PRELOAD=/lib/libear.so",
			},
		},
		{
			name:   "darwin",
			sysEnv: []string{"USER=test"},
			goos:   "darwin",
			expected: []string{
				"USER=test",
				"BEAR_OUTPUT=/tmp/cdb-1",
				"DYLD_INSERT_LIBRARIES=/lib/libear.so",
				"DYLD_FORCE_FLAT_NAMESPACE=1",
			},
		},
		{
			name:   "existing preload replaced in place",
			sysEnv: []string{"LD_PRELOAD=/other.so", "USER=test"},
			goos:   "linux",
			expected: []string{
				"LD_PRELOAD=/lib/libear.so", "USER=test",
				"BEAR_OUTPUT=/tmp/cdb-1",
			},
		},
		{
			name:     "empty system",
			sysEnv:   nil,
			goos:     "freebsd",
			expected: []string{"BEAR_OUTPUT=/tmp/cdb-1", "LD_PRELOAD=/lib/libear.so"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureEnvironment(tt.sysEnv, "/tmp/cdb-1", "/lib/libear.so", tt.goos)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveEnvironment_Duplicates(t *testing.T) {
	got := resolveEnvironment([]string{"A=1", "B=2", "A=3", "MALFORMED"}, []envVar{{"C", "4"}})
	assert.Equal(t, []string{"A=3", "B=2", "C=4"}, got)
}

func TestCaptureEnvironment_DoesNotModifyBase(t *testing.T) {
	base := []string{"LD_PRELOAD=/other.so"}
	_ = captureEnvironment(base, "/tmp/cdb-1", "/lib/libear.so", "linux")
	assert.Equal(t, []string{"LD_PRELOAD=/other.so"}, base)
}

func TestLookPath_EmptyPATH(t *testing.T) {
	// Environment with no PATH variable
	_, err := lookPath("echo", []string{"USER=test"})
	assert.Error(t, err)
}

func TestLookPath_ExecutableNotFound(t *testing.T) {
	_, err := lookPath("nonexistent-command", []string{"PATH=/nonexistent/dir"})
	assert.Error(t, err)
}

func TestLookPath_LastPATHWins(t *testing.T) {
	path, err := lookPath("sh", []string{"PATH=/nonexistent/dir", "PATH=/bin:/usr/bin"})
	require.NoError(t, err)
	assert.Contains(t, path, "sh")
}

func TestFindExecutable_NonExistent(t *testing.T) {
	assert.Error(t, findExecutable("/nonexistent/file"))
}

func TestFindExecutable_Directory(t *testing.T) {
	assert.Error(t, findExecutable(t.TempDir()))
}

func TestPtyProcess_Resize_BoundsChecking(t *testing.T) {
	proc := &ptyProcess{}

	tests := []struct {
		name string
		rows int
		cols int
	}{
		{"negative rows", -1, 80},
		{"negative cols", 24, -1},
		{"rows too large", 100000, 80},
		{"cols too large", 24, 100000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := proc.Resize(tt.rows, tt.cols)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "out of bounds")
		})
	}
}

func TestPipeProcess_Resize(t *testing.T) {
	assert.NoError(t, (&pipeProcess{}).Resize(24, 80))
}
