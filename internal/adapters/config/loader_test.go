package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cdb/internal/adapters/config"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	// Allow any logging, as we are testing logic, not strict log calls
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func createFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := newLoader(t)

	settings, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
}

func TestLoader_Load_FullFile(t *testing.T) {
	loader := newLoader(t)
	rootDir := t.TempDir()

	path := createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
output: build/compile_commands.json
deduplicate: exact
preload_library: /usr/lib/libear.so
compilers:
  - ^xcc$
  - ^arm-none-eabi-gcc$
jobs: 4
`)

	settings, err := loader.Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(rootDir, "build", "compile_commands.json"), settings.Output)
	assert.Equal(t, domain.DedupExact, settings.Dedup)
	assert.Equal(t, "/usr/lib/libear.so", settings.PreloadLibrary)
	assert.Equal(t, []string{"^xcc$", "^arm-none-eabi-gcc$"}, settings.Compilers)
	assert.Equal(t, 4, settings.Jobs)
	assert.Equal(t, path, settings.Source)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	loader := newLoader(t)
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "")

	settings, err := loader.Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOutputFile, settings.Output)
	assert.Equal(t, domain.DedupNone, settings.Dedup)
}

func TestLoader_Discover_WalksUp(t *testing.T) {
	loader := newLoader(t)
	rootDir := t.TempDir()
	path := createFile(t, rootDir, domain.ConfigFileName, "version: \"1\"\n")

	nested := filepath.Join(rootDir, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	found, err := loader.Discover(nested)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	settings, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, path, settings.Source)
	assert.Equal(t, domain.DefaultOutputFile, settings.Output,
		"default output stays relative to the caller, not the config file")
}

func TestLoader_Discover_MapFS(t *testing.T) {
	loader := newLoader(t)
	loader.FS = config.NewMapFSAdapter("/project", fstest.MapFS{
		"cdb.yaml":     {Data: []byte("version: \"1\"\njobs: 2\n")},
		"a/b/.keep":    {Data: nil},
		"a/cdb.yaml/x": {Data: nil},
	})

	found, err := loader.Discover("/project/a/b")
	require.NoError(t, err)
	assert.Equal(t, "/project/cdb.yaml", found, "a directory named cdb.yaml is not a config file")

	settings, err := loader.Load("/project/a/b")
	require.NoError(t, err)
	assert.Equal(t, 2, settings.Jobs)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "syntax",
			content: "output: [unterminated\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown key",
			content: "outptu: x.json\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "dedup policy",
			content: "deduplicate: fuzzy\n",
			wantErr: domain.ErrConfigInvalid.Error(),
		},
		{
			name:    "negative jobs",
			content: "jobs: -1\n",
			wantErr: domain.ErrConfigInvalid.Error(),
		},
		{
			name:    "version",
			content: "version: \"2\"\n",
			wantErr: domain.ErrConfigInvalid.Error(),
		},
		{
			name:    "empty compiler pattern",
			content: "compilers: [\"\"]\n",
			wantErr: domain.ErrConfigInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newLoader(t)
			rootDir := t.TempDir()
			createFile(t, rootDir, domain.ConfigFileName, tt.content)

			_, err := loader.Load(rootDir)
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigfile_Validate_FieldNames(t *testing.T) {
	file := config.Configfile{Deduplicate: "fuzzy"}

	err := file.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deduplicate")
}
