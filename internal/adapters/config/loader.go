// Package config provides the configuration loader for cdb.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Discover walks up from cwd and returns the first cdb.yaml found.
// It returns an empty path when no directory up to the root has one.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "cwd", cwd)
	}

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		info, statErr := l.FS.Stat(candidate)
		switch {
		case statErr == nil && !info.IsDir():
			return candidate, nil
		case statErr != nil && !errors.Is(statErr, fs.ErrNotExist):
			return "", zerr.With(zerr.Wrap(statErr, domain.ErrConfigReadFailed.Error()), "path", candidate)
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", nil
		}
		currentDir = parentDir
	}
}

// Load resolves the settings for a run started in cwd.
// Without a config file the defaults are returned.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	configPath, err := l.Discover(cwd)
	if err != nil {
		return domain.Settings{}, err
	}
	if configPath == "" {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(), nil
	}

	file, err := l.readAndUnmarshalYAML(configPath)
	if err != nil {
		return domain.Settings{}, err
	}

	if err := file.Validate(); err != nil {
		return domain.Settings{}, invalidConfig(err, configPath)
	}

	return l.toSettings(file, configPath)
}

func (l *Loader) readAndUnmarshalYAML(path string) (*Configfile, error) {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Configfile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return &file, nil
}

func (l *Loader) toSettings(file *Configfile, configPath string) (domain.Settings, error) {
	settings := domain.DefaultSettings()
	settings.Source = configPath

	policy, err := domain.ParseDedupPolicy(file.Deduplicate)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}
	settings.Dedup = policy

	// Relative paths are resolved against the directory holding the file.
	configDir := filepath.Dir(configPath)
	if file.Output != "" {
		settings.Output = resolvePath(configDir, file.Output)
	}
	if file.PreloadLibrary != "" {
		settings.PreloadLibrary = resolvePath(configDir, file.PreloadLibrary)
	}

	settings.Compilers = append([]string(nil), file.Compilers...)
	settings.Jobs = file.Jobs

	if file.Version == "" {
		l.Logger.Warn(domain.ConfigFileName + " has no version, assuming \"1\"")
	}

	return settings, nil
}

func invalidConfig(err error, path string) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", path)
	}

	first := fieldErrs[0]
	wrapped := zerr.With(domain.ErrConfigInvalid, "path", path)
	wrapped = zerr.With(wrapped, "field", first.Field())
	wrapped = zerr.With(wrapped, "rule", first.Tag())
	if first.Param() != "" {
		wrapped = zerr.With(wrapped, "param", first.Param())
	}
	return wrapped
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
