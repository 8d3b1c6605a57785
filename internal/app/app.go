// Package app implements the application layer for cdb.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/uuid"
	"go.trai.ch/cdb/internal/adapters/shell"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/cdb/internal/engine/analyzer"
	"go.trai.ch/cdb/internal/engine/ctu"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	logger       ports.Logger
	reports      ports.ReportReader
	store        ports.DatabaseStore
	symbols      ports.SymbolMapStore
	watcher      ports.Watcher
	tracer       ports.Tracer

	stdout  io.Writer
	stderr  io.Writer
	tempDir string
	environ func() []string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	log ports.Logger,
	reports ports.ReportReader,
	store ports.DatabaseStore,
	symbols ports.SymbolMapStore,
	watcher ports.Watcher,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		logger:       log,
		reports:      reports,
		store:        store,
		symbols:      symbols,
		watcher:      watcher,
		tracer:       tracer,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		environ:      os.Environ,
	}
}

// WithStreams sets the writers the build's output is forwarded to.
func (a *App) WithStreams(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTempDir sets the directory session directories are created in.
// The default is os.TempDir.
func (a *App) WithTempDir(dir string) *App {
	a.tempDir = dir
	return a
}

// WithEnviron replaces os.Environ as the environment inherited by the build.
func (a *App) WithEnviron(environ func() []string) *App {
	a.environ = environ
	return a
}

// ConfigureLogging applies the verbosity and format flags to the logger.
// Loggers without these settings are left unchanged.
func (a *App) ConfigureLogging(verbose, jsonLogs bool) {
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(jsonLogs)
	}
}

// OutputOptions configures how a compilation database is produced.
// Zero values defer to the config file.
type OutputOptions struct {
	// Output is the database path.
	Output string
	// Append merges the records into the existing database at Output.
	Append bool
	// DisableFilter writes every report unfiltered instead of a compilation database.
	DisableFilter bool
	// Dedup is the dedup policy name.
	Dedup string
	// Jobs bounds the analysis workers.
	Jobs int
}

// CaptureOptions configures the Capture method.
type CaptureOptions struct {
	OutputOptions
	// Library is the preload library path.
	Library string
	// Build is the build command, program first.
	Build []string
}

// FilterOptions configures the Filter method.
type FilterOptions struct {
	OutputOptions
	// ReportDir holds the report files of an earlier session.
	ReportDir string
}

// Capture runs the build with the preload library and writes the compilation database.
// The database is written even when the build fails; the build's failure is returned
// afterwards as a *domain.BuildFailure.
func (a *App) Capture(ctx context.Context, opts CaptureOptions) error {
	if len(opts.Build) == 0 {
		return domain.ErrNoBuildCommand
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	settings, err := a.settings(cwd, opts.OutputOptions)
	if err != nil {
		return err
	}
	if opts.Library != "" {
		settings.PreloadLibrary = opts.Library
	}
	library, err := resolveLibrary(settings.PreloadLibrary)
	if err != nil {
		return err
	}
	settings.PreloadLibrary = library

	sessionID := uuid.NewString()
	ctx, span := a.tracer.Start(ctx, "capture", ports.WithAttribute("session", sessionID))
	defer span.End()

	sessionDir, err := a.createSession(sessionID)
	if err != nil {
		span.RecordError(err)
		return err
	}
	defer func() {
		if rmErr := os.RemoveAll(sessionDir); rmErr != nil {
			a.logger.Warn(fmt.Sprintf("failed to remove session directory %s: %v", sessionDir, rmErr))
		}
	}()

	stopWatching := a.watch(ctx, sessionDir)
	buildErr := a.runBuild(ctx, opts.Build, sessionDir, settings.PreloadLibrary, cwd)
	watched := stopWatching()

	files, err := a.reports.List(sessionDir)
	if err != nil {
		return a.abandon(span, err, buildErr)
	}
	files = observationOrder(watched, files)
	a.logger.Debug(fmt.Sprintf("observed %d invocations, %d through the watcher", len(files), len(watched)))

	if err := a.produce(ctx, files, settings, opts.OutputOptions); err != nil {
		return a.abandon(span, err, buildErr)
	}

	if buildErr != nil {
		span.RecordError(buildErr)
	}
	return buildErr
}

// Filter converts the report files of an earlier session into a compilation database.
func (a *App) Filter(ctx context.Context, opts FilterOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to get working directory")
	}

	settings, err := a.settings(cwd, opts.OutputOptions)
	if err != nil {
		return err
	}

	files, err := a.reports.List(opts.ReportDir)
	if err != nil {
		return err
	}

	return a.produce(ctx, files, settings, opts.OutputOptions)
}

// Classify analyzes a single compiler command line as if it had been observed in dir.
func (a *App) Classify(argv []string, dir string) (analyzer.Result, error) {
	inv, err := domain.NewRawInvocation(argv, dir)
	if err != nil {
		return analyzer.Result{}, err
	}

	settings, err := a.configLoader.Load(dir)
	if err != nil {
		return analyzer.Result{}, err
	}

	recognizer, err := analyzer.NewRecognizer(settings.Compilers...)
	if err != nil {
		return analyzer.Result{}, err
	}
	return analyzer.New(recognizer).Analyze(inv), nil
}

// MergeSymbols merges the CTU symbol maps in inputDir into outputFile.
// Symbols defined by more than one module are left out.
func (a *App) MergeSymbols(ctx context.Context, inputDir, outputFile string) error {
	_, span := a.tracer.Start(ctx, "ctu-merge", ports.WithAttribute("input", inputDir))
	defer span.End()

	defs, err := a.symbols.ReadDir(inputDir)
	if err != nil {
		span.RecordError(err)
		return err
	}

	merged := ctu.Merge(defs)
	if err := a.symbols.Write(outputFile, merged); err != nil {
		span.RecordError(err)
		return err
	}

	span.SetAttribute("symbols", len(merged))
	a.logger.Info(fmt.Sprintf("merged %d of %d symbol definitions into %s", len(merged), len(defs), outputFile))
	return nil
}

// settings loads the config for cwd and applies the command line overrides.
func (a *App) settings(cwd string, opts OutputOptions) (domain.Settings, error) {
	settings, err := a.configLoader.Load(cwd)
	if err != nil {
		return domain.Settings{}, err
	}

	if opts.Output != "" {
		settings.Output = opts.Output
	}
	if opts.Dedup != "" {
		policy, err := domain.ParseDedupPolicy(opts.Dedup)
		if err != nil {
			return domain.Settings{}, zerr.With(err, "dedup", opts.Dedup)
		}
		settings.Dedup = policy
	}
	if opts.Jobs > 0 {
		settings.Jobs = opts.Jobs
	}
	if settings.Jobs <= 0 {
		settings.Jobs = runtime.NumCPU()
	}
	return settings, nil
}

// abandon reports a tool failure after the build ran. The tool failure takes precedence.
func (a *App) abandon(span ports.Span, err, buildErr error) error {
	span.RecordError(err)
	if buildErr != nil {
		a.logger.Warn(fmt.Sprintf("build failed as well: %v", buildErr))
	}
	return err
}

// resolveLibrary returns the absolute path of the preload library.
// The build may change directories, so a relative path would not follow it.
func resolveLibrary(path string) (string, error) {
	if path == "" {
		return "", domain.ErrPreloadLibraryNotFound
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPreloadLibraryNotFound.Error()), "path", path)
	}
	info, err := os.Stat(abs)
	if err != nil || info.IsDir() {
		return "", zerr.With(domain.ErrPreloadLibraryNotFound, "path", abs)
	}
	return abs, nil
}

func (a *App) createSession(sessionID string) (string, error) {
	base := a.tempDir
	if base == "" {
		base = os.TempDir()
	}
	dir := filepath.Join(base, domain.SessionDirPrefix+sessionID)
	if err := os.Mkdir(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSessionCreateFailed.Error()), "path", dir)
	}
	return dir, nil
}

func (a *App) runBuild(ctx context.Context, argv []string, sessionDir, library, cwd string) error {
	ctx, span := a.tracer.Start(ctx, "build", ports.WithAttribute("command", argv[0]))
	defer span.End()

	env := shell.CaptureEnvironment(a.environ(), sessionDir, library)
	err := a.executor.Execute(ctx, argv, env, cwd, a.stdout, a.stderr)
	if err != nil {
		span.RecordError(err)
		var failure *domain.BuildFailure
		if errors.As(err, &failure) {
			span.SetAttribute("exit_code", failure.ExitCode)
		}
	}
	return err
}
