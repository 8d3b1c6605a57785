package domain

import "go.trai.ch/zerr"

var (
	// ErrAmbiguousSourceSet is returned when an invocation names more than one source file.
	ErrAmbiguousSourceSet = zerr.New("invocation compiles more than one source file")

	// ErrNoSourceFile is returned when an invocation names no recognized source file.
	ErrNoSourceFile = zerr.New("invocation has no source file")

	// ErrNotCompiler is returned when the invoked program is not a known compiler driver.
	ErrNotCompiler = zerr.New("program is not a known compiler")

	// ErrNotCompilePhase is returned when an invocation does not compile a translation unit.
	ErrNotCompilePhase = zerr.New("invocation does not compile")

	// ErrEmptyArgv is returned when a captured command line has no program.
	ErrEmptyArgv = zerr.New("command line is empty")

	// ErrDatabaseSealed is returned when appending to a database after its session ended.
	ErrDatabaseSealed = zerr.New("compilation database is sealed")

	// ErrCollectorClosed is returned when submitting to a collector that has been closed.
	ErrCollectorClosed = zerr.New("collector is closed")

	// ErrDuplicateSequence is returned when two results are submitted for the same sequence number.
	ErrDuplicateSequence = zerr.New("duplicate sequence number")

	// ErrInvalidDedupPolicy is returned when a deduplication policy name is unknown.
	ErrInvalidDedupPolicy = zerr.New("invalid deduplication policy, expected 'none' or 'exact'")

	// ErrNoBuildCommand is returned when capture is requested without a build command.
	ErrNoBuildCommand = zerr.New("no build command specified")

	// ErrPreloadLibraryNotFound is returned when the interception library is not configured or missing.
	ErrPreloadLibraryNotFound = zerr.New("preload library not found")

	// ErrBuildFailed is returned when the intercepted build exits with a non-zero status.
	ErrBuildFailed = zerr.New("build command failed")

	// ErrBuildStartFailed is returned when the build command cannot be started.
	ErrBuildStartFailed = zerr.New("failed to start build command")

	// ErrSessionCreateFailed is returned when the report directory cannot be created.
	ErrSessionCreateFailed = zerr.New("failed to create capture session directory")

	// ErrReportReadFailed is returned when a report file cannot be read.
	ErrReportReadFailed = zerr.New("failed to read report file")

	// ErrReportMalformed is returned when a report file does not match the record format.
	ErrReportMalformed = zerr.New("malformed report file")

	// ErrReportDirNotFound is returned when the report directory does not exist.
	ErrReportDirNotFound = zerr.New("report directory not found")

	// ErrWatcherFailed is returned when the report directory cannot be watched.
	ErrWatcherFailed = zerr.New("failed to watch report directory")

	// ErrDatabaseReadFailed is returned when an existing compilation database cannot be read.
	ErrDatabaseReadFailed = zerr.New("failed to read compilation database")

	// ErrDatabaseUnmarshalFailed is returned when an existing compilation database cannot be parsed.
	ErrDatabaseUnmarshalFailed = zerr.New("failed to parse compilation database")

	// ErrDatabaseMarshalFailed is returned when the compilation database cannot be encoded.
	ErrDatabaseMarshalFailed = zerr.New("failed to encode compilation database")

	// ErrDatabaseWriteFailed is returned when the compilation database cannot be written.
	ErrDatabaseWriteFailed = zerr.New("failed to write compilation database")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrInvalidCompilerPattern is returned when a configured compiler pattern is not a valid regexp.
	ErrInvalidCompilerPattern = zerr.New("invalid compiler pattern")

	// ErrSymbolMapReadFailed is returned when a CTU symbol map file cannot be read.
	ErrSymbolMapReadFailed = zerr.New("failed to read symbol map")

	// ErrSymbolMapMalformed is returned when a CTU symbol map line has no module part.
	ErrSymbolMapMalformed = zerr.New("malformed symbol map entry")

	// ErrSymbolMapWriteFailed is returned when the merged CTU symbol map cannot be written.
	ErrSymbolMapWriteFailed = zerr.New("failed to write symbol map")
)

// BuildFailure reports the exit status of a failed intercepted build.
// It unwraps to ErrBuildFailed.
type BuildFailure struct {
	ExitCode int
}

func (e *BuildFailure) Error() string {
	return ErrBuildFailed.Error()
}

func (e *BuildFailure) Unwrap() error {
	return ErrBuildFailed
}
