package domain

import "path/filepath"

const (
	// DefaultOutputFile is the name of the compilation database written by default.
	DefaultOutputFile = "compile_commands.json"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "cdb.yaml"

	// SessionDirPrefix prefixes the temporary directory that receives report files.
	SessionDirPrefix = "cdb-"

	// ReportFilePrefix prefixes every report file written by the preload library.
	ReportFilePrefix = "cmd."

	// RecordSeparator separates the fields of a report file.
	RecordSeparator = "\x1e"

	// UnitSeparator terminates every argument of the command field in a report file.
	UnitSeparator = "\x1f"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// Environment variables understood by the preload library.
const (
	EnvOutput        = "BEAR_OUTPUT"
	EnvPreloadLinux  = "LD_PRELOAD"
	EnvPreloadDarwin = "DYLD_INSERT_LIBRARIES"
	EnvFlatNamespace = "DYLD_FORCE_FLAT_NAMESPACE"
)

// ReportGlob returns the glob matching every report file inside dir.
func ReportGlob(dir string) string {
	return filepath.Join(dir, ReportFilePrefix+"*")
}

// IsReportFile reports whether the base name of path looks like a report file.
func IsReportFile(path string) bool {
	base := filepath.Base(path)
	return len(base) > len(ReportFilePrefix) && base[:len(ReportFilePrefix)] == ReportFilePrefix
}
