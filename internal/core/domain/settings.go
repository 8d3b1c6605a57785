package domain

// Settings is the resolved configuration of a capture or filter run.
type Settings struct {
	// Output is the path of the compilation database.
	Output string
	// Dedup is the duplicate record policy.
	Dedup DedupPolicy
	// PreloadLibrary is the interception library handed to the dynamic linker.
	PreloadLibrary string
	// Compilers are extra program patterns recognized as compiler drivers.
	Compilers []string
	// Jobs bounds the number of analysis workers. Zero means one per CPU.
	Jobs int
	// Source is the config file the settings were read from, empty for defaults.
	Source string
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Output: DefaultOutputFile,
		Dedup:  DedupNone,
	}
}
