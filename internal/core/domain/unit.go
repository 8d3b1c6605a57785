package domain

// CompileUnit is a classified single-file compilation after flag filtering.
type CompileUnit struct {
	// SourceFile is the source argument exactly as captured.
	SourceFile string
	// Output is the retained -o flag, nil when the command had none.
	Output *FlagToken
	// Phase is PhaseCompile or PhaseAssemble.
	Phase Phase
	// RetainedFlags holds every surviving flag in original order and spelling.
	RetainedFlags []FlagToken
}
