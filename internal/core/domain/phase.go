package domain

// Phase is the classified purpose of a captured invocation.
type Phase uint8

const (
	// PhaseDriverQuery is a driver call that reports information and compiles nothing.
	PhaseDriverQuery Phase = iota
	// PhasePreprocess stops after preprocessing or dependency generation.
	PhasePreprocess
	// PhaseCompile compiles a translation unit to an object.
	PhaseCompile
	// PhaseAssemble compiles a translation unit to assembly (-S).
	PhaseAssemble
	// PhaseLink links objects or libraries.
	PhaseLink
)

// String returns the lowercase phase name.
func (p Phase) String() string {
	switch p {
	case PhaseDriverQuery:
		return "query"
	case PhasePreprocess:
		return "preprocess"
	case PhaseCompile:
		return "compile"
	case PhaseAssemble:
		return "assemble"
	case PhaseLink:
		return "link"
	default:
		return "unknown"
	}
}

// Records reports whether invocations of this phase belong in the compilation database.
func (p Phase) Records() bool {
	return p == PhaseCompile || p == PhaseAssemble
}

// ModeFlag returns the flag that selects the phase in a reconstructed command.
func (p Phase) ModeFlag() string {
	if p == PhaseAssemble {
		return "-S"
	}
	return "-c"
}
