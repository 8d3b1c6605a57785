package domain

import "slices"

// RawInvocation is one observed process creation as reported by the capture collaborator.
// It is immutable once constructed; accessors hand out copies.
type RawInvocation struct {
	program    string
	arguments  []string
	workingDir string

	// Capture metadata. Not used for classification.
	PID      string
	PPID     string
	Function string
	Sequence uint64
}

// NewRawInvocation builds an invocation from a full argument vector (argv[0] is the program)
// and the working directory at call time.
func NewRawInvocation(argv []string, workingDir string) (RawInvocation, error) {
	if len(argv) == 0 || argv[0] == "" {
		return RawInvocation{}, ErrEmptyArgv
	}
	return RawInvocation{
		program:    argv[0],
		arguments:  slices.Clone(argv[1:]),
		workingDir: workingDir,
	}, nil
}

// Program returns the program as captured, possibly with a directory part.
func (r RawInvocation) Program() string {
	return r.program
}

// Arguments returns the argument vector without the program.
func (r RawInvocation) Arguments() []string {
	return slices.Clone(r.arguments)
}

// Argv returns the full argument vector, program first.
func (r RawInvocation) Argv() []string {
	argv := make([]string, 0, len(r.arguments)+1)
	argv = append(argv, r.program)
	return append(argv, r.arguments...)
}

// WorkingDirectory returns the directory the process was started in.
func (r RawInvocation) WorkingDirectory() string {
	return r.workingDir
}

// ReportEntry is the unfiltered form of an invocation, written when filtering is disabled.
// Fields are declared in the order they are serialized.
type ReportEntry struct {
	Command   []string `json:"command"`
	Directory string   `json:"directory"`
	Function  string   `json:"function"`
	PID       string   `json:"pid"`
	PPID      string   `json:"ppid"`
}

// Entry returns the unfiltered report entry of r.
func (r RawInvocation) Entry() ReportEntry {
	return ReportEntry{
		Command:   r.Argv(),
		Directory: r.workingDir,
		Function:  r.Function,
		PID:       r.PID,
		PPID:      r.PPID,
	}
}
