package analyzer

import "go.trai.ch/cdb/internal/core/domain"

// Result is the outcome of analyzing one invocation.
type Result struct {
	// Record is set when Reason is nil.
	Record domain.CompilationRecord
	// Phase is the classified phase. It is meaningless when Compiler is false.
	Phase domain.Phase
	// Compiler reports whether the program is a known compiler driver.
	Compiler bool
	// Reason explains why no record was produced.
	Reason error
}

// Recorded reports whether the invocation produced a record.
func (r Result) Recorded() bool {
	return r.Reason == nil
}

// Analyzer composes recognition, tokenizing, classification, filtering and building.
type Analyzer struct {
	recognizer *Recognizer
}

// New creates an Analyzer that accepts the programs recognizer knows.
func New(recognizer *Recognizer) *Analyzer {
	return &Analyzer{recognizer: recognizer}
}

// Analyze turns inv into at most one compilation record.
// It is safe for concurrent use.
func (a *Analyzer) Analyze(inv domain.RawInvocation) Result {
	if !a.recognizer.IsCompiler(inv.Program()) {
		return Result{Reason: domain.ErrNotCompiler}
	}

	tokens := Tokenize(inv.Arguments())
	phase := Classify(tokens)
	if !phase.Records() {
		return Result{Phase: phase, Compiler: true, Reason: domain.ErrNotCompilePhase}
	}

	unit, err := Filter(tokens)
	if err != nil {
		return Result{Phase: phase, Compiler: true, Reason: err}
	}
	unit.Phase = phase

	return Result{
		Record:   Build(inv.Program(), unit, inv.WorkingDirectory()),
		Phase:    phase,
		Compiler: true,
	}
}
