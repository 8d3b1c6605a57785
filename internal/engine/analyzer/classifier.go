package analyzer

import "go.trai.ch/cdb/internal/core/domain"

// Classify determines the phase of a tokenized compiler invocation.
//
// Rules, first match wins:
//  1. a query or frontend-internal flag, or -v as the only argument: DriverQuery
//  2. -E, -M or -MM: Preprocess
//  3. -c: Compile, else -S: Assemble
//  4. a link indicator, any object or library input, or no source input: Link
//  5. otherwise Compile, the driver compiles and links a single source in one go
func Classify(tokens []domain.Token) domain.Phase {
	var (
		compile, assemble, preprocess bool
		linkIndicator, objectInput    bool
		sources                       int
		scanner                       inputScanner
	)

	for _, tok := range tokens {
		if !tok.IsFlag() {
			switch scanner.kind(tok.Plain) {
			case domain.InputSource:
				sources++
			case domain.InputObject:
				objectInput = true
			case domain.InputOther:
			}
			continue
		}

		scanner.flag(tok.Flag)
		switch tok.Flag.Spec.Class {
		case domain.ClassQuery, domain.ClassInternal:
			return domain.PhaseDriverQuery
		case domain.ClassQueryAlone:
			if len(tokens) == 1 {
				return domain.PhaseDriverQuery
			}
		case domain.ClassPreprocessOnly, domain.ClassDependencyOnly:
			preprocess = true
		case domain.ClassCompileOnly:
			compile = true
		case domain.ClassAssembleOnly:
			assemble = true
		case domain.ClassLinkIndicator:
			linkIndicator = true
		default:
		}
	}

	switch {
	case preprocess:
		return domain.PhasePreprocess
	case compile:
		return domain.PhaseCompile
	case assemble:
		return domain.PhaseAssemble
	case linkIndicator, objectInput, sources == 0:
		return domain.PhaseLink
	default:
		return domain.PhaseCompile
	}
}
