package analyzer

import "go.trai.ch/cdb/internal/core/domain"

// Filter reduces the tokens of a compile invocation to a CompileUnit.
//
// Dependency generation, query, link-only and mode flags are dropped, separate
// arguments included. Every other flag is kept in order with its spelling.
// When -o appears more than once the last one wins, as it does for the driver.
// Object and library inputs are dropped; other plain arguments are kept.
//
// Filter returns domain.ErrNoSourceFile or domain.ErrAmbiguousSourceSet unless
// exactly one source argument is present. The returned unit has PhaseCompile;
// callers set the phase they classified.
func Filter(tokens []domain.Token) (domain.CompileUnit, error) {
	unit := domain.CompileUnit{Phase: domain.PhaseCompile}
	var (
		sources []string
		scanner inputScanner
	)

	for _, tok := range tokens {
		if tok.IsFlag() {
			flag := *tok.Flag
			scanner.flag(&flag)

			switch {
			case flag.Spec.Class == domain.ClassOutput:
				// A trailing -o without a path names nothing.
				if flag.HasValue {
					unit.Output = &flag
				}
			case flag.Spec.Class.Dropped():
			default:
				unit.RetainedFlags = append(unit.RetainedFlags, flag)
			}
			continue
		}

		switch scanner.kind(tok.Plain) {
		case domain.InputSource:
			sources = append(sources, tok.Plain)
		case domain.InputObject:
		case domain.InputOther:
			unit.RetainedFlags = append(unit.RetainedFlags, domain.FlagToken{
				Name: tok.Plain,
				Spec: domain.FlagSpec{Class: domain.ClassPlain},
			})
		}
	}

	switch len(sources) {
	case 0:
		return domain.CompileUnit{}, domain.ErrNoSourceFile
	case 1:
		unit.SourceFile = sources[0]
		return unit, nil
	default:
		return domain.CompileUnit{}, domain.ErrAmbiguousSourceSet
	}
}
