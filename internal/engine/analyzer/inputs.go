package analyzer

import "go.trai.ch/cdb/internal/core/domain"

// inputScanner classifies plain arguments, tracking -x language overrides.
// After "-x <lang>" every plain argument is a source until "-x none".
type inputScanner struct {
	forced bool
}

func (s *inputScanner) flag(flag *domain.FlagToken) {
	if flag.Name == "-x" && flag.HasValue {
		s.forced = flag.Value != "none"
	}
}

func (s *inputScanner) kind(arg string) domain.InputKind {
	if s.forced {
		return domain.InputSource
	}
	return domain.ClassifyInput(arg)
}
