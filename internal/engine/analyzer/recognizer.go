package analyzer

import (
	"path/filepath"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/zerr"
)

// recognizerCacheSize bounds the memo of program names. Builds call few distinct compilers.
const recognizerCacheSize = 512

// defaultCompilerPatterns match the C family drivers on the program's base name:
// cc and c++, gcc and g++ with optional target prefix and version suffix,
// clang and clang++ with an optional version suffix, llvm-gcc and llvm-g++.
var defaultCompilerPatterns = []string{
	`^c(c|\+\+)$`,
	`^([^-]*-)*g(cc|\+\+)(-[0-9]+(\.[0-9]+)*)?$`,
	`^clang(\+\+)?(-[0-9]+(\.[0-9]+)*)?$`,
	`^llvm-g(cc|\+\+)$`,
}

// Recognizer decides whether a program is a known compiler driver.
type Recognizer struct {
	patterns []*regexp.Regexp
	memo     *lru.Cache[string, bool]
}

// NewRecognizer compiles the default patterns plus extra ones.
// Extra patterns are matched against the base name of the program, like the defaults.
func NewRecognizer(extra ...string) (*Recognizer, error) {
	patterns := make([]*regexp.Regexp, 0, len(defaultCompilerPatterns)+len(extra))
	for _, p := range defaultCompilerPatterns {
		patterns = append(patterns, regexp.MustCompile(p))
	}
	for _, p := range extra {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCompilerPattern.Error()), "pattern", p)
		}
		patterns = append(patterns, re)
	}

	memo, err := lru.New[string, bool](recognizerCacheSize)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create recognizer cache")
	}

	return &Recognizer{patterns: patterns, memo: memo}, nil
}

// IsCompiler reports whether program, with or without a directory part, is a compiler driver.
func (r *Recognizer) IsCompiler(program string) bool {
	if known, ok := r.memo.Get(program); ok {
		return known
	}

	base := filepath.Base(program)
	known := false
	for _, re := range r.patterns {
		if re.MatchString(base) {
			known = true
			break
		}
	}

	r.memo.Add(program, known)
	return known
}
