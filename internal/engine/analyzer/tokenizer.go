// Package analyzer turns captured compiler invocations into compilation records.
//
// Every function in this package is pure. The Recognizer memoizes its answers
// but is safe for concurrent use.
package analyzer

import (
	"strings"

	"go.trai.ch/cdb/internal/core/domain"
)

// Tokenize splits a compiler argument vector into flags and plain arguments.
//
// An exact dialect match is tried first, then the longest joinable flag the
// argument starts with, then the prefix-class flags such as -Wl,. Unknown flags
// are kept as flags without a value. Tokenize never fails.
func Tokenize(args []string) []domain.Token {
	tokens := make([]domain.Token, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "-" || !strings.HasPrefix(arg, "-") {
			tokens = append(tokens, domain.Token{Plain: arg})
			continue
		}

		if spec, ok := domain.LookupFlag(arg); ok {
			flag := domain.FlagToken{Name: arg, Spec: spec}
			if spec.Arity == 1 && i+1 < len(args) {
				i++
				flag.Value = args[i]
				flag.HasValue = true
				flag.Spelling = domain.SpellingSeparate
			}
			tokens = append(tokens, domain.Token{Flag: &flag})
			continue
		}

		if name, value, spec, ok := domain.LookupJoined(arg); ok {
			tokens = append(tokens, domain.Token{Flag: &domain.FlagToken{
				Name:     name,
				Value:    value,
				HasValue: true,
				Spelling: domain.SpellingJoined,
				Spec:     spec,
			}})
			continue
		}

		_, spec, _ := domain.LookupPrefix(arg)
		tokens = append(tokens, domain.Token{Flag: &domain.FlagToken{Name: arg, Spec: spec}})
	}

	return tokens
}

// Detokenize reproduces the argument vector tokens were parsed from.
func Detokenize(tokens []domain.Token) []string {
	args := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		args = append(args, tok.Args()...)
	}
	return args
}
