// Package ctu merges the symbol maps produced for cross translation unit analysis.
package ctu

import "go.trai.ch/cdb/internal/core/domain"

// Merge keeps every symbol defined by exactly one module.
// A symbol listed again with the same module still counts as one definition.
// The result follows the order in which symbols first appear in defs.
func Merge(defs []domain.SymbolDefinition) []domain.SymbolDefinition {
	type entry struct {
		module    string
		ambiguous bool
	}

	order := make([]string, 0, len(defs))
	seen := make(map[string]*entry, len(defs))
	for _, def := range defs {
		e, ok := seen[def.Symbol]
		if !ok {
			seen[def.Symbol] = &entry{module: def.Module}
			order = append(order, def.Symbol)
			continue
		}
		if e.module != def.Module {
			e.ambiguous = true
		}
	}

	merged := make([]domain.SymbolDefinition, 0, len(order))
	for _, symbol := range order {
		if e := seen[symbol]; !e.ambiguous {
			merged = append(merged, domain.SymbolDefinition{Symbol: symbol, Module: e.module})
		}
	}
	return merged
}
