package ports

import "go.trai.ch/cdb/internal/core/domain"

// SymbolMapStore defines the interface for cross translation unit symbol maps.
//
//go:generate mockgen -source=symbol_map.go -destination=mocks/mock_symbol_map.go -package=mocks
type SymbolMapStore interface {
	// ReadDir parses every symbol map file in dir. Files are visited in name order.
	ReadDir(dir string) ([]domain.SymbolDefinition, error)

	// Write stores the merged definitions at path, one "symbol module" line each.
	Write(path string, defs []domain.SymbolDefinition) error
}
