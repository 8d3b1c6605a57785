package domain

// SymbolDefinition maps a cross translation unit symbol to the module defining it.
type SymbolDefinition struct {
	Symbol string
	// Module is the path of the defining AST dump. It may contain spaces.
	Module string
}

// Line renders the definition in symbol map format.
func (d SymbolDefinition) Line() string {
	return d.Symbol + " " + d.Module
}
