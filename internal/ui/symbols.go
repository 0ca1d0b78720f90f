package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Operation succeeded
	SymbolFail    = "✗" // Operation failed
	SymbolActive  = "●" // Currently selected item
	SymbolPending = "○" // Available, not selected
)
