// export_test.go exports private functions for white-box testing.
package logger

// Exported error formatting functions for black-box tests.
var (
	CollectErrorEntriesExported = collectErrorEntries
	FormatErrorEntriesExported  = formatErrorEntries
)
