// Package domain defines the core business entities for fundlens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SpreadsheetFile: a remote spreadsheet-like file eligible for ingestion
//   - SheetBundle: one tab's raw cell grid prior to normalisation
//   - Holding: a normalised per-holding record, the persisted unit
//   - WriteCounts / Report: persistence and run outcome aggregates
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
