// Package normalise transforms raw spreadsheet grids into canonical
// holding records. It is deterministic and pure: no I/O, no clock, and
// it never fails on malformed input - the worst case is an empty result.
//
// The pipeline per sheet: banner extraction (report date + scheme name),
// header row location, synonym-based column mapping, row extraction with
// section/total filtering, numeric and date coercion, issuer inference.
package normalise
