// Package decode turns downloaded spreadsheet files (xlsx, xls, csv)
// into the same sheet-bundle shape the hosted-sheet reader produces, so
// the normaliser never cares where a grid came from.
//
// Decode failures are absorbed: a corrupt file yields zero bundles, not
// an error, so one bad file cannot abort a batch.
package decode
