// Package services contains the core application services, wired to
// the outside world only through the ports.
//
// IngestService is the orchestrator: it resolves the cursor,
// enumerates files, and drives fetch, normalise, persist per file with
// bounded concurrency and per-file failure isolation. Poller runs it
// on a fixed interval.
package services
