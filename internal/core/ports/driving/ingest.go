package driving

import (
	"context"

	"github.com/fundlens/fundlens/internal/core/domain"
)

// RunOptions narrows an ingestion run.
type RunOptions struct {
	// SinceISO overrides the persisted cursor for this run (RFC 3339).
	// Empty means use the stored cursor, or no lower bound when none
	// has been saved yet.
	SinceISO string

	// OnlyFileIDs restricts the run to the named files, typically to
	// retry a previous run's failures. Empty means all eligible files.
	OnlyFileIDs []string
}

// Ingestor is the sole externally invokable entry point of the core.
// It drives enumerate, fetch, normalise, persist for one run.
type Ingestor interface {
	// Run executes one ingestion pass and returns a structured report,
	// even on partial failure. Only run-scoped fatal conditions
	// (configuration, root enumeration failure) return an error.
	Run(ctx context.Context, opts RunOptions) (*domain.Report, error)
}
