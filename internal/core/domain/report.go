package domain

import "time"

// WriteCounts aggregates the outcome of bulk persistence.
// The fields mirror the store's bulk-write result surface.
type WriteCounts struct {
	Inserted int64
	Upserted int64
	Modified int64
	Matched  int64
	Failed   int64
}

// Add accumulates another set of counts into c.
func (c *WriteCounts) Add(other WriteCounts) {
	c.Inserted += other.Inserted
	c.Upserted += other.Upserted
	c.Modified += other.Modified
	c.Matched += other.Matched
	c.Failed += other.Failed
}

// Report is the structured result of one ingestion run. It is returned
// even on partial failure; only run-scoped fatal conditions surface as
// errors instead.
type Report struct {
	// RunID uniquely identifies this run in logs.
	RunID string

	// FilesSeen is the number of files the enumerator produced.
	FilesSeen int

	// ProcessedRows is the number of holdings handed to the store.
	ProcessedRows int

	// Counts aggregates persistence outcomes across all files.
	Counts WriteCounts

	// FailedFiles names files whose processing failed after retries.
	// Their contribution to the counts is zero.
	FailedFiles []string

	// Message is a human-readable summary.
	Message string

	// StartedAt and FinishedAt bound the run.
	StartedAt  time.Time
	FinishedAt time.Time
}
