package driven

import (
	"context"

	"github.com/fundlens/fundlens/internal/core/domain"
)

// HoldingStore persists normalised holdings idempotently.
type HoldingStore interface {
	// Write splits the records into fixed-size unordered batches and
	// replaces-or-inserts each one keyed by its business key (or
	// inserts unconditionally in insert-only mode). A batch whose bulk
	// operation fails outright counts its entire size as Failed; the
	// returned error is reserved for the store being unreachable.
	Write(ctx context.Context, records []domain.Holding) (domain.WriteCounts, error)
}

// CursorStore persists the ingestion watermark between runs.
type CursorStore interface {
	// Load returns the stored cursor as an ISO-8601 timestamp, or the
	// empty string when no cursor has been saved yet.
	Load(ctx context.Context) (string, error)

	// Save replaces the stored cursor.
	Save(ctx context.Context, iso string) error
}
