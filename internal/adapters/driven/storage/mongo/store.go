package mongo

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fundlens/fundlens/internal/core/domain"
	"github.com/fundlens/fundlens/internal/logger"
)

// DefaultBatchSize is the bulk-write chunk size.
const DefaultBatchSize = 1000

// Config holds the store configuration.
type Config struct {
	// URI is the MongoDB connection string.
	URI string

	// Database and Collection name the target collection.
	Database   string
	Collection string

	// InsertOnly inserts records unconditionally instead of upserting
	// by business key. The uniqueness index is not enforced in this
	// mode. Deployment-time policy, not a per-record decision.
	InsertOnly bool

	// BatchSize overrides the bulk-write chunk size.
	BatchSize int
}

// bulkExecutor is the slice of *mongo.Collection the writer needs.
type bulkExecutor interface {
	BulkWrite(ctx context.Context, models []mongo.WriteModel,
		opts ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error)
}

// Store implements the driven.HoldingStore port over MongoDB.
type Store struct {
	cfg Config

	mu     sync.Mutex
	client *mongo.Client
	exec   bulkExecutor
}

// NewStore creates a store. No connection is made until first use.
func NewStore(cfg Config) *Store {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &Store{cfg: cfg}
}

// Write persists the records in unordered batches, replacing by
// business key (or inserting unconditionally in insert-only mode).
// A batch whose bulk operation fails outright counts its entire size
// as Failed. The returned error is reserved for the store itself being
// unreachable.
func (s *Store) Write(ctx context.Context, records []domain.Holding) (domain.WriteCounts, error) {
	var counts domain.WriteCounts
	if len(records) == 0 {
		return counts, nil
	}

	exec, err := s.executor(ctx)
	if err != nil {
		return counts, err
	}

	for _, batch := range chunk(records, s.cfg.BatchSize) {
		models := buildModels(batch, s.cfg.InsertOnly)

		res, err := exec.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
		if err != nil {
			counts.Failed += int64(len(batch))
			logger.Warn("mongo: bulk write batch of %d failed: %v", len(batch), err)
			continue
		}

		counts.Inserted += res.InsertedCount
		counts.Upserted += res.UpsertedCount
		counts.Modified += res.ModifiedCount
		counts.Matched += res.MatchedCount
	}
	return counts, nil
}

// executor returns the shared collection handle, connecting and
// ensuring indexes on first use. The lock makes first-use exclusive,
// so index setup runs exactly once however many file tasks race here.
func (s *Store) executor(ctx context.Context) (bulkExecutor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.exec != nil {
		return s.exec, nil
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: connect: %v", domain.ErrStoreUnavailable, err)
	}

	coll := client.Database(s.cfg.Database).Collection(s.cfg.Collection)
	if err := ensureIndexes(ctx, coll, s.cfg.InsertOnly); err != nil {
		// Index creation failing (e.g. pre-existing conflicting index)
		// should not block ingestion.
		logger.Warn("mongo: index creation failed (continuing): %v", err)
	}
	logger.Debug("mongo: connected to %s.%s", s.cfg.Database, s.cfg.Collection)

	s.client = client
	s.exec = coll
	return s.exec, nil
}

// Close tears down the shared client. Call on process shutdown only.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.exec = nil
	return err
}
