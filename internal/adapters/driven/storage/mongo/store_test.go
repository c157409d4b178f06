package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fundlens/fundlens/internal/core/domain"
)

type fakeExecutor struct {
	calls   [][]mongo.WriteModel
	results []*mongo.BulkWriteResult
	errs    []error
}

func (f *fakeExecutor) BulkWrite(_ context.Context, models []mongo.WriteModel,
	_ ...*options.BulkWriteOptions) (*mongo.BulkWriteResult, error) {
	i := len(f.calls)
	f.calls = append(f.calls, models)

	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var res *mongo.BulkWriteResult
	if i < len(f.results) {
		res = f.results[i]
	}
	if res == nil {
		res = &mongo.BulkWriteResult{}
	}
	return res, err
}

func testStore(cfg Config, exec bulkExecutor) *Store {
	s := NewStore(cfg)
	s.exec = exec
	return s
}

func holding(instrument, isin string) domain.Holding {
	return domain.Holding{
		InstrumentName: instrument,
		ISIN:           isin,
		SchemeName:     "Zeta Liquid Fund",
		ReportDate:     "August 15, 2025",
		ReportDateISO:  "2025-08-15",
		SourceFileID:   "f1",
		SheetTitle:     "Holdings",
	}
}

func TestBuildModels_Upsert(t *testing.T) {
	h := holding("NTPC 6.99% 2030", "INE733E07JP6")

	models := buildModels([]domain.Holding{h}, false)
	require.Len(t, models, 1)

	m, ok := models[0].(*mongo.ReplaceOneModel)
	require.True(t, ok)
	require.NotNil(t, m.Upsert)
	assert.True(t, *m.Upsert)

	filter, ok := m.Filter.(bson.D)
	require.True(t, ok)
	assert.Equal(t, bson.D{
		{Key: "scheme_name", Value: "Zeta Liquid Fund"},
		{Key: "report_date", Value: "August 15, 2025"},
		{Key: "isin", Value: "INE733E07JP6"},
		{Key: "instrument_name", Value: "NTPC 6.99% 2030"},
		{Key: "source_file_id", Value: "f1"},
		{Key: "sheet_title", Value: "Holdings"},
	}, filter)

	doc, ok := m.Replacement.(holdingDoc)
	require.True(t, ok)
	assert.Equal(t, "2025-08-15", doc.ReportDateISO)
}

func TestBuildModels_InsertOnly(t *testing.T) {
	models := buildModels([]domain.Holding{holding("a", ""), holding("b", "")}, true)
	require.Len(t, models, 2)
	for _, m := range models {
		_, ok := m.(*mongo.InsertOneModel)
		assert.True(t, ok)
	}
}

func TestChunk(t *testing.T) {
	records := make([]domain.Holding, 2500)

	batches := chunk(records, 1000)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 1000)
	assert.Len(t, batches[1], 1000)
	assert.Len(t, batches[2], 500)

	assert.Nil(t, chunk(nil, 1000))
}

func TestWrite_AggregatesCounts(t *testing.T) {
	exec := &fakeExecutor{
		results: []*mongo.BulkWriteResult{
			{UpsertedCount: 2, ModifiedCount: 1, MatchedCount: 1},
		},
	}
	s := testStore(Config{}, exec)

	counts, err := s.Write(context.Background(), []domain.Holding{
		holding("a", ""), holding("b", ""), holding("c", ""),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.WriteCounts{Upserted: 2, Modified: 1, Matched: 1}, counts)
	require.Len(t, exec.calls, 1)
	assert.Len(t, exec.calls[0], 3)
}

func TestWrite_BatchFailureIsolation(t *testing.T) {
	// Five batches of one record; batch 2 fails. The other four still
	// land and the failed batch contributes its full size to Failed.
	exec := &fakeExecutor{
		results: []*mongo.BulkWriteResult{
			{UpsertedCount: 1}, nil, {UpsertedCount: 1}, {UpsertedCount: 1}, {UpsertedCount: 1},
		},
		errs: []error{nil, assert.AnError},
	}
	s := testStore(Config{BatchSize: 1}, exec)

	records := []domain.Holding{
		holding("a", ""), holding("b", ""), holding("c", ""), holding("d", ""), holding("e", ""),
	}
	counts, err := s.Write(context.Background(), records)
	require.NoError(t, err)
	assert.Len(t, exec.calls, 5)
	assert.Equal(t, int64(4), counts.Upserted)
	assert.Equal(t, int64(1), counts.Failed)
}

func TestWrite_Empty(t *testing.T) {
	exec := &fakeExecutor{}
	s := testStore(Config{}, exec)

	counts, err := s.Write(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, counts)
	assert.Empty(t, exec.calls)
}
