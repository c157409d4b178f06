package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates the business-key uniqueness index and the
// read-side secondary indexes. Idempotent; the uniqueness constraint
// is dropped under insert-only mode, where duplicates are accepted.
func ensureIndexes(ctx context.Context, coll *mongo.Collection, insertOnly bool) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "scheme_name", Value: 1},
				{Key: "report_date", Value: 1},
				{Key: "isin", Value: 1},
				{Key: "instrument_name", Value: 1},
				{Key: "source_file_id", Value: 1},
				{Key: "sheet_title", Value: 1},
			},
			Options: options.Index().
				SetName("uniq_business_key").
				SetUnique(!insertOnly),
		},
		{
			Keys:    bson.D{{Key: "report_date_iso", Value: -1}},
			Options: options.Index().SetName("report_date_iso_desc"),
		},
		{
			Keys: bson.D{
				{Key: "scheme_name", Value: 1},
				{Key: "report_date_iso", Value: -1},
			},
			Options: options.Index().SetName("scheme_date"),
		},
		{
			Keys:    bson.D{{Key: "isin", Value: 1}},
			Options: options.Index().SetName("by_isin"),
		},
	})
	return err
}
