package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fundlens/fundlens/internal/core/domain"
)

// holdingDoc is the stored document shape.
type holdingDoc struct {
	InstrumentName  string   `bson:"instrument_name"`
	ISIN            string   `bson:"isin"`
	Rating          string   `bson:"rating"`
	Quantity        *float64 `bson:"quantity"`
	MarketValueLacs *float64 `bson:"market_value_lacs"`
	PctToNAV        *float64 `bson:"pct_to_nav"`
	YTM             *float64 `bson:"ytm"`
	Issuer          string   `bson:"issuer"`
	SchemeName      string   `bson:"scheme_name"`
	ReportDate      string   `bson:"report_date"`
	ReportDateISO   string   `bson:"report_date_iso"`

	SourceFileID     string    `bson:"source_file_id"`
	SourceFileName   string    `bson:"source_file_name"`
	SheetTitle       string    `bson:"sheet_title"`
	RowIndex         int       `bson:"row_index"`
	SourceModifiedAt time.Time `bson:"source_modified_at"`
	SourceOrigin     string    `bson:"source_origin"`
}

func toDoc(h domain.Holding) holdingDoc {
	return holdingDoc{
		InstrumentName:   h.InstrumentName,
		ISIN:             h.ISIN,
		Rating:           h.Rating,
		Quantity:         h.Quantity,
		MarketValueLacs:  h.MarketValueLacs,
		PctToNAV:         h.PctToNAV,
		YTM:              h.YTM,
		Issuer:           h.Issuer,
		SchemeName:       h.SchemeName,
		ReportDate:       h.ReportDate,
		ReportDateISO:    h.ReportDateISO,
		SourceFileID:     h.SourceFileID,
		SourceFileName:   h.SourceFileName,
		SheetTitle:       h.SheetTitle,
		RowIndex:         h.RowIndex,
		SourceModifiedAt: h.SourceModifiedAt,
		SourceOrigin:     h.SourceOrigin,
	}
}

// keyFilter matches a holding's business key.
func keyFilter(h domain.Holding) bson.D {
	return bson.D{
		{Key: "scheme_name", Value: h.SchemeName},
		{Key: "report_date", Value: h.ReportDate},
		{Key: "isin", Value: h.ISIN},
		{Key: "instrument_name", Value: h.InstrumentName},
		{Key: "source_file_id", Value: h.SourceFileID},
		{Key: "sheet_title", Value: h.SheetTitle},
	}
}

// buildModels converts a batch into bulk write models: replace-by-key
// upserts, or plain inserts in insert-only mode.
func buildModels(records []domain.Holding, insertOnly bool) []mongo.WriteModel {
	models := make([]mongo.WriteModel, 0, len(records))
	for _, h := range records {
		if insertOnly {
			models = append(models, mongo.NewInsertOneModel().SetDocument(toDoc(h)))
			continue
		}
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(keyFilter(h)).
			SetReplacement(toDoc(h)).
			SetUpsert(true))
	}
	return models
}

// chunk splits records into fixed-size batches, preserving order.
func chunk(records []domain.Holding, size int) [][]domain.Holding {
	var out [][]domain.Holding
	for start := 0; start < len(records); start += size {
		end := min(start+size, len(records))
		out = append(out, records[start:end])
	}
	return out
}
