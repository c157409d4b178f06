package cli

import (
	"context"
	"fmt"

	configfile "github.com/fundlens/fundlens/internal/adapters/driven/config/file"
	mongostore "github.com/fundlens/fundlens/internal/adapters/driven/storage/mongo"
	sqlitestore "github.com/fundlens/fundlens/internal/adapters/driven/storage/sqlite"
	"github.com/fundlens/fundlens/internal/connectors/google"
	"github.com/fundlens/fundlens/internal/connectors/google/drive"
	"github.com/fundlens/fundlens/internal/core/services"
	"github.com/fundlens/fundlens/internal/logger"
)

// runtime bundles the wired services for one command invocation.
type runtime struct {
	cfg      *configfile.Config
	ingestor *services.IngestService

	holdings *mongostore.Store
	cursors  *sqlitestore.Store
}

// buildRuntime loads configuration and wires the full ingestion stack.
func buildRuntime(ctx context.Context, insertOnly bool) (*runtime, error) {
	cfg, err := configfile.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	ts, err := google.TokenSourceFromKeyFile(ctx, cfg.Google.KeyPath)
	if err != nil {
		return nil, err
	}
	driveSvc, err := google.NewDriveService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	sheetsSvc, err := google.NewSheetsService(ctx, ts)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	source := drive.New(driveSvc, sheetsSvc, drive.Config{
		RootFolderID: cfg.Google.FolderID,
	})

	holdings := mongostore.NewStore(mongostore.Config{
		URI:        cfg.Mongo.URI,
		Database:   cfg.Mongo.Database,
		Collection: cfg.Mongo.Collection,
		InsertOnly: cfg.Mongo.InsertOnly || insertOnly,
	})

	cursors, err := sqlitestore.NewStore(cfg.Ingest.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open cursor store: %w", err)
	}

	ingestor := services.NewIngestService(source, holdings, cursors, services.Options{
		Concurrency:   cfg.Ingest.Concurrency,
		RetryAttempts: cfg.Ingest.RetryAttempts,
		RetryBase:     cfg.RetryBase(),
	})

	return &runtime{
		cfg:      cfg,
		ingestor: ingestor,
		holdings: holdings,
		cursors:  cursors,
	}, nil
}

// close releases the long-lived stores. Process shutdown only.
func (r *runtime) close(ctx context.Context) {
	if err := r.holdings.Close(ctx); err != nil {
		logger.Warn("closing mongo client: %v", err)
	}
	if err := r.cursors.Close(); err != nil {
		logger.Warn("closing cursor store: %v", err)
	}
}
