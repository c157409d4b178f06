package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	authgoogle "golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Scopes required by the ingestion connector. Read-only on both APIs.
var Scopes = []string{
	drive.DriveReadonlyScope,
	sheets.SpreadsheetsReadonlyScope,
}

// TokenSourceFromKeyFile builds an oauth2.TokenSource from a
// service-account key file.
func TokenSourceFromKeyFile(ctx context.Context, keyPath string) (oauth2.TokenSource, error) {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("read service account key: %w", err)
	}

	creds, err := authgoogle.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	return creds.TokenSource, nil
}

// NewDriveService creates a Google Drive API service using the provided TokenSource.
func NewDriveService(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(ts))
}

// NewSheetsService creates a Google Sheets API service using the provided TokenSource.
func NewSheetsService(ctx context.Context, ts oauth2.TokenSource) (*sheets.Service, error) {
	return sheets.NewService(ctx, option.WithTokenSource(ts))
}
