// Package google provides shared infrastructure for the Google API
// connector.
//
// This package contains common utilities used by the drive connector
// including:
//   - Service factories building Drive and Sheets clients from a
//     service-account key file
//   - Error handling for common Google API errors (401, 403, 404, 429)
//   - Rate limiting to respect Google API quotas
//
// # OAuth2 Scopes
//
// The connector uses these read-only scopes:
//   - https://www.googleapis.com/auth/drive.readonly
//   - https://www.googleapis.com/auth/spreadsheets.readonly
//
// The service account must be granted access to the ingestion folder
// (shared with the account's email, or via domain-wide delegation).
package google
