package domain

import (
	"strings"
	"time"
)

// Spreadsheet-like MIME types accepted by the enumerator.
const (
	MimeTypeHostedSheet = "application/vnd.google-apps.spreadsheet"
	MimeTypeFolder      = "application/vnd.google-apps.folder"
	MimeTypeXLSX        = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeTypeXLS         = "application/vnd.ms-excel"
	MimeTypeCSV         = "text/csv"
)

// FileKind classifies how a remote file's content is retrieved and decoded.
type FileKind int

const (
	// KindUnsupported marks files outside the spreadsheet allow-list.
	// Such files are skipped, never treated as errors.
	KindUnsupported FileKind = iota

	// KindHostedSheet is a provider-hosted spreadsheet read tab-by-tab
	// through the values API.
	KindHostedSheet

	// KindExcel is an OOXML workbook (.xlsx) downloaded and decoded
	// locally.
	KindExcel

	// KindLegacyExcel is a pre-OOXML binary workbook (.xls, the OLE2
	// container) downloaded and decoded locally through the BIFF
	// reader.
	KindLegacyExcel

	// KindCSV is a comma-separated file downloaded and decoded locally.
	KindCSV
)

// DetectKind classifies a file by MIME type, falling back to the file
// name extension when the provider reports a generic MIME.
func DetectKind(mimeType, name string) FileKind {
	n := strings.ToLower(name)

	switch {
	case mimeType == MimeTypeHostedSheet:
		return KindHostedSheet
	case mimeType == MimeTypeXLSX, strings.HasSuffix(n, ".xlsx"):
		return KindExcel
	case mimeType == MimeTypeXLS, strings.HasSuffix(n, ".xls"):
		return KindLegacyExcel
	case mimeType == MimeTypeCSV, strings.HasSuffix(n, ".csv"):
		return KindCSV
	default:
		return KindUnsupported
	}
}

// SpreadsheetFile identifies a remote spreadsheet-like object.
// It is immutable once listed and re-fetched on each enumeration pass.
type SpreadsheetFile struct {
	// ID is the provider's file identifier.
	ID string

	// Name is the file's display name.
	Name string

	// MIMEType is the provider-reported content type.
	MIMEType string

	// ModifiedAt is the file's last modification time.
	ModifiedAt time.Time

	// ParentFolderID is the folder the file was discovered under.
	ParentFolderID string
}

// Kind classifies the file for fetching and decoding.
func (f SpreadsheetFile) Kind() FileKind {
	return DetectKind(f.MIMEType, f.Name)
}
