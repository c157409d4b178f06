package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrConfiguration indicates required configuration (credentials,
	// folder id, store URI) is missing or invalid. Fatal: the run aborts
	// before any file is touched.
	ErrConfiguration = errors.New("configuration invalid")

	// ErrUnsupportedKind indicates a file's MIME type is outside the
	// spreadsheet allow-list. The file is skipped, not failed.
	ErrUnsupportedKind = errors.New("unsupported file kind")

	// ErrDecode indicates a downloaded file could not be decoded.
	// The file yields zero records and the run continues.
	ErrDecode = errors.New("decode failed")

	// ErrEnumeration indicates the enumerator could not finish listing a
	// folder subtree. Partial results may still be usable; a failure on
	// the root aborts the run.
	ErrEnumeration = errors.New("enumeration failed")

	// ErrStoreUnavailable indicates the record store could not be
	// reached or initialised.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrRunInProgress indicates an ingestion run is already executing.
	ErrRunInProgress = errors.New("ingestion run in progress")
)
