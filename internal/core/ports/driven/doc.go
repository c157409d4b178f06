// Package driven defines the outbound ports of the ingestion core:
// interfaces the core calls, implemented by adapters (the drive
// connector, the record store, the cursor store).
package driven
