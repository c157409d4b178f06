// Package driving defines the inbound ports of the ingestion core:
// the interfaces outer layers (CLI, poller) call to trigger work.
package driving
