// Package mongo persists normalised holdings in a MongoDB collection.
//
// Writes are idempotent: each record is replaced-or-inserted keyed by
// its business key, in unordered batches of up to 1000 operations, so
// one bad record never blocks its batch and a failed batch never
// blocks its siblings. A deployment can instead run insert-only, which
// inserts unconditionally and drops the uniqueness constraint.
//
// The client is a single long-lived process-wide resource: connected
// lazily on first use, shared across concurrent file tasks, torn down
// only on shutdown. Index setup happens exactly once per process.
package mongo
