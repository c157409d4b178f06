// Package sqlite persists the ingestion cursor between runs in a
// local SQLite database, so a restarted process resumes from the last
// fully successful pass instead of re-reading the whole folder tree.
package sqlite
