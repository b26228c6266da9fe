// Package history persists a record of report runs.
//
// Every successful `space services` render from project configuration is
// recorded in a SQLite database under the XDG data directory. The history
// command reads it back, newest first, so a developer can see when a
// project's service topology last changed.
//
// The store is strictly best-effort from the caller's perspective: a report
// must never fail because the history database is unavailable.
package history
