// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the command handlers, so any implementation that honours the TaskStore
// contract (in-memory, SQLite, PostgreSQL or a test double) can be swapped in.
package store
