// Package sqlite provides a SQLite implementation of store.TaskStore backed
// by the pure-Go modernc.org/sqlite driver. It suits single-process
// deployments and tests that want real SQL without a database server.
package sqlite
