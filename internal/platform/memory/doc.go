// Package memory provides an in-process implementation of store.TaskStore.
// It is used by the CLI and server when no database is configured, and by
// tests that exercise the command handlers against a real store.
package memory
