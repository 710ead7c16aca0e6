// Package testutils provides testing utilities shared across packages:
//
//  1. Creating test domain entities (tasks, categories)
//  2. Capturing slog records in memory, with attribute values preserved
//     exactly as logged (errors keep their identity)
//  3. A contract suite that every store.TaskStore implementation runs
//
// Example:
//
//	logger, handler := testutils.NewRecordingLogger()
//	// ... exercise code that logs through logger ...
//	records := handler.RecordsAt(slog.LevelError)
package testutils
