// Package command implements the write side of the task tracker.
//
// Every state change is requested through an immutable command value and
// carried out by a handler whose Execute method returns a Result instead of
// an error. Handlers absorb repository failures, including panics, so no
// failure crosses the Execute boundary; callers inspect Result.IsSuccess.
// Each invocation makes at most one write attempt and emits exactly one log
// record describing its outcome.
package command
