// Package scheduler runs the deadline sweep on a cron schedule, so tasks
// left open past their due day are flagged overdue without a caller
// having to ask.
package scheduler
