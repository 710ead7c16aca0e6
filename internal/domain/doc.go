// Package domain contains the core business entities of the task tracker:
// tasks, the categories that classify them, and the status transitions a
// task goes through. It is independent of any storage or delivery mechanism.
package domain
