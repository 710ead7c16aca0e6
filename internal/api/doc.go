// Package api exposes the task tracker over HTTP. Handlers translate JSON
// requests into commands and store queries, and map results and errors to
// status codes without leaking internal error text to clients.
package api
