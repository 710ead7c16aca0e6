// Package postgres provides the PostgreSQL implementation of store.TaskStore.
// It talks to the database through database/sql with the pgx stdlib driver
// and maps PostgreSQL error codes onto the store package's error values.
package postgres
