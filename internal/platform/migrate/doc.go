// Package migrate applies the embedded database schema with goose.
//
// Each SQL driver has its own migration set (postgres/ and sqlite/), both
// producing the same logical schema: a categories table keyed by name and
// a tasks table whose seq column records insertion order.
package migrate
