// Package main implements the todo command: an HTTP API server for task
// tracking plus a CLI for running migrations and issuing task commands
// directly against the configured store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
