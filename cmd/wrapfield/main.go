// Command wrapfield opens a wrapped text field in the terminal.
package main

import (
	"fmt"
	"os"
)

// Build information injected via ldflags at build time.
var (
	commit = "none"
	date   = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
