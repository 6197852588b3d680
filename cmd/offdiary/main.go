// Package main is the entry point for the offdiary CLI.
package main

import (
	"os"

	"github.com/tail1887/offline-diary/cmd/offdiary/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
