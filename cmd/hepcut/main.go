// This is the main entry point for the hepcut CLI.
// Build with: go build -o bin/hepcut ./cmd/hepcut
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
