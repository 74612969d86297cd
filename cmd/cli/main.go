// Package main is the entry point for the albion-profit CLI.
package main

import (
	"os"

	"albion-profit/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
