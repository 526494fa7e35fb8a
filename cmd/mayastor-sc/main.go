// Package main is the entry point for the mayastor-sc CLI.
//
// mayastor-sc renders the Mayastor StorageClass Helm chart from a small YAML
// configuration and can apply the result to a cluster. The chart is embedded
// in the binary and evaluated with the real Helm engine, so the output is
// identical to what a chart release would produce.
//
// Commands: render, apply, delete, validate, inspect, version, completion.
//
// For detailed usage information, run:
//
//	mayastor-sc --help
package main

import (
	"fmt"
	"os"

	"github.com/openebs/mayastor-storageclass/cmd/mayastor-sc/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
