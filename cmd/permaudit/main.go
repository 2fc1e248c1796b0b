// Package main provides the entry point for the permaudit CLI tool.
//
// The permaudit command analyzes permission usage patterns over time to
// identify dormant files: files whose last access and last modification both
// precede a configurable retention window. It writes a persisted report and
// prints a tabular console view.
//
// Usage:
//
//	permaudit [flags] path
//
// Examples:
//
//	permaudit .
//	permaudit --days 180 --output audit.txt /home/user
//	permaudit --exclude .auditignore --format json /srv
//
// For more information, run: permaudit --help
package main

import (
	"log"
	"os"

	"github.com/otuschhoff/permaudit/cmd/permaudit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
