// Package main provides the advent CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/advent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
