// Package main provides the chess CLI tool for playing and replaying
// two-player games under the standard rules.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
