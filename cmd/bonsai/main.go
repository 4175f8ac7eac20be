// Command bonsai resolves the search cluster URL the way application startup
// does and prints the result.
package main

import (
	"os"

	"github.com/jongio/bonsai-core/cliout"
)

// Set by ldflags at build time.
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
