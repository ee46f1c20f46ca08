// herodex - character catalog browsing service
package main

import (
	"os"

	"github.com/herodex/herodex/pkg/cli"
)

// Build-time variables set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if err := cli.Execute(Version, Commit); err != nil {
		os.Exit(1)
	}
}
