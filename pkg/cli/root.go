// Package cli implements the herodex command-line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// Build information, set by main from ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "herodex",
	Short: "herodex is a character catalog browsing service",
	Long: `herodex serves a paginated, filterable, searchable character catalog
over HTTP from an in-memory dataset loaded once at startup.`,
	SilenceUsage: true,
}

// Execute runs the CLI with the given build information.
func Execute(buildVersion, buildCommit string) error {
	if buildVersion != "" {
		version = buildVersion
	}
	if buildCommit != "" {
		commit = buildCommit
	}
	return rootCmd.Execute()
}

func init() {
	initServeCmd()
	initValidateCmd()
	initVersionCmd()
}
