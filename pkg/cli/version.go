package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "herodex %s (%s)\n", version, commit)
	},
}

func initVersionCmd() {
	rootCmd.AddCommand(versionCmd)
}
