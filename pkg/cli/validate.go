package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herodex/herodex/pkg/catalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dataset>",
	Short: "Validate a dataset file and report its contents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		collection, err := catalog.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		nameless := 0
		for _, rec := range collection {
			if rec.Name() == "" {
				nameless++
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records\n", args[0], len(collection))
		if nameless > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "warning: %d records have no name\n", nameless)
		}
		return nil
	},
}

func initValidateCmd() {
	rootCmd.AddCommand(validateCmd)
}
