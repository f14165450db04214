package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strataconf/strata"
)

// newSourcesCommand creates the sources command.
func newSourcesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "Show the source precedence order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ranks := []struct {
				priority int
				name     string
				note     string
			}{
				{strata.PriorityParams, strata.SourceParams, "explicit init parameters (--set)"},
				{strata.PriorityEnv, strata.SourceEnv, "environment variables (--env-prefix)"},
				{strata.PriorityDotenv, strata.SourceDotenv, "dotenv file (--dotenv)"},
				{strata.PriorityFile, strata.SourceFile, "structured config file (--file)"},
				{strata.PriorityDefault, strata.SourceDefault, "schema defaults"},
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Source precedence, highest first:")
			for _, r := range ranks {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d. %-8s %s\n", r.priority, r.name, r.note)
			}
			return nil
		},
	}
}
