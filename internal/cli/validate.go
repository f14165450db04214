package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strataconf/strata"
)

// newValidateCommand creates the validate command.
func newValidateCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every source parses",
		Long: `Load each of the given sources and report the first failure. Syntax
errors name the file and, for TOML, the parse position.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := flags.buildSources()
			if err != nil {
				return err
			}
			for _, src := range sources {
				if _, err := src.Load(cmd.Context(), strata.Schema{}); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", src.Name())
			}
			return nil
		},
	}
}
