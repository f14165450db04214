// Package cli implements the strata inspector commands.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/source"
)

// rootFlags holds the source selection shared by the inspection commands.
type rootFlags struct {
	file      string
	dotenv    string
	envPrefix string
	sets      []string
	verbose   bool
}

// NewRootCommand creates the strata root command.
func NewRootCommand(version, commit, date string) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "strata",
		Short: "Strata - layered configuration inspector",
		Long: `Strata resolves application settings from ranked sources (explicit
overrides, environment variables, dotenv files, structured config files,
declared defaults) and shows where every value came from.

Sources are merged key-by-key: a higher-ranked source that defines only part
of a settings group never erases the group's other keys.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.file, "file", "", "structured config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&flags.dotenv, "dotenv", "", "dotenv file")
	rootCmd.PersistentFlags().StringVar(&flags.envPrefix, "env-prefix", "", "environment variable prefix to scan")
	rootCmd.PersistentFlags().StringArrayVar(&flags.sets, "set", nil, "explicit override, key=value (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newShowCommand(flags))
	rootCmd.AddCommand(newValidateCommand(flags))
	rootCmd.AddCommand(newSourcesCommand())

	return rootCmd
}

// buildSources assembles the ranked source list from the shared flags,
// highest precedence first.
func (f *rootFlags) buildSources() ([]strata.Source, error) {
	var sources []strata.Source

	if len(f.sets) > 0 {
		overrides := make(map[string]any, len(f.sets))
		for _, kv := range f.sets {
			parts := strings.SplitN(kv, "=", 2)
			if len(parts) != 2 {
				return nil, fmt.Errorf("invalid --set %q, want key=value", kv)
			}
			overrides[parts[0]] = parts[1]
		}
		sources = append(sources, source.NewParams(overrides))
	}
	if f.envPrefix != "" {
		sources = append(sources, source.NewEnv(f.envPrefix))
	}
	if f.dotenv != "" {
		sources = append(sources, source.NewDotenv(f.dotenv, f.envPrefix))
	}
	if f.file != "" {
		sources = append(sources, source.NewFile(f.file))
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources given, use --set, --env-prefix, --dotenv or --file")
	}
	return sources, nil
}
