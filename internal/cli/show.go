package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/internal/logging"
)

var (
	keyStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	originStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// newShowCommand creates the show command.
func newShowCommand(flags *rootFlags) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show merged settings and their provenance",
		Long: `Merge the given sources in precedence order and print every resolved
key with the source that supplied it.

Examples:
  strata show --file config.toml
  strata show --file config.toml --dotenv .env --env-prefix APP
  strata show --set port=9000 --file config.toml
  strata show --file config.toml --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := flags.buildSources()
			if err != nil {
				return err
			}
			logger, err := logging.New(flags.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if watch {
				return runLive(cmd.Context(), sources)
			}

			logger.Debug("resolving", zap.Int("sources", len(sources)))
			settings, err := strata.Discover(cmd.Context(), sources...)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), renderSettings(settings))
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "live view that refreshes as source files change")
	return cmd
}

// renderSettings renders one "key = value (source)" line per resolved key.
func renderSettings(settings *strata.Settings) string {
	var b strings.Builder
	for _, key := range settings.Keys() {
		value, _ := settings.Value(key)
		origin, _ := settings.Origin(key)
		fmt.Fprintf(&b, "%s = %v %s\n",
			keyStyle.Render(key),
			value,
			originStyle.Render("("+originLabel(origin)+")"))
	}
	if b.Len() == 0 {
		return "no settings resolved\n"
	}
	return b.String()
}

func originLabel(o strata.Origin) string {
	if o.Path != "" && o.Path != o.Source {
		return o.Source + " " + o.Path
	}
	return o.Source
}
