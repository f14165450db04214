package main

import (
	"fmt"
	"os"

	"github.com/strataconf/strata/internal/cli"
)

var (
	version = "dev"     // Overridden by ldflags
	commit  = "none"    // Overridden by ldflags
	date    = "unknown" // Overridden by ldflags
)

func main() {
	rootCmd := cli.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
