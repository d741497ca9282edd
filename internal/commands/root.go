package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tickmark-dev/tickmark/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tickmark",
		Short:   "Deterministic audit verification for extracted financial statements",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newVerifyCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newInitCommand())

	return rootCmd
}
