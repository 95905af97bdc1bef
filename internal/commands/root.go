package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "corep",
		Short:   "COREP own funds reporting assistant",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "corep.yaml", "path to config file")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newSearchCommand())
	rootCmd.AddCommand(newDocsCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}
