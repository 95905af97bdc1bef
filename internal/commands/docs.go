package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/config"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/retrieval"
)

func newDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs",
		Short: "List the loaded regulatory documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}

			docs, err := retrieval.LoadDocuments(cfg.Retrieval.DocsDir)
			if err != nil {
				return err
			}
			if len(docs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No documents in %s. Run 'corep init' or add files.\n", cfg.Retrieval.DocsDir)
				return nil
			}
			for _, d := range docs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", d.Source, len(d.Text))
			}
			return nil
		},
	}
}
