package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/config"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/retrieval"
)

func newSearchCommand() *cobra.Command {
	var topK int

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the loaded regulatory documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}

			searcher, err := retrieval.Open(cfg.Retrieval.DocsDir, cfg.Retrieval.CacheTTL())
			if err != nil {
				return err
			}
			defer searcher.Close()

			query := strings.Join(args, " ")
			if topK <= 0 {
				topK = cfg.Retrieval.TopK
			}
			results := searcher.Search(query, topK)
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No matching documents.")
				return nil
			}
			for i, p := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (score %.2f)\n", i+1, p.Source, p.Score)
				fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", firstLine(p.Text))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&topK, "top-k", 0, "number of results (default from config)")
	return cmd
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return line
}
