package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/config"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/llm"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/model"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/pipeline"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/retrieval"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/template"
)

func newGenerateCommand() *cobra.Command {
	var format string
	var topK int

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate an own funds report from a capital description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}
			return runGenerate(cmd, cfg, strings.Join(args, " "), format, topK)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "output format: text, json, csv or html")
	cmd.Flags().IntVar(&topK, "top-k", 0, "number of supporting passages (default from config)")

	return cmd
}

func runGenerate(cmd *cobra.Command, cfg *config.Config, query, format string, topK int) error {
	searcher, err := retrieval.Open(cfg.Retrieval.DocsDir, cfg.Retrieval.CacheTTL())
	if err != nil {
		return err
	}
	defer searcher.Close()

	if topK <= 0 {
		topK = cfg.Retrieval.TopK
	}
	passages := searcher.Search(query, topK)

	raw, err := llm.NewRuleBased().Generate(cmd.Context(), query, passages)
	if err != nil {
		return err
	}

	result, err := pipeline.Runner{Currency: cfg.Report.Currency}.Run(raw, passages)
	if err != nil {
		return fmt.Errorf("generating report: %w", err)
	}

	out := cmd.OutOrStdout()
	switch format {
	case "text":
		printResult(out, result)
	case template.FormatJSON, template.FormatCSV, template.FormatHTML:
		data, err := template.Export(result.Record, result.Rows, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	return nil
}

func printResult(out io.Writer, result pipeline.Result) {
	fmt.Fprintf(out, "COREP Template %s (%s), reporting date %s\n\n",
		model.TemplateID, result.Record.Currency, result.Record.ReportingDate.Format("2006-01-02"))

	for _, row := range result.Rows {
		fmt.Fprintf(out, "  %s  %-26s %20s\n", row.RowNumber, row.Description, row.FormattedAmount)
	}

	s := result.Report.Summary
	fmt.Fprintf(out, "\nValidation: %s (%d errors, %d warnings, %d info)\n",
		s.Status, s.Errors, s.Warnings, s.Info)
	for _, f := range result.Report.Flags {
		fmt.Fprintf(out, "  [%s] %s\n", strings.ToUpper(string(f.Severity)), f.Message)
	}
	if len(result.Report.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, r := range result.Report.Recommendations {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}
	if len(result.Notes) > 0 {
		fmt.Fprintln(out, "\nNormalization notes:")
		for _, n := range result.Notes {
			fmt.Fprintf(out, "  - %s\n", n)
		}
	}
	if len(result.Passages) > 0 {
		fmt.Fprintln(out, "\nSupporting passages:")
		for _, p := range result.Passages {
			fmt.Fprintf(out, "  - %s (score %.2f)\n", p.Source, p.Score)
		}
	}
}
