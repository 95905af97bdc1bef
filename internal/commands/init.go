package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/config"
)

// starterDocs seeds a new install with enough regulatory text for retrieval
// to return something useful before real documents are added.
var starterDocs = map[string]string{
	"PRA_own_funds.txt": `Own funds consist of Tier 1 capital and Tier 2 capital.
Common Equity Tier 1 (CET1) capital comprises ordinary share capital,
retained earnings and other accumulated comprehensive income. Intangible
assets, including goodwill, must be deducted from CET1 capital. Deferred
tax assets that rely on future profitability are also deducted.
`,
	"tier_capital.txt": `Additional Tier 1 (AT1) instruments are perpetual
instruments with no incentive to redeem, subordinated to Tier 2. Tier 2
capital includes subordinated debt with an original maturity of at least
five years. Total Tier 1 capital is CET1 plus AT1. Total own funds are
Tier 1 plus Tier 2 capital.
`,
}

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a reporting workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(cmd, absDir)
		},
	}
	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	cfg := config.Default()

	docsDir := filepath.Join(dir, cfg.Retrieval.DocsDir)
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	cfgPath := filepath.Join(dir, "corep.yaml")
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("config already exists at %s", cfgPath)
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	for name, text := range starterDocs {
		path := filepath.Join(docsDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return fmt.Errorf("writing starter doc %s: %w", name, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized reporting workspace in %s\n", dir)
	fmt.Fprintf(cmd.OutOrStdout(), "Add regulatory documents to %s and run 'corep generate'.\n", docsDir)
	return nil
}
