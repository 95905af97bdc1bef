package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/config"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/llm"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/logging"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/retrieval"
	"github.com/tarunmehrda/corep-reporting-assistant/internal/server"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the reporting HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.LoadOrDefault(cfgPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	logger := logging.New(os.Stdout, cfg.Logging.Level)

	searcher, err := retrieval.Open(cfg.Retrieval.DocsDir, cfg.Retrieval.CacheTTL())
	if err != nil {
		return err
	}
	defer searcher.Close()
	logger.Info("documents loaded", "count", len(searcher.Documents()))

	auditDir := ""
	if cfg.Audit.Enabled {
		auditDir = cfg.Audit.DataDir
	}

	srv := server.New(server.Options{
		Generator: llm.NewRuleBased(),
		Searcher:  searcher,
		Logger:    logger,
		TopK:      cfg.Retrieval.TopK,
		Currency:  cfg.Report.Currency,
		AuditDir:  auditDir,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	}
}
