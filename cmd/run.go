package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-reconciler/core/catalog"
	"stock-reconciler/core/config"
	"stock-reconciler/core/events"
	"stock-reconciler/core/logger"
	"stock-reconciler/core/notify"
	"stock-reconciler/core/supplier"
	syncfeature "stock-reconciler/feature/sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd performs a single reconciliation pass and exits.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one reconciliation pass",
	Long: `Run fetches the supplier stock feed, walks the storefront catalog
page by page, and applies corrective inventory deltas.

An empty or unreadable supplier feed skips the run entirely: a bad feed
read must never zero out a live catalog. Unmatched SKUs are emailed to
the configured operator address at the end of the pass.`,
	RunE: runOnce,
}

func init() {
	RootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = l.Sync() }()
	zap.ReplaceGlobals(l)

	service := buildService(cfg, l)

	report, err := service.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconciliation run failed: %w", err)
	}

	if report.Skipped {
		l.Info("Run skipped", zap.String("run_id", report.RunID))
	}
	return nil
}

// buildService wires the run pipeline from configuration.
func buildService(cfg *config.Config, l *zap.Logger) *syncfeature.Service {
	sink := events.NewZapSink(l)

	feed := supplier.NewClient(cfg.Supplier, sink)

	client := catalog.NewClient(cfg.Catalog)
	pager := catalog.NewPager(client, cfg.Catalog, sink)
	adjuster := catalog.NewAdjuster(client, cfg.Catalog, sink)

	mailer := notify.NewMailer(cfg.Notify)

	cooldown := time.Duration(cfg.Catalog.CooldownSeconds) * time.Second

	return syncfeature.NewService(
		feed,
		pager,
		adjuster,
		mailer,
		cfg.Reconcile.ExemptSet(),
		cooldown,
		l,
		sink,
	)
}
