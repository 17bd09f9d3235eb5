package cmd

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-reconciler/core/config"
	"stock-reconciler/core/logger"
	"stock-reconciler/feature/status"
	syncfeature "stock-reconciler/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd runs the reconciler unattended: scheduled runs plus a status
// HTTP surface.
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciler in unattended mode",
	Long: `Starts the scheduler and the status HTTP server.

A reconciliation run is started immediately and then repeated at the
configured interval. The HTTP surface exposes a liveness probe, the last
run's report, and a manual trigger; manual and scheduled runs share a
single-flight guard and never overlap.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer func() { _ = logg.Sync() }()
		zap.ReplaceGlobals(logg)

		// 3. Wire the run pipeline
		runner := syncfeature.NewRunner(buildService(cfg, logg))

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// Logging Middleware (Custom to use Zap)
		app.Use(func(c *fiber.Ctx) error {
			logg.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				logg.Error("Request error", zap.Error(err))
			}
			return err
		})

		status.NewHandler(runner, logg).RegisterRoutes(app)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// 5. Scheduler: run now, then on every tick
		go schedule(ctx, runner, cfg.Server.Interval(), logg)

		// 6. Start Server
		go func() {
			logg.Info("Starting status server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Status server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

// schedule triggers a run immediately and then once per interval until
// the context ends. An overlapping trigger is skipped, not queued.
func schedule(ctx context.Context, runner *syncfeature.Runner, interval time.Duration, logg *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := runner.Trigger(ctx); err != nil {
			if errors.Is(err, syncfeature.ErrRunInFlight) {
				logg.Warn("Scheduled run skipped, previous run still in flight")
			} else if ctx.Err() == nil {
				logg.Error("Scheduled run failed", zap.Error(err))
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
