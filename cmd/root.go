package cmd

import (
	"fmt"
	"os"

	"stock-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "stock-reconciler",
	Short: "Supplier/storefront inventory reconciler",
	Long: `Stock Reconciler corrects a storefront's published inventory against
the supplier's authoritative stock feed. Each run is a full, stateless
reconciliation pass: unexpected drift near zero stock is corrected
immediately, restocks are pushed urgently, and SKUs the supplier no
longer carries are reported to the operator.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// We default to console format to match user expectations (CLI tool)
		// and "debug" level to get ISO8601 timestamps instead of Epoch.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
