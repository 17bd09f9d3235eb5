// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and carries the per-run correlation field used
// throughout a reconciliation pass.
//
// # Run Awareness
//
// Each reconciliation run is assigned a UUID at start. The WithRunID helper
// attaches that ID to the log entry, ensuring that all logs belonging to a
// specific run can be correlated even when the scheduler re-runs the job.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Run started")
//
//	// Inside a run:
//	l := logger.WithRunID(log, runID)
//	l.Warn("Page fetch degraded", zap.Error(err))
package logger
