package sync

import "time"

// Report summarizes one reconciliation run.
type Report struct {
	// RunID correlates the report with the run's log lines.
	RunID string `json:"run_id"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// DurationSeconds is the total wall-clock duration of the run.
	DurationSeconds float64 `json:"duration_seconds"`

	// Skipped is true when the supplier feed came back empty and the run
	// touched nothing.
	Skipped bool `json:"skipped"`

	// Pages is the number of catalog pages walked.
	Pages int `json:"pages"`

	// Items is the number of eligible catalog items seen across all pages.
	Items int `json:"items"`

	// Adjustments is the number of corrections submitted upstream.
	Adjustments int `json:"adjustments"`

	// UnmatchedSKUs lists catalog SKUs with no supplier record, in the
	// order encountered. Duplicates are reported as-is.
	UnmatchedSKUs []string `json:"unmatched_skus"`
}
