package sync

import (
	"context"
	"errors"
	"sync"
)

// ErrRunInFlight is returned when a run is requested while another is
// still executing. Runs never overlap: a second concurrent walk would
// double-apply deltas within the same pass.
var ErrRunInFlight = errors.New("a reconciliation run is already in flight")

// Runner serializes runs and remembers the most recent report for the
// status surface.
type Runner struct {
	service *Service

	mu      sync.Mutex
	running bool
	last    *Report
}

// NewRunner creates a runner around the service.
func NewRunner(service *Service) *Runner {
	return &Runner{service: service}
}

// Trigger executes one run synchronously. If a run is already in flight
// it returns ErrRunInFlight without starting another.
func (r *Runner) Trigger(ctx context.Context) (*Report, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil, ErrRunInFlight
	}
	r.running = true
	r.mu.Unlock()

	report, err := r.service.Run(ctx)

	r.mu.Lock()
	r.running = false
	if report != nil {
		r.last = report
	}
	r.mu.Unlock()

	return report, err
}

// Latest returns the most recent completed report, or nil before the
// first run finishes.
func (r *Runner) Latest() *Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
