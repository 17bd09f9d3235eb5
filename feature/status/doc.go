// Package status is the HTTP surface for unattended operation.
//
// It exposes three operator endpoints: a liveness probe, the most recent
// run report, and a manual trigger. Triggers share the single-flight
// runner with the scheduler, so a manual run can never overlap a
// scheduled one.
package status
