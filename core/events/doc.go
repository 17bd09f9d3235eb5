// Package events routes absorbed errors through a structured hook.
//
// Nearly every failure in a reconciliation run is deliberately swallowed:
// a degraded page truncates pagination, a failed bulk write is retried by
// the next scheduled run, a rejected item is someone else's data problem.
// Swallowing them silently would make the job impossible to operate, so
// every absorbed error is emitted as an Event through a Sink.
//
// The default ZapSink logs events at warn level. Tests use Recorder to
// assert that a degraded path actually occurred without scraping console
// output.
package events
