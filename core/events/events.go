package events

import "go.uber.org/zap"

// Kind identifies the class of degraded behavior an event reports.
type Kind string

const (
	// KindSupplierUnavailable means the supplier feed could not be read.
	// The run is skipped entirely when this happens.
	KindSupplierUnavailable Kind = "supplier_unavailable"
	// KindPageDegraded means a catalog page fetch failed for a non-throttle
	// reason and pagination was truncated at that page.
	KindPageDegraded Kind = "page_degraded"
	// KindThrottled means a catalog page fetch was throttled and retried
	// after a computed wait.
	KindThrottled Kind = "throttled"
	// KindThrottleCeiling means the configured throttle retry ceiling was
	// hit and the page degraded to terminal-empty.
	KindThrottleCeiling Kind = "throttle_ceiling"
	// KindWritePartial means the bulk adjustment succeeded at the request
	// level but the catalog rejected individual items.
	KindWritePartial Kind = "write_partial"
	// KindWriteFailed means the bulk adjustment request itself failed and
	// no adjustments from that page were applied.
	KindWriteFailed Kind = "write_failed"
	// KindNotifyFailed means the unmatched-SKU notification could not be
	// delivered.
	KindNotifyFailed Kind = "notify_failed"
)

// Event describes a single absorbed error or degraded-path occurrence.
// Events never abort the run; they exist so operators and tests can observe
// what the run silently survived.
type Event struct {
	// Kind classifies the occurrence.
	Kind Kind

	// Err is the underlying error, if any.
	Err error

	// Fields carries occurrence-specific detail (cursor, counts, waits).
	Fields map[string]any
}

// Sink receives every absorbed error routed through the system.
type Sink interface {
	Degraded(e Event)
}

// Emit sends the event to the sink, tolerating a nil sink.
func Emit(s Sink, e Event) {
	if s == nil {
		return
	}
	s.Degraded(e)
}

// ZapSink logs every event through a zap logger at warn level.
type ZapSink struct {
	log *zap.Logger
}

// NewZapSink creates a sink backed by the given logger.
func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

// Degraded implements Sink.
func (s *ZapSink) Degraded(e Event) {
	fields := make([]zap.Field, 0, len(e.Fields)+2)
	fields = append(fields, zap.String("kind", string(e.Kind)))
	if e.Err != nil {
		fields = append(fields, zap.Error(e.Err))
	}
	for k, v := range e.Fields {
		fields = append(fields, zap.Any(k, v))
	}
	s.log.Warn("Degraded path", fields...)
}

// Recorder is a Sink that captures events in order, for tests.
type Recorder struct {
	Events []Event
}

// Degraded implements Sink.
func (r *Recorder) Degraded(e Event) {
	r.Events = append(r.Events, e)
}

// Kinds returns the kinds of all recorded events in order.
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.Events))
	for _, e := range r.Events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
