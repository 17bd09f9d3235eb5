package sync

import (
	"context"
	"time"

	"stock-reconciler/core/catalog"
	"stock-reconciler/core/events"
	"stock-reconciler/core/logger"
	"stock-reconciler/core/reconcile"
	"stock-reconciler/core/supplier"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedReader produces the full supplier stock list, once per run.
type FeedReader interface {
	Fetch(ctx context.Context) []supplier.Record
}

// Pager streams pages of storefront catalog items.
type Pager interface {
	NextPage(ctx context.Context, cursor string) (catalog.Page, error)
}

// Adjuster applies a page's corrections in one bulk call, best effort.
type Adjuster interface {
	Apply(ctx context.Context, adjustments []catalog.Adjustment) int
}

// Notifier receives the accumulated unmatched-SKU list after the last
// page. It must be a no-op for an empty list.
type Notifier interface {
	Notify(ctx context.Context, skus []string) error
}

// Service runs one full reconciliation pass: supplier feed, then the
// sequential page walk, diffing and bulk-adjusting page by page.
type Service struct {
	feed     FeedReader
	pager    Pager
	adjuster Adjuster
	notifier Notifier
	exempt   map[string]struct{}
	cooldown time.Duration
	logger   *zap.Logger
	events   events.Sink

	// Sleep performs the post-batch cooldown. Replaceable in tests.
	Sleep catalog.Sleeper
}

// NewService creates a sync service.
func NewService(
	feed FeedReader,
	pager Pager,
	adjuster Adjuster,
	notifier Notifier,
	exempt map[string]struct{},
	cooldown time.Duration,
	log *zap.Logger,
	sink events.Sink,
) *Service {
	return &Service{
		feed:     feed,
		pager:    pager,
		adjuster: adjuster,
		notifier: notifier,
		exempt:   exempt,
		cooldown: cooldown,
		logger:   log,
		events:   sink,
		Sleep:    catalog.DefaultSleeper,
	}
}

// Run performs one stateless reconciliation pass.
//
// An empty supplier feed skips the whole run with no catalog reads or
// writes. Everything below the top level degrades instead of failing; the
// only errors Run returns are context cancellation and whatever genuinely
// unexpected condition escapes the collaborators.
func (s *Service) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}
	l := logger.WithRunID(s.logger, report.RunID)

	records := s.feed.Fetch(ctx)
	if len(records) == 0 {
		report.Skipped = true
		report.DurationSeconds = time.Since(report.StartedAt).Seconds()
		l.Info("No supplier inventory to reconcile, skipping run")
		return report, nil
	}
	index := supplier.Index(records)
	l.Info("Supplier feed loaded", zap.Int("records", len(records)))

	cursor := ""
	for hasMore := true; hasMore; {
		page, err := s.pager.NextPage(ctx, cursor)
		if err != nil {
			return nil, err
		}
		report.Pages++
		report.Items += len(page.Items)

		adjustments, unmatched := reconcile.Diff(page.Items, index, s.exempt)
		report.UnmatchedSKUs = append(report.UnmatchedSKUs, unmatched...)

		if len(adjustments) > 0 {
			l.Info("Adjusting inventory items",
				zap.Int("count", len(adjustments)),
				zap.Int("page", report.Pages),
			)
			report.Adjustments += s.adjuster.Apply(ctx, adjustments)

			// Self-imposed cooldown to stay friendly with the rate
			// limiter before the next page fetch.
			if err := s.Sleep(ctx, s.cooldown); err != nil {
				return nil, err
			}
		}

		cursor = page.Cursor
		hasMore = page.HasMore
	}

	if err := s.notifier.Notify(ctx, report.UnmatchedSKUs); err != nil {
		events.Emit(s.events, events.Event{
			Kind:   events.KindNotifyFailed,
			Err:    err,
			Fields: map[string]any{"unmatched": len(report.UnmatchedSKUs)},
		})
	}

	report.DurationSeconds = time.Since(report.StartedAt).Seconds()
	l.Info("Inventory sync complete",
		zap.Float64("duration_seconds", report.DurationSeconds),
		zap.Int("pages", report.Pages),
		zap.Int("items", report.Items),
		zap.Int("adjustments", report.Adjustments),
		zap.Int("unmatched", len(report.UnmatchedSKUs)),
	)

	return report, nil
}
