package sync_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"stock-reconciler/core/catalog"
	"stock-reconciler/core/events"
	"stock-reconciler/core/supplier"
	"stock-reconciler/feature/sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockFeed struct {
	fetch func(ctx context.Context) []supplier.Record
}

func (m *mockFeed) Fetch(ctx context.Context) []supplier.Record { return m.fetch(ctx) }

type mockPager struct {
	next func(ctx context.Context, cursor string) (catalog.Page, error)
}

func (m *mockPager) NextPage(ctx context.Context, cursor string) (catalog.Page, error) {
	return m.next(ctx, cursor)
}

type mockAdjuster struct {
	apply func(ctx context.Context, adjustments []catalog.Adjustment) int
}

func (m *mockAdjuster) Apply(ctx context.Context, adjustments []catalog.Adjustment) int {
	return m.apply(ctx, adjustments)
}

type mockNotifier struct {
	notify func(ctx context.Context, skus []string) error
}

func (m *mockNotifier) Notify(ctx context.Context, skus []string) error {
	return m.notify(ctx, skus)
}

func variant(sku string, qty int, itemID string) catalog.Variant {
	return catalog.Variant{SKU: sku, Quantity: qty, InventoryItemID: itemID}
}

func TestRun_FullPass(t *testing.T) {
	var calls []string

	feed := &mockFeed{fetch: func(ctx context.Context) []supplier.Record {
		calls = append(calls, "feed")
		return []supplier.Record{
			{SKU: "A1", Quantity: 0},
			{SKU: "A2", Quantity: 5},
			{SKU: "A3", Quantity: 10},
		}
	}}

	pages := map[string]catalog.Page{
		"": {
			Items:   []catalog.Variant{variant("A1", 1, "i1"), variant("A2", 1, "i2"), variant("Z9", 3, "i4")},
			Cursor:  "c1",
			HasMore: true,
		},
		"c1": {
			Items:   []catalog.Variant{variant("A3", 10, "i3"), variant("Z9", 3, "i6")},
			HasMore: false,
		},
	}
	pager := &mockPager{next: func(ctx context.Context, cursor string) (catalog.Page, error) {
		calls = append(calls, "page:"+cursor)
		return pages[cursor], nil
	}}

	var applied [][]catalog.Adjustment
	adjuster := &mockAdjuster{apply: func(ctx context.Context, adjustments []catalog.Adjustment) int {
		calls = append(calls, "apply")
		applied = append(applied, adjustments)
		return len(adjustments)
	}}

	var notified []string
	notifier := &mockNotifier{notify: func(ctx context.Context, skus []string) error {
		calls = append(calls, "notify")
		notified = skus
		return nil
	}}

	svc := sync.NewService(feed, pager, adjuster, notifier, nil, time.Second, zap.NewNop(), nil)
	var slept []time.Duration
	svc.Sleep = func(ctx context.Context, d time.Duration) error {
		calls = append(calls, "cooldown")
		slept = append(slept, d)
		return nil
	}

	report, err := svc.Run(context.Background())
	require.NoError(t, err)

	// Deltas are applied before the next page is requested, and the
	// cooldown follows every non-empty batch.
	assert.Equal(t, []string{"feed", "page:", "apply", "cooldown", "page:c1", "notify"}, calls)
	assert.Equal(t, []time.Duration{time.Second}, slept)

	require.Len(t, applied, 1)
	assert.Equal(t, []catalog.Adjustment{
		{InventoryItemID: "i1", Delta: -1},
		{InventoryItemID: "i2", Delta: 4},
	}, applied[0])

	assert.Equal(t, []string{"Z9", "Z9"}, notified)

	assert.False(t, report.Skipped)
	assert.Equal(t, 2, report.Pages)
	assert.Equal(t, 5, report.Items)
	assert.Equal(t, 2, report.Adjustments)
	assert.Equal(t, []string{"Z9", "Z9"}, report.UnmatchedSKUs)
	assert.NotEmpty(t, report.RunID)
}

func TestRun_EmptyFeedSkipsEverything(t *testing.T) {
	feed := &mockFeed{fetch: func(ctx context.Context) []supplier.Record { return nil }}
	pager := &mockPager{next: func(ctx context.Context, cursor string) (catalog.Page, error) {
		t.Fatal("pager must not be called when the feed is empty")
		return catalog.Page{}, nil
	}}
	adjuster := &mockAdjuster{apply: func(ctx context.Context, adjustments []catalog.Adjustment) int {
		t.Fatal("adjuster must not be called when the feed is empty")
		return 0
	}}
	notifier := &mockNotifier{notify: func(ctx context.Context, skus []string) error {
		t.Fatal("notifier must not be called when the feed is empty")
		return nil
	}}

	svc := sync.NewService(feed, pager, adjuster, notifier, nil, 0, zap.NewNop(), nil)

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, report.Skipped)
	assert.Zero(t, report.Pages)
	assert.Zero(t, report.Adjustments)
}

func TestRun_NotifierFailureIsAbsorbed(t *testing.T) {
	feed := &mockFeed{fetch: func(ctx context.Context) []supplier.Record {
		return []supplier.Record{{SKU: "A1", Quantity: 3}}
	}}
	pager := &mockPager{next: func(ctx context.Context, cursor string) (catalog.Page, error) {
		return catalog.Page{Items: []catalog.Variant{variant("Z9", 1, "i1")}}, nil
	}}
	adjuster := &mockAdjuster{apply: func(ctx context.Context, adjustments []catalog.Adjustment) int {
		return len(adjustments)
	}}
	notifier := &mockNotifier{notify: func(ctx context.Context, skus []string) error {
		return fmt.Errorf("smtp down")
	}}

	rec := &events.Recorder{}
	svc := sync.NewService(feed, pager, adjuster, notifier, nil, 0, zap.NewNop(), rec)
	svc.Sleep = func(ctx context.Context, d time.Duration) error { return nil }

	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Z9"}, report.UnmatchedSKUs)
	assert.Equal(t, []events.Kind{events.KindNotifyFailed}, rec.Kinds())
}

func TestRun_ExemptSKUsNotReported(t *testing.T) {
	feed := &mockFeed{fetch: func(ctx context.Context) []supplier.Record {
		return []supplier.Record{{SKU: "A1", Quantity: 3}}
	}}
	pager := &mockPager{next: func(ctx context.Context, cursor string) (catalog.Page, error) {
		return catalog.Page{Items: []catalog.Variant{
			variant("this product keeps track of images 1", 0, "i1"),
			variant("Z9", 0, "i2"),
		}}, nil
	}}
	adjuster := &mockAdjuster{apply: func(ctx context.Context, adjustments []catalog.Adjustment) int {
		return len(adjustments)
	}}
	var notified []string
	notifier := &mockNotifier{notify: func(ctx context.Context, skus []string) error {
		notified = skus
		return nil
	}}

	exempt := map[string]struct{}{"this product keeps track of images 1": {}}
	svc := sync.NewService(feed, pager, adjuster, notifier, exempt, 0, zap.NewNop(), nil)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Z9"}, notified)
}

func TestRun_CancelledContextPropagates(t *testing.T) {
	feed := &mockFeed{fetch: func(ctx context.Context) []supplier.Record {
		return []supplier.Record{{SKU: "A1", Quantity: 0}}
	}}
	pager := &mockPager{next: func(ctx context.Context, cursor string) (catalog.Page, error) {
		return catalog.Page{}, context.Canceled
	}}
	adjuster := &mockAdjuster{apply: func(ctx context.Context, adjustments []catalog.Adjustment) int { return 0 }}
	notifier := &mockNotifier{notify: func(ctx context.Context, skus []string) error { return nil }}

	svc := sync.NewService(feed, pager, adjuster, notifier, nil, 0, zap.NewNop(), nil)

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, context.Canceled)
}
