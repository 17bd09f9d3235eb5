package status_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"stock-reconciler/core/catalog"
	"stock-reconciler/core/supplier"
	"stock-reconciler/feature/status"
	"stock-reconciler/feature/sync"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubFeed struct{ records []supplier.Record }

func (s *stubFeed) Fetch(ctx context.Context) []supplier.Record { return s.records }

type stubPager struct{ page catalog.Page }

func (s *stubPager) NextPage(ctx context.Context, cursor string) (catalog.Page, error) {
	return s.page, nil
}

type stubAdjuster struct{}

func (stubAdjuster) Apply(ctx context.Context, adjustments []catalog.Adjustment) int {
	return len(adjustments)
}

type stubNotifier struct{}

func (stubNotifier) Notify(ctx context.Context, skus []string) error { return nil }

func newApp(runner *sync.Runner) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	status.NewHandler(runner, zap.NewNop()).RegisterRoutes(app)
	return app
}

func newRunner() *sync.Runner {
	svc := sync.NewService(
		&stubFeed{records: []supplier.Record{{SKU: "A1", Quantity: 2}}},
		&stubPager{page: catalog.Page{Items: []catalog.Variant{
			{SKU: "A1", Quantity: 0, InventoryItemID: "i1"},
		}}},
		stubAdjuster{},
		stubNotifier{},
		nil,
		0,
		zap.NewNop(),
		nil,
	)
	return sync.NewRunner(svc)
}

func TestHandleHealth(t *testing.T) {
	app := newApp(newRunner())

	resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestHandleLatestRun_NoRunsYet(t *testing.T) {
	app := newApp(newRunner())

	resp, err := app.Test(httptest.NewRequest("GET", "/runs/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleTriggerThenLatest(t *testing.T) {
	app := newApp(newRunner())

	resp, err := app.Test(httptest.NewRequest("POST", "/runs", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report sync.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 1, report.Adjustments)
	assert.NotEmpty(t, report.RunID)

	resp, err = app.Test(httptest.NewRequest("GET", "/runs/latest", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var latest sync.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&latest))
	assert.Equal(t, report.RunID, latest.RunID)
}
