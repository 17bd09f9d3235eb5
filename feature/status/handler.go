package status

import (
	"errors"

	"stock-reconciler/feature/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the reconciler's operational surface over HTTP.
type Handler struct {
	runner *sync.Runner
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(runner *sync.Runner, logger *zap.Logger) *Handler {
	return &Handler{runner: runner, logger: logger}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/healthz", h.HandleHealth)
	app.Get("/runs/latest", h.HandleLatestRun)
	app.Post("/runs", h.HandleTriggerRun)
}

// HandleHealth reports process liveness for the scheduler's probe.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleLatestRun returns the most recent run report.
func (h *Handler) HandleLatestRun(c *fiber.Ctx) error {
	latest := h.runner.Latest()
	if latest == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no completed runs yet",
		})
	}
	return c.JSON(latest)
}

// HandleTriggerRun starts an immediate reconciliation run and returns its
// report. While a run is in flight, further triggers are rejected.
func (h *Handler) HandleTriggerRun(c *fiber.Ctx) error {
	report, err := h.runner.Trigger(c.Context())
	if err != nil {
		if errors.Is(err, sync.ErrRunInFlight) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		h.logger.Error("Triggered run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}
