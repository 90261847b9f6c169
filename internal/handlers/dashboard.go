package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reconlens/reconlens-api/internal/recon"
	"github.com/reconlens/reconlens-api/internal/services"
)

// DashboardHandler serves the aggregated metrics record.
type DashboardHandler struct {
	store *services.DataStore
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(store *services.DataStore) *DashboardHandler {
	return &DashboardHandler{store: store}
}

// GetMetrics returns the dashboard aggregates for one month selector.
// GET /v1/dashboard/metrics?month=Apr-24
func (h *DashboardHandler) GetMetrics(c fiber.Ctx) error {
	month := c.Query("month", recon.AllMonths)
	metrics := h.store.Metrics(month)

	return c.JSON(fiber.Map{
		"month":   month,
		"metrics": metrics,
	})
}
