package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reconlens/reconlens-api/internal/models"
	"github.com/reconlens/reconlens-api/internal/recon"
	"github.com/reconlens/reconlens-api/internal/services"
)

// DatasetsHandler serves the raw collections and the month selector values.
type DatasetsHandler struct {
	store *services.DataStore
	db    DatasetStore
}

// NewDatasetsHandler creates a datasets handler.
func NewDatasetsHandler(store *services.DataStore, db DatasetStore) *DatasetsHandler {
	return &DatasetsHandler{store: store, db: db}
}

// GetMonths returns the distinct month labels across every collection,
// "All Months" first, the rest in chronological order.
// GET /v1/datasets/months
func (h *DatasetsHandler) GetMonths(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"months": h.store.Months(),
	})
}

// GetDataset returns one raw collection, optionally filtered to a single month
// label. The month match is exact string equality against the row's Month
// column, the same comparison the reconciliation views use.
// GET /v1/datasets/:type?month=Apr-24
func (h *DatasetsHandler) GetDataset(c fiber.Ctx) error {
	// 1. Resolve the dataset kind from the path
	dataType, err := models.ParseDataType(c.Params("type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// 2. Filter the snapshot by month selector
	month := c.Query("month", recon.AllMonths)
	data := recon.FilterAllData(h.store.Snapshot(), month)

	var rows any
	switch dataType {
	case models.DataTypeSales:
		rows = data.Sales
	case models.DataTypePurchases:
		rows = data.Purchases
	case models.DataTypeSaleReturns:
		rows = data.SaleReturns
	case models.DataTypePurchaseReturns:
		rows = data.PurchaseReturns
	case models.DataTypePaymentSummaries:
		rows = data.PaymentSummaries
	case models.DataTypePaymentInvoices:
		rows = data.PaymentInvoices
	case models.DataTypePayables:
		rows = data.Payables
	}

	return c.JSON(fiber.Map{
		"data_type": string(dataType),
		"month":     month,
		"data":      rows,
	})
}

// ClearDatasets wipes every collection, in memory and in the database.
// POST /v1/datasets/clear
func (h *DatasetsHandler) ClearDatasets(c fiber.Ctx) error {
	if h.db != nil {
		if err := h.db.ClearAll(c.Context()); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "failed to clear persisted datasets",
				"details": err.Error(),
			})
		}
	}
	h.store.Clear()

	return c.JSON(fiber.Map{
		"status": "success",
	})
}
