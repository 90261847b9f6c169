package handlers

import (
	"github.com/gofiber/fiber/v3"

	"github.com/reconlens/reconlens-api/internal/recon"
	"github.com/reconlens/reconlens-api/internal/services"
)

// ReconciliationHandler serves the four derived reconciliation views. The
// views are computed over the full collections and month-filtered afterwards,
// so joins still see rows from other months.
type ReconciliationHandler struct {
	store *services.DataStore
}

// NewReconciliationHandler creates a reconciliation handler.
func NewReconciliationHandler(store *services.DataStore) *ReconciliationHandler {
	return &ReconciliationHandler{store: store}
}

// GetEnrichedSales returns sales annotated with purchase, payment and return
// status.
// GET /v1/reconciliation/enriched-sales?month=Apr-24
func (h *ReconciliationHandler) GetEnrichedSales(c fiber.Ctx) error {
	month := c.Query("month", recon.AllMonths)
	rows := recon.FilterMonth(h.store.Derived().EnrichedSales,
		func(e recon.EnrichedSale) string { return e.Month }, month)

	return c.JSON(fiber.Map{
		"month": month,
		"count": len(rows),
		"data":  rows,
	})
}

// GetSalePurchaseChecks returns the sale vs purchase amount comparison.
// GET /v1/reconciliation/sale-purchase?month=Apr-24
func (h *ReconciliationHandler) GetSalePurchaseChecks(c fiber.Ctx) error {
	month := c.Query("month", recon.AllMonths)
	rows := recon.FilterMonth(h.store.Derived().SalePurchaseChecks,
		func(r recon.SalePurchaseCheck) string { return r.Month }, month)

	return c.JSON(fiber.Map{
		"month": month,
		"count": len(rows),
		"data":  rows,
	})
}

// GetSalePaymentChecks returns the payment coverage view with overdue days.
// GET /v1/reconciliation/sale-payment?month=Apr-24
func (h *ReconciliationHandler) GetSalePaymentChecks(c fiber.Ctx) error {
	month := c.Query("month", recon.AllMonths)
	rows := recon.FilterMonth(h.store.Derived().SalePaymentChecks,
		func(r recon.SalePaymentCheck) string { return r.Month }, month)

	return c.JSON(fiber.Map{
		"month": month,
		"count": len(rows),
		"data":  rows,
	})
}

// GetSaleReturnChecks returns product-return payment invoices matched against
// sale return records.
// GET /v1/reconciliation/sale-return?month=Apr-24
func (h *ReconciliationHandler) GetSaleReturnChecks(c fiber.Ctx) error {
	month := c.Query("month", recon.AllMonths)
	rows := recon.FilterMonth(h.store.Derived().SaleReturnChecks,
		func(r recon.SaleReturnCheck) string { return r.Month }, month)

	return c.JSON(fiber.Map{
		"month": month,
		"count": len(rows),
		"data":  rows,
	})
}
