package recon

import (
	"testing"

	"github.com/reconlens/reconlens-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichSales_EmptySales(t *testing.T) {
	enriched := EnrichSales(nil, []models.Purchase{{InvoiceID: "INV-1"}}, nil, nil)
	assert.Empty(t, enriched)
}

func TestEnrichSales_CoversEverySale(t *testing.T) {
	sales := []models.Sale{
		{InvoiceID: "INV-1"},
		{InvoiceID: "INV-2"},
		{InvoiceID: "INV-3"},
	}
	enriched := EnrichSales(sales, nil, nil, nil)
	require.Len(t, enriched, len(sales))
	for i, e := range enriched {
		assert.Equal(t, sales[i].InvoiceID, e.InvoiceID)
	}
}

func TestEnrichSales_PurchaseStatus(t *testing.T) {
	sales := []models.Sale{
		{InvoiceID: "INV-1"},
		{InvoiceID: "INV-2"},
	}
	purchases := []models.Purchase{{InvoiceID: "INV-1"}}

	enriched := EnrichSales(sales, purchases, nil, nil)
	require.Len(t, enriched, 2)
	assert.Equal(t, PurchaseStatusDone, enriched[0].PurchaseStatus)
	assert.Equal(t, PurchaseStatusPending, enriched[1].PurchaseStatus)
}

func TestEnrichSales_PurchaseJoinDoesNotTrim(t *testing.T) {
	// The enrichment join is raw equality; a purchase id with trailing
	// whitespace must not match the clean sale id.
	sales := []models.Sale{{InvoiceID: "INV-1"}}
	purchases := []models.Purchase{{InvoiceID: "INV-1 "}}

	enriched := EnrichSales(sales, purchases, nil, nil)
	assert.Equal(t, PurchaseStatusPending, enriched[0].PurchaseStatus)
}

func TestEnrichSales_PaymentAccumulates(t *testing.T) {
	sales := []models.Sale{{InvoiceID: "INV-1", TotalSalesAmount: "1000"}}
	payments := []models.PaymentInvoice{
		{InvoiceNumber: "INV-1", AmountPaid: "400"},
		{InvoiceNumber: "INV-1", AmountPaid: "600"},
	}

	enriched := EnrichSales(sales, nil, payments, nil)
	assert.Equal(t, PaymentStatusPaid, enriched[0].PaymentStatus)
}

func TestEnrichSales_PaymentPartial(t *testing.T) {
	sales := []models.Sale{{InvoiceID: "INV-1", TotalSalesAmount: "1000"}}
	payments := []models.PaymentInvoice{{InvoiceNumber: "INV-1", AmountPaid: "999.99"}}

	// No tolerance on this path: one paisa short is still partial.
	enriched := EnrichSales(sales, nil, payments, nil)
	assert.Equal(t, PaymentStatusPartial, enriched[0].PaymentStatus)
}

func TestEnrichSales_PaymentPendingWhenUnpaid(t *testing.T) {
	sales := []models.Sale{{InvoiceID: "INV-1", TotalSalesAmount: "1000"}}

	enriched := EnrichSales(sales, nil, nil, nil)
	assert.Equal(t, PaymentStatusPending, enriched[0].PaymentStatus)
}

func TestEnrichSales_PaymentFallsBackToOriginalInvoiceNumber(t *testing.T) {
	sales := []models.Sale{{InvoiceID: "INV-1", TotalSalesAmount: "500"}}
	payments := []models.PaymentInvoice{{OriginalInvoiceNumber: "INV-1", AmountPaid: "500"}}

	enriched := EnrichSales(sales, nil, payments, nil)
	assert.Equal(t, PaymentStatusPaid, enriched[0].PaymentStatus)
}

func TestEnrichSales_ReturnStatus(t *testing.T) {
	sales := []models.Sale{
		{InvoiceID: "INV-1"},
		{InvoiceID: "INV-2"},
	}
	returns := []models.SaleReturn{{InvoiceNo: "INV-2"}}

	enriched := EnrichSales(sales, nil, nil, returns)
	assert.Equal(t, ReturnStatusPending, enriched[0].ReturnStatus)
	assert.Equal(t, ReturnStatusReturned, enriched[1].ReturnStatus)
}

func TestEnrichSales_Idempotent(t *testing.T) {
	sales := []models.Sale{
		{InvoiceID: "INV-1", TotalSalesAmount: "100", Month: "Jan-24"},
		{InvoiceID: "INV-2", TotalSalesAmount: "250", Month: "Feb-24"},
	}
	purchases := []models.Purchase{{InvoiceID: "INV-1", TotalWithTax: "100"}}
	payments := []models.PaymentInvoice{{InvoiceNumber: "INV-2", AmountPaid: "100"}}
	returns := []models.SaleReturn{{InvoiceNo: "INV-1"}}

	first := EnrichSales(sales, purchases, payments, returns)
	second := EnrichSales(sales, purchases, payments, returns)
	assert.Equal(t, first, second)
}
