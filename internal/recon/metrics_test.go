package recon

import (
	"testing"

	"github.com/reconlens/reconlens-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func testData() models.AllData {
	return models.AllData{
		Sales: []models.Sale{
			{InvoiceID: "INV-1", TotalSalesAmount: "1,000", TotalQuantity: "10", Month: "Jan-24"},
			{InvoiceID: "INV-2", TotalSalesAmount: "2000", TotalQuantity: "20", Month: "Feb-24"},
		},
		Purchases: []models.Purchase{
			{InvoiceID: "INV-1", TotalWithTax: "800", TotalQuantity: "8"},
			{InvoiceID: "INV-2", TotalWithTax: "1200", TotalQuantity: "12"},
		},
		SaleReturns: []models.SaleReturn{
			{InvoiceNo: "INV-1", TotalWithTax: "300", TotalQty: "3"},
		},
		PurchaseReturns: []models.PurchaseReturn{
			{InvoiceNo: "INV-1", TotalWithTax: "200", TotalQuantity: "2"},
		},
		PaymentInvoices: []models.PaymentInvoice{
			{InvoiceNumber: "INV-1", AmountPaid: "500"},
			{InvoiceNumber: "INV-2", AmountPaid: "700"},
		},
		Payables: []models.Payable{
			{TransactionNumber: "T-1", BcyBalance: "150", BcyTotal: "400"},
			{TransactionNumber: "T-2", BcyBalance: "50", BcyTotal: "100"},
		},
	}
}

func TestCalculateMetrics_Sums(t *testing.T) {
	m := CalculateMetrics(testData(), nil)

	assert.Equal(t, 3000.0, m.SalesValue)
	assert.Equal(t, 2000.0, m.PurchaseValue)
	assert.Equal(t, 300.0, m.SalesReturnValue)
	assert.Equal(t, 200.0, m.PurchaseReturnValue)
	assert.Equal(t, 30.0, m.SalesQuantity)
	assert.Equal(t, 20.0, m.PurchaseQuantity)
	assert.Equal(t, 3.0, m.SalesReturnQty)
	assert.Equal(t, 2.0, m.PurchaseReturnQty)
	assert.Equal(t, 1200.0, m.AmountPaid)
}

func TestCalculateMetrics_Derived(t *testing.T) {
	m := CalculateMetrics(testData(), nil)

	assert.Equal(t, 2700.0, m.NetSaleValue)
	assert.Equal(t, 1800.0, m.NetPurchaseValue)
	assert.Equal(t, 27.0, m.NetSaleQty)
	assert.Equal(t, 18.0, m.NetPurchaseQty)
	assert.Equal(t, 900.0, m.GrossProfit)
	assert.Equal(t, m.GrossProfit, m.NetProfit)
	assert.InDelta(t, 33.333333, m.GrossProfitPercentage, 1e-6)
	assert.InDelta(t, 10.0, m.SalesReturnPercentage, 1e-9)
	assert.InDelta(t, 10.0, m.PurchaseReturnPercentage, 1e-9)
	assert.Equal(t, 1800.0, m.Outstanding)
	assert.Equal(t, 200.0, m.Payable)
	assert.Equal(t, m.Payable, m.PurchaseOutstanding)
}

func TestCalculateMetrics_Averages(t *testing.T) {
	m := CalculateMetrics(testData(), nil)

	// Two distinct non-empty sale months, two purchase rows.
	assert.Equal(t, 1500.0, m.AvgMonthlySales)
	assert.Equal(t, 1000.0, m.AvgPurchaseValue)
}

func TestCalculateMetrics_DistinctMonthsIgnoresBlank(t *testing.T) {
	data := models.AllData{
		Sales: []models.Sale{
			{InvoiceID: "INV-1", TotalSalesAmount: "100", Month: "Jan-24"},
			{InvoiceID: "INV-2", TotalSalesAmount: "200", Month: ""},
			{InvoiceID: "INV-3", TotalSalesAmount: "300", Month: "Jan-24"},
		},
	}
	m := CalculateMetrics(data, nil)
	assert.Equal(t, 600.0, m.AvgMonthlySales)
}

func TestCalculateMetrics_ZeroGuards(t *testing.T) {
	m := CalculateMetrics(models.AllData{}, nil)

	assert.Equal(t, 0.0, m.SalesValue)
	assert.Equal(t, 0.0, m.AvgMonthlySales)
	assert.Equal(t, 0.0, m.AvgPurchaseValue)
	assert.Equal(t, 0.0, m.GrossProfitPercentage)
	assert.Equal(t, 0.0, m.SalesReturnPercentage)
	assert.Equal(t, 0.0, m.PurchaseReturnPercentage)
}

func TestCalculateMetrics_InvalidNumbersDegradeToZero(t *testing.T) {
	data := models.AllData{
		Sales: []models.Sale{
			{InvoiceID: "INV-1", TotalSalesAmount: "abc"},
			{InvoiceID: "INV-2", TotalSalesAmount: "100"},
		},
	}
	m := CalculateMetrics(data, nil)
	assert.Equal(t, 100.0, m.SalesValue)
}

func TestCalculateMetrics_Idempotent(t *testing.T) {
	data := testData()
	assert.Equal(t, CalculateMetrics(data, nil), CalculateMetrics(data, nil))
}
