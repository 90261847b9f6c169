package recon

import (
	"testing"

	"github.com/reconlens/reconlens-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMonth_ExactStringEquality(t *testing.T) {
	sales := []models.Sale{
		{InvoiceID: "INV-1", Month: "Jan-24"},
		{InvoiceID: "INV-2", Month: "jan-24"},
		{InvoiceID: "INV-3", Month: "January 2024"},
	}

	// "jan-24" and "January 2024" parse to the same instant as "Jan-24", but
	// filtering is literal string equality and must stay that way.
	kept := FilterMonth(sales, func(s models.Sale) string { return s.Month }, "Jan-24")
	require.Len(t, kept, 1)
	assert.Equal(t, "INV-1", kept[0].InvoiceID)
}

func TestFilterMonth_AllMonthsPassThrough(t *testing.T) {
	sales := []models.Sale{
		{InvoiceID: "INV-1", Month: "Jan-24"},
		{InvoiceID: "INV-2", Month: "Feb-24"},
	}
	assert.Len(t, FilterMonth(sales, func(s models.Sale) string { return s.Month }, AllMonths), 2)
	assert.Len(t, FilterMonth(sales, func(s models.Sale) string { return s.Month }, ""), 2)
}

func TestFilterAllData_AppliesToEveryCollection(t *testing.T) {
	data := models.AllData{
		Sales:           []models.Sale{{InvoiceID: "INV-1", Month: "Jan-24"}, {InvoiceID: "INV-2", Month: "Feb-24"}},
		Purchases:       []models.Purchase{{InvoiceID: "INV-1", Month: "Feb-24"}},
		SaleReturns:     []models.SaleReturn{{InvoiceNo: "INV-1", Month: "Jan-24"}},
		PaymentInvoices: []models.PaymentInvoice{{InvoiceNumber: "INV-1", Month: "Jan-24"}},
		Payables:        []models.Payable{{TransactionNumber: "T-1", Month: "Mar-24"}},
	}

	filtered := FilterAllData(data, "Jan-24")
	assert.Len(t, filtered.Sales, 1)
	assert.Empty(t, filtered.Purchases)
	assert.Len(t, filtered.SaleReturns, 1)
	assert.Len(t, filtered.PaymentInvoices, 1)
	assert.Empty(t, filtered.Payables)
}

func TestSortMonthLabels_Chronological(t *testing.T) {
	labels := []string{"Mar-24", "Jan-24", "Feb-24", "Dec-23"}
	SortMonthLabels(labels)
	assert.Equal(t, []string{"Dec-23", "Jan-24", "Feb-24", "Mar-24"}, labels)
}

func TestSortMonthLabels_UnparseableFallsBackLexicographic(t *testing.T) {
	labels := []string{"Mar-24", "Jan-24", "garbled", "Feb-24"}
	SortMonthLabels(labels)

	// Against "garbled" the comparison is lexicographic, and every parseable
	// label here starts with an uppercase letter, so "garbled" lands last.
	assert.Equal(t, []string{"Jan-24", "Feb-24", "Mar-24", "garbled"}, labels)
}

func TestUniqueMonths_DistinctSortedAcrossCollections(t *testing.T) {
	data := models.AllData{
		Sales:     []models.Sale{{Month: "Feb-24"}, {Month: "Jan-24"}, {Month: "Feb-24"}},
		Purchases: []models.Purchase{{Month: "Mar-24"}, {Month: ""}},
		Payables:  []models.Payable{{Month: "Jan-24"}},
	}

	months := UniqueMonths(data)
	assert.Equal(t, []string{"Jan-24", "Feb-24", "Mar-24"}, months)
}
