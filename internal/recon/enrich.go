package recon

import "github.com/reconlens/reconlens-api/internal/models"

// Status labels shared by the derived views.
const (
	PurchaseStatusDone    = "Done"
	PurchaseStatusPending = "Pending"

	PaymentStatusPaid    = "Paid"
	PaymentStatusPartial = "Partial Payment"
	PaymentStatusPending = "Payment Pending"

	ReturnStatusReturned = "Returned"
	ReturnStatusPending  = "Pending"
)

// EnrichedSale is a Sale augmented with cross-collection status fields. Identity
// stays 1:1 with the source sale row.
type EnrichedSale struct {
	models.Sale
	PurchaseStatus string `json:"purchaseStatus"`
	PaymentStatus  string `json:"paymentStatus"`
	ReturnStatus   string `json:"returnStatus"`
}

// EnrichSales classifies every sale against purchases, payments and sale returns.
// All joins here use the raw, untrimmed invoice ids; the payment check view uses
// trimmed keys instead, and the two must not be unified (they match different
// row sets on dirty data).
func EnrichSales(sales []models.Sale, purchases []models.Purchase, paymentInvoices []models.PaymentInvoice, saleReturns []models.SaleReturn) []EnrichedSale {
	if len(sales) == 0 {
		return []EnrichedSale{}
	}

	purchaseByID := lastWins(purchases, func(p models.Purchase) string { return p.InvoiceID })
	paidByInvoice := sumByKey(paymentInvoices,
		func(p models.PaymentInvoice) string {
			if p.InvoiceNumber != "" {
				return p.InvoiceNumber
			}
			return p.OriginalInvoiceNumber
		},
		func(p models.PaymentInvoice) float64 { return ToNumber(p.AmountPaid) },
	)
	returnByInvoice := lastWins(saleReturns, func(sr models.SaleReturn) string { return sr.InvoiceNo })

	enriched := make([]EnrichedSale, 0, len(sales))
	for _, sale := range sales {
		saleAmount := ToNumber(sale.TotalSalesAmount)

		purchaseStatus := PurchaseStatusPending
		if _, ok := purchaseByID[sale.InvoiceID]; ok {
			purchaseStatus = PurchaseStatusDone
		}

		// Exact comparison here: the paid total must reach the sale amount to
		// count as Paid. The tolerance belongs to the payment check view only.
		totalPaid := paidByInvoice[sale.InvoiceID]
		paymentStatus := PaymentStatusPending
		if totalPaid > 0 {
			if totalPaid >= saleAmount {
				paymentStatus = PaymentStatusPaid
			} else {
				paymentStatus = PaymentStatusPartial
			}
		}

		returnStatus := ReturnStatusPending
		if _, ok := returnByInvoice[sale.InvoiceID]; ok {
			returnStatus = ReturnStatusReturned
		}

		enriched = append(enriched, EnrichedSale{
			Sale:           sale,
			PurchaseStatus: purchaseStatus,
			PaymentStatus:  paymentStatus,
			ReturnStatus:   returnStatus,
		})
	}
	return enriched
}
