package recon

import (
	"math"
	"strings"
	"time"

	"github.com/reconlens/reconlens-api/internal/models"
)

const (
	ReturnCheckDone    = "Done"
	ReturnCheckPending = "Return pending"
)

// PaymentTolerance is the absolute amount by which a paid total may differ from
// the sale amount and still count as fully paid. It absorbs rounding and bank
// fee discrepancies in the payment check view.
const PaymentTolerance = 10

// SalePurchaseCheck pairs a sale with its purchase-side counterpart.
type SalePurchaseCheck struct {
	models.Sale
	PurchaseStatus    string  `json:"purchaseStatus"`
	PurchaseInvoiceID string  `json:"purchaseInvoiceId,omitempty"`
	PurchaseAmount    float64 `json:"purchaseAmount"`
	AmountMismatch    bool    `json:"amountMismatch"`
}

// BuildSalePurchaseChecks matches every sale against the purchase with the same
// raw Invoice ID. Amounts are compared with exact float equality; any difference
// at all on a matched pair flags a mismatch.
func BuildSalePurchaseChecks(sales []models.Sale, purchases []models.Purchase) []SalePurchaseCheck {
	if len(sales) == 0 {
		return []SalePurchaseCheck{}
	}

	purchaseByID := lastWins(purchases, func(p models.Purchase) string { return p.InvoiceID })

	checks := make([]SalePurchaseCheck, 0, len(sales))
	for _, sale := range sales {
		check := SalePurchaseCheck{
			Sale:           sale,
			PurchaseStatus: PurchaseStatusPending,
		}
		if purchase, ok := purchaseByID[sale.InvoiceID]; ok {
			saleAmount := ToNumber(sale.TotalSalesAmount)
			purchaseAmount := ToNumber(purchase.TotalWithTax)
			check.PurchaseStatus = PurchaseStatusDone
			check.PurchaseInvoiceID = purchase.InvoiceID
			check.PurchaseAmount = purchaseAmount
			check.AmountMismatch = saleAmount != purchaseAmount
		}
		checks = append(checks, check)
	}
	return checks
}

// SalePaymentCheck pairs a sale with its accumulated payments.
type SalePaymentCheck struct {
	models.Sale
	PaymentStatus string  `json:"paymentStatus"`
	TotalPaid     float64 `json:"totalPaid"`
	IsPartial     bool    `json:"isPartial"`
	InvoiceDate   string  `json:"invoiceDate,omitempty"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
	DaysOverdue   *int    `json:"daysOverdue,omitempty"`
}

// BuildSalePaymentChecks sums payments per invoice and classifies each sale.
// Keys on this path are trimmed, unlike the enrichment join, and the sale side
// prefers New Invoice ID over Invoice ID. daysOverdue counts whole days from the
// invoice date to now while the invoice is not fully paid; a future invoice date
// yields a negative value, deliberately unclamped.
func BuildSalePaymentChecks(sales []models.Sale, paymentInvoices []models.PaymentInvoice, paymentSummaries []models.PaymentSummary, now time.Time) []SalePaymentCheck {
	if len(sales) == 0 {
		return []SalePaymentCheck{}
	}

	paidByInvoice := sumByKey(paymentInvoices,
		func(p models.PaymentInvoice) string {
			if k := strings.TrimSpace(p.InvoiceNumber); k != "" {
				return k
			}
			return strings.TrimSpace(p.OriginalInvoiceNumber)
		},
		func(p models.PaymentInvoice) float64 { return ToNumber(p.AmountPaid) },
	)

	summaryByPayment := lastWins(paymentSummaries, func(ps models.PaymentSummary) string {
		return strings.TrimSpace(ps.PaymentNumber)
	})

	// Payment date resolves invoice -> payment number -> summary. Later invoice
	// lines overwrite earlier ones for the same invoice id.
	paymentDateByInvoice := make(map[string]string)
	for _, pi := range paymentInvoices {
		invoiceID := strings.TrimSpace(pi.InvoiceNumber)
		paymentNum := strings.TrimSpace(pi.PaymentNumber)
		if invoiceID == "" || paymentNum == "" {
			continue
		}
		if summary, ok := summaryByPayment[paymentNum]; ok && summary.PaymentDate != "" {
			paymentDateByInvoice[invoiceID] = summary.PaymentDate
		}
	}

	checks := make([]SalePaymentCheck, 0, len(sales))
	for _, sale := range sales {
		saleKey := sale.NewInvoiceID
		if saleKey == "" {
			saleKey = sale.InvoiceID
		}
		saleKey = strings.TrimSpace(saleKey)

		saleAmount := ToNumber(sale.TotalSalesAmount)
		totalPaid := paidByInvoice[saleKey]

		paymentStatus := PaymentStatusPending
		if totalPaid > 0 {
			if math.Abs(saleAmount-totalPaid) <= PaymentTolerance {
				paymentStatus = PaymentStatusPaid
			} else {
				paymentStatus = PaymentStatusPartial
			}
		}

		var daysOverdue *int
		if paymentStatus != PaymentStatusPaid && sale.InvoiceDate != "" {
			if invoiceDate, ok := ParseDate(sale.InvoiceDate); ok {
				days := int(math.Ceil(now.Sub(invoiceDate).Hours() / 24))
				daysOverdue = &days
			}
		}

		checks = append(checks, SalePaymentCheck{
			Sale:          sale,
			PaymentStatus: paymentStatus,
			TotalPaid:     totalPaid,
			IsPartial:     paymentStatus == PaymentStatusPartial,
			InvoiceDate:   sale.InvoiceDate,
			PaymentDate:   paymentDateByInvoice[saleKey],
			DaysOverdue:   daysOverdue,
		})
	}
	return checks
}

// SaleReturnCheck is one "Product returns" payment-invoice line, optionally
// joined to the sale return it settles.
type SaleReturnCheck struct {
	PaymentInvoiceNumber string   `json:"paymentInvoiceNumber"`
	PaymentInvoiceDate   string   `json:"paymentInvoiceDate,omitempty"`
	Month                string   `json:"Month,omitempty"`
	ReturnStatus         string   `json:"returnStatus"`
	SaleReturnInvoiceNo  string   `json:"saleReturnInvoiceNo,omitempty"`
	ReturnQty            *float64 `json:"returnQty,omitempty"`
	ReturnValue          *float64 `json:"returnValue,omitempty"`
}

// BuildSaleReturnChecks emits one row per payment-invoice line whose transaction
// description is exactly "Product returns", joined against sale returns by
// trimmed invoice number.
func BuildSaleReturnChecks(paymentInvoices []models.PaymentInvoice, saleReturns []models.SaleReturn) []SaleReturnCheck {
	productReturns := make([]models.PaymentInvoice, 0)
	for _, pi := range paymentInvoices {
		if pi.TransactionDescription == "Product returns" {
			productReturns = append(productReturns, pi)
		}
	}
	if len(productReturns) == 0 {
		return []SaleReturnCheck{}
	}

	returnByInvoice := make(map[string]models.SaleReturn)
	for _, sr := range saleReturns {
		if sr.InvoiceNo != "" {
			returnByInvoice[strings.TrimSpace(sr.InvoiceNo)] = sr
		}
	}

	checks := make([]SaleReturnCheck, 0, len(productReturns))
	for _, pi := range productReturns {
		check := SaleReturnCheck{
			PaymentInvoiceNumber: pi.InvoiceNumber,
			PaymentInvoiceDate:   pi.InvoiceDate,
			Month:                pi.Month,
			ReturnStatus:         ReturnCheckPending,
		}
		invoiceNumber := strings.TrimSpace(pi.InvoiceNumber)
		if matched, ok := returnByInvoice[invoiceNumber]; ok && invoiceNumber != "" {
			qty := ToNumber(matched.TotalQty)
			value := ToNumber(matched.TotalWithTax)
			check.ReturnStatus = ReturnCheckDone
			check.SaleReturnInvoiceNo = matched.InvoiceNo
			check.ReturnQty = &qty
			check.ReturnValue = &value
		}
		checks = append(checks, check)
	}
	return checks
}
