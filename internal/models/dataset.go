package models

import "fmt"

// DataType identifies one of the seven uploadable record collections. The labels
// match the original export names and double as persistence keys.
type DataType string

const (
	DataTypeSales            DataType = "Sales"
	DataTypePurchases        DataType = "Purchases"
	DataTypeSaleReturns      DataType = "Sale Returns"
	DataTypePurchaseReturns  DataType = "Purchase Returns"
	DataTypePaymentSummaries DataType = "Payment Summaries"
	DataTypePaymentInvoices  DataType = "Payment Invoices"
	DataTypePayables         DataType = "Payables"
)

// AllDataTypes lists every collection kind, in upload-tab order.
var AllDataTypes = []DataType{
	DataTypeSales,
	DataTypePurchases,
	DataTypeSaleReturns,
	DataTypePurchaseReturns,
	DataTypePaymentSummaries,
	DataTypePaymentInvoices,
	DataTypePayables,
}

// ParseDataType resolves a request-supplied kind label.
func ParseDataType(s string) (DataType, error) {
	for _, dt := range AllDataTypes {
		if string(dt) == s {
			return dt, nil
		}
	}
	return "", fmt.Errorf("unknown data type: %q", s)
}

// AllData is one snapshot of every raw collection. Derivations treat it as
// immutable; a new upload replaces a whole slice, never edits one in place.
type AllData struct {
	Sales            []Sale           `json:"sales"`
	Purchases        []Purchase       `json:"purchases"`
	SaleReturns      []SaleReturn     `json:"saleReturns"`
	PurchaseReturns  []PurchaseReturn `json:"purchaseReturns"`
	PaymentSummaries []PaymentSummary `json:"paymentSummaries"`
	PaymentInvoices  []PaymentInvoice `json:"paymentInvoices"`
	Payables         []Payable        `json:"payables"`
}

// MapRows converts parsed rows into the typed collection for kind and stores it
// on d, replacing the previous contents wholesale.
func (d *AllData) MapRows(kind DataType, rows []Row) {
	switch kind {
	case DataTypeSales:
		d.Sales = mapRows(rows, SaleFromRow)
	case DataTypePurchases:
		d.Purchases = mapRows(rows, PurchaseFromRow)
	case DataTypeSaleReturns:
		d.SaleReturns = mapRows(rows, SaleReturnFromRow)
	case DataTypePurchaseReturns:
		d.PurchaseReturns = mapRows(rows, PurchaseReturnFromRow)
	case DataTypePaymentSummaries:
		d.PaymentSummaries = mapRows(rows, PaymentSummaryFromRow)
	case DataTypePaymentInvoices:
		d.PaymentInvoices = mapRows(rows, PaymentInvoiceFromRow)
	case DataTypePayables:
		d.Payables = mapRows(rows, PayableFromRow)
	}
}

func mapRows[T any](rows []Row, from func(Row) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, from(row))
	}
	return out
}
