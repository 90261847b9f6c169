package models

// The seven record kinds carry their spreadsheet column names as JSON keys; those
// headers are the de-facto contract with the upload files and with API consumers.
// Columns the engine does not interpret ride in Extra.

// Sale is one row of a sales export.
type Sale struct {
	Partner               string            `json:"Partner,omitempty"`
	InvoiceID             string            `json:"Invoice ID"`
	NewInvoiceID          string            `json:"New Invoice ID,omitempty"`
	InvoiceType           string            `json:"Invoice Type,omitempty"`
	IRNNumber             string            `json:"IRN Number,omitempty"`
	Month                 string            `json:"Month,omitempty"`
	InvoiceDate           string            `json:"Invoice Date,omitempty"`
	WarehouseName         string            `json:"Warehouse Name,omitempty"`
	WarehouseCode         string            `json:"Warehouse Code,omitempty"`
	GSTNo                 string            `json:"GST No,omitempty"`
	BoxCount              string            `json:"Box Count,omitempty"`
	SalesWithoutTaxAmount string            `json:"Sales Without Tax Amount,omitempty"`
	TotalTax              string            `json:"Total Tax,omitempty"`
	TotalSalesAmount      string            `json:"Total Sales Amount,omitempty"`
	TotalQuantity         string            `json:"Total Quantity,omitempty"`
	Status                string            `json:"Status,omitempty"`
	Extra                 map[string]string `json:"extra,omitempty"`
}

// Purchase is one row of a purchases export.
type Purchase struct {
	Company          string            `json:"Company,omitempty"`
	OrderNo          string            `json:"Order No,omitempty"`
	InvoiceID        string            `json:"Invoice ID"`
	InvoiceType      string            `json:"Invoice Type,omitempty"`
	Month            string            `json:"Month,omitempty"`
	InvoiceDate      string            `json:"Invoice Date,omitempty"`
	WarehouseName    string            `json:"Warehouse Name,omitempty"`
	WarehouseCode    string            `json:"Warehouse Code,omitempty"`
	GSTNo            string            `json:"GST No,omitempty"`
	TotalWithoutTax  string            `json:"Total Without Tax,omitempty"`
	TotalTax         string            `json:"Total Tax,omitempty"`
	TDSAmount        string            `json:"TDS Amount,omitempty"`
	AdjustmentAmount string            `json:"Adjustment Amount,omitempty"`
	TotalWithTax     string            `json:"Total With Tax,omitempty"`
	TotalQuantity    string            `json:"Total Quantity,omitempty"`
	Status           string            `json:"Status,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// SaleReturn is one row of a sale-returns export.
type SaleReturn struct {
	Partner          string            `json:"Partner,omitempty"`
	Channel          string            `json:"Channel,omitempty"`
	ReturnNo         string            `json:"Return No.,omitempty"`
	InvoiceNo        string            `json:"Invoice No"`
	SellerName       string            `json:"Seller Name,omitempty"`
	SellerCode       string            `json:"Seller Code,omitempty"`
	Month            string            `json:"Month,omitempty"`
	ReturnDate       string            `json:"Return Date,omitempty"`
	PostDate         string            `json:"Post Date,omitempty"`
	ReturnID         string            `json:"Return ID,omitempty"`
	GSTInvoiceNumber string            `json:"GST Invoice Number,omitempty"`
	Tracking         string            `json:"Tracking,omitempty"`
	Courier          string            `json:"Courier,omitempty"`
	TotalQty         string            `json:"Total Qty,omitempty"`
	CartonCount      string            `json:"Carton Count,omitempty"`
	TotalWithoutTax  string            `json:"Total Without Tax,omitempty"`
	TotalTax         string            `json:"Total Tax,omitempty"`
	AdjustmentAmount string            `json:"Adjustment Amount,omitempty"`
	TotalWithTax     string            `json:"Total With Tax,omitempty"`
	Status           string            `json:"Status,omitempty"`
	Extra            map[string]string `json:"extra,omitempty"`
}

// PurchaseReturn is one row of a purchase-returns export.
type PurchaseReturn struct {
	SaleReturnNumber       string            `json:"Sale Return Number,omitempty"`
	PurchaseReturnNo       string            `json:"Purchase Return No.,omitempty"`
	InvoiceNo              string            `json:"Invoice No"`
	SellerName             string            `json:"Seller Name,omitempty"`
	SellerCode             string            `json:"Seller Code,omitempty"`
	Month                  string            `json:"Month,omitempty"`
	ReturnDate             string            `json:"Return Date,omitempty"`
	PostDate               string            `json:"Post Date,omitempty"`
	ReturnID               string            `json:"Return ID,omitempty"`
	Channel                string            `json:"Channel,omitempty"`
	WarehouseCode          string            `json:"Warehouse Code,omitempty"`
	TotalWithoutTax        string            `json:"Total Without Tax,omitempty"`
	TotalTax               string            `json:"Total Tax,omitempty"`
	TotalWithTax           string            `json:"Total With Tax,omitempty"`
	TotalQuantity          string            `json:"Total Quantity,omitempty"`
	BoxNo                  string            `json:"Box No,omitempty"`
	SellerReturnTrackingNo string            `json:"Seller Return Tracking No,omitempty"`
	Status                 string            `json:"Status,omitempty"`
	SystemTrackingID       string            `json:"System Tracking Id,omitempty"`
	SellerTrackingID       string            `json:"Seller Tracking Id,omitempty"`
	Extra                  map[string]string `json:"extra,omitempty"`
}

// PaymentSummary is one row of a payment-summary export.
type PaymentSummary struct {
	PaymentNumber           string            `json:"Payment Number"`
	Month                   string            `json:"Month,omitempty"`
	PaymentDate             string            `json:"Payment Date,omitempty"`
	InvoiceCurrency         string            `json:"Invoice Currency,omitempty"`
	AmountInInvoiceCurrency string            `json:"Amount in Invoice Currency,omitempty"`
	PaymentCurrency         string            `json:"Payment Currency,omitempty"`
	AmountInPaymentCurrency string            `json:"Amount in Payment Currency,omitempty"`
	ExchangeRate            string            `json:"Exchange Rate,omitempty"`
	PaymentType             string            `json:"Payment Type,omitempty"`
	PaymentStatus           string            `json:"Payment Status,omitempty"`
	PaymentVoidedReason     string            `json:"Payment Voided Reason,omitempty"`
	PaymentNumber2          string            `json:"Payment Number2,omitempty"`
	BankAmount              string            `json:"Bank Amount,omitempty"`
	Diff                    string            `json:"Diff,omitempty"`
	Extra                   map[string]string `json:"extra,omitempty"`
}

// PaymentInvoice is one invoice line of a payments export. A single payment can
// settle many invoices, so Amount Paid must be summed per invoice, never replaced.
type PaymentInvoice struct {
	PaymentNumber          string            `json:"Payment Number,omitempty"`
	InvoiceNumber          string            `json:"Invoice Number"`
	Month                  string            `json:"Month,omitempty"`
	InvoiceDate            string            `json:"Invoice Date,omitempty"`
	TransactionType        string            `json:"Transaction type,omitempty"`
	TransactionDescription string            `json:"Transaction Description,omitempty"`
	ReferenceDetails       string            `json:"Reference Details,omitempty"`
	OriginalInvoiceNumber  string            `json:"Original Invoice Number,omitempty"`
	InvoiceAmount          string            `json:"Invoice Amount,omitempty"`
	InvoiceCurrency        string            `json:"Invoice Currency,omitempty"`
	WithholdingAmount      string            `json:"Withholding Amount,omitempty"`
	TermsDiscountTaken     string            `json:"Terms Discount Taken,omitempty"`
	AmountPaid             string            `json:"Amount Paid,omitempty"`
	RemainingAmount        string            `json:"Remaining Amount,omitempty"`
	Extra                  map[string]string `json:"extra,omitempty"`
}

// Payable is one row of a payables export. Column names in this export are
// snake_case and partly lowercase; they are kept verbatim.
type Payable struct {
	Type              string            `json:"Type,omitempty"`
	Status            string            `json:"status,omitempty"`
	Month             string            `json:"Month,omitempty"`
	TransactionDate   string            `json:"transaction_date,omitempty"`
	TransactionNumber string            `json:"transaction_number"`
	PartyCode         string            `json:"Party Code,omitempty"`
	VendorName        string            `json:"vendor_name,omitempty"`
	TransactionType   string            `json:"transaction_type,omitempty"`
	CustomerName      string            `json:"customer_name,omitempty"`
	BcyTotal          string            `json:"bcy_total,omitempty"`
	BcyBalance        string            `json:"bcy_balance,omitempty"`
	TransactionID     string            `json:"transaction_id,omitempty"`
	VendorID          string            `json:"vendor_id,omitempty"`
	CustomerID        string            `json:"customer_id,omitempty"`
	CurrencyCode      string            `json:"currency_code,omitempty"`
	CurrencyID        string            `json:"currency_id,omitempty"`
	ReceiptName       string            `json:"receipt_name,omitempty"`
	Extra             map[string]string `json:"extra,omitempty"`
}

func SaleFromRow(row Row) Sale {
	r := newRowReader(row)
	s := Sale{
		Partner:               r.get("Partner"),
		InvoiceID:             r.get("Invoice ID"),
		NewInvoiceID:          r.get("New Invoice ID"),
		InvoiceType:           r.get("Invoice Type"),
		IRNNumber:             r.get("IRN Number"),
		Month:                 r.get("Month"),
		InvoiceDate:           r.get("Invoice Date"),
		WarehouseName:         r.get("Warehouse Name"),
		WarehouseCode:         r.get("Warehouse Code"),
		GSTNo:                 r.get("GST No"),
		BoxCount:              r.get("Box Count"),
		SalesWithoutTaxAmount: r.get("Sales Without Tax Amount"),
		TotalTax:              r.get("Total Tax"),
		TotalSalesAmount:      r.get("Total Sales Amount"),
		TotalQuantity:         r.get("Total Quantity"),
		Status:                r.get("Status"),
	}
	s.Extra = r.rest()
	return s
}

func PurchaseFromRow(row Row) Purchase {
	r := newRowReader(row)
	p := Purchase{
		Company:          r.get("Company"),
		OrderNo:          r.get("Order No"),
		InvoiceID:        r.get("Invoice ID"),
		InvoiceType:      r.get("Invoice Type"),
		Month:            r.get("Month"),
		InvoiceDate:      r.get("Invoice Date"),
		WarehouseName:    r.get("Warehouse Name"),
		WarehouseCode:    r.get("Warehouse Code"),
		GSTNo:            r.get("GST No"),
		TotalWithoutTax:  r.get("Total Without Tax"),
		TotalTax:         r.get("Total Tax"),
		TDSAmount:        r.get("TDS Amount"),
		AdjustmentAmount: r.get("Adjustment Amount"),
		TotalWithTax:     r.get("Total With Tax"),
		TotalQuantity:    r.get("Total Quantity"),
		Status:           r.get("Status"),
	}
	p.Extra = r.rest()
	return p
}

func SaleReturnFromRow(row Row) SaleReturn {
	r := newRowReader(row)
	sr := SaleReturn{
		Partner:          r.get("Partner"),
		Channel:          r.get("Channel"),
		ReturnNo:         r.get("Return No."),
		InvoiceNo:        r.get("Invoice No"),
		SellerName:       r.get("Seller Name"),
		SellerCode:       r.get("Seller Code"),
		Month:            r.get("Month"),
		ReturnDate:       r.get("Return Date"),
		PostDate:         r.get("Post Date"),
		ReturnID:         r.get("Return ID"),
		GSTInvoiceNumber: r.get("GST Invoice Number"),
		Tracking:         r.get("Tracking"),
		Courier:          r.get("Courier"),
		TotalQty:         r.get("Total Qty"),
		CartonCount:      r.get("Carton Count"),
		TotalWithoutTax:  r.get("Total Without Tax"),
		TotalTax:         r.get("Total Tax"),
		AdjustmentAmount: r.get("Adjustment Amount"),
		TotalWithTax:     r.get("Total With Tax"),
		Status:           r.get("Status"),
	}
	sr.Extra = r.rest()
	return sr
}

func PurchaseReturnFromRow(row Row) PurchaseReturn {
	r := newRowReader(row)
	pr := PurchaseReturn{
		SaleReturnNumber:       r.get("Sale Return Number"),
		PurchaseReturnNo:       r.get("Purchase Return No."),
		InvoiceNo:              r.get("Invoice No"),
		SellerName:             r.get("Seller Name"),
		SellerCode:             r.get("Seller Code"),
		Month:                  r.get("Month"),
		ReturnDate:             r.get("Return Date"),
		PostDate:               r.get("Post Date"),
		ReturnID:               r.get("Return ID"),
		Channel:                r.get("Channel"),
		WarehouseCode:          r.get("Warehouse Code"),
		TotalWithoutTax:        r.get("Total Without Tax"),
		TotalTax:               r.get("Total Tax"),
		TotalWithTax:           r.get("Total With Tax"),
		TotalQuantity:          r.get("Total Quantity"),
		BoxNo:                  r.get("Box No"),
		SellerReturnTrackingNo: r.get("Seller Return Tracking No"),
		Status:                 r.get("Status"),
		SystemTrackingID:       r.get("System Tracking Id"),
		SellerTrackingID:       r.get("Seller Tracking Id"),
	}
	pr.Extra = r.rest()
	return pr
}

func PaymentSummaryFromRow(row Row) PaymentSummary {
	r := newRowReader(row)
	ps := PaymentSummary{
		PaymentNumber:           r.get("Payment Number"),
		Month:                   r.get("Month"),
		PaymentDate:             r.get("Payment Date"),
		InvoiceCurrency:         r.get("Invoice Currency"),
		AmountInInvoiceCurrency: r.get("Amount in Invoice Currency"),
		PaymentCurrency:         r.get("Payment Currency"),
		AmountInPaymentCurrency: r.get("Amount in Payment Currency"),
		ExchangeRate:            r.get("Exchange Rate"),
		PaymentType:             r.get("Payment Type"),
		PaymentStatus:           r.get("Payment Status"),
		PaymentVoidedReason:     r.get("Payment Voided Reason"),
		PaymentNumber2:          r.get("Payment Number2"),
		BankAmount:              r.get("Bank Amount"),
		Diff:                    r.get("Diff"),
	}
	ps.Extra = r.rest()
	return ps
}

func PaymentInvoiceFromRow(row Row) PaymentInvoice {
	r := newRowReader(row)
	pi := PaymentInvoice{
		PaymentNumber:          r.get("Payment Number"),
		InvoiceNumber:          r.get("Invoice Number"),
		Month:                  r.get("Month"),
		InvoiceDate:            r.get("Invoice Date"),
		TransactionType:        r.get("Transaction type"),
		TransactionDescription: r.get("Transaction Description"),
		ReferenceDetails:       r.get("Reference Details"),
		OriginalInvoiceNumber:  r.get("Original Invoice Number"),
		InvoiceAmount:          r.get("Invoice Amount"),
		InvoiceCurrency:        r.get("Invoice Currency"),
		WithholdingAmount:      r.get("Withholding Amount"),
		TermsDiscountTaken:     r.get("Terms Discount Taken"),
		AmountPaid:             r.get("Amount Paid"),
		RemainingAmount:        r.get("Remaining Amount"),
	}
	pi.Extra = r.rest()
	return pi
}

func PayableFromRow(row Row) Payable {
	r := newRowReader(row)
	p := Payable{
		Type:              r.get("Type"),
		Status:            r.get("status"),
		Month:             r.get("Month"),
		TransactionDate:   r.get("transaction_date"),
		TransactionNumber: r.get("transaction_number"),
		PartyCode:         r.get("Party Code"),
		VendorName:        r.get("vendor_name"),
		TransactionType:   r.get("transaction_type"),
		CustomerName:      r.get("customer_name"),
		BcyTotal:          r.get("bcy_total"),
		BcyBalance:        r.get("bcy_balance"),
		TransactionID:     r.get("transaction_id"),
		VendorID:          r.get("vendor_id"),
		CustomerID:        r.get("customer_id"),
		CurrencyCode:      r.get("currency_code"),
		CurrencyID:        r.get("currency_id"),
		ReceiptName:       r.get("receipt_name"),
	}
	p.Extra = r.rest()
	return p
}
