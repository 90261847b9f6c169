package recon

import "github.com/reconlens/reconlens-api/internal/models"

// DashboardMetrics is the flat summary record behind the dashboard cards.
type DashboardMetrics struct {
	SalesQuantity            float64 `json:"salesQuantity"`
	PurchaseQuantity         float64 `json:"purchaseQuantity"`
	SalesValue               float64 `json:"salesValue"`
	PurchaseValue            float64 `json:"purchaseValue"`
	SalesReturnQty           float64 `json:"salesReturnQty"`
	PurchaseReturnQty        float64 `json:"purchaseReturnQty"`
	SalesReturnValue         float64 `json:"salesReturnValue"`
	PurchaseReturnValue      float64 `json:"purchaseReturnValue"`
	NetSaleQty               float64 `json:"netSaleQty"`
	NetPurchaseQty           float64 `json:"netPurchaseQty"`
	NetSaleValue             float64 `json:"netSaleValue"`
	NetPurchaseValue         float64 `json:"netPurchaseValue"`
	NetProfit                float64 `json:"netProfit"`
	SalesReturnPercentage    float64 `json:"salesReturnPercentage"`
	PurchaseReturnPercentage float64 `json:"purchaseReturnPercentage"`
	Outstanding              float64 `json:"outstanding"`
	PurchaseOutstanding      float64 `json:"purchaseOutstanding"`
	AmountPaid               float64 `json:"amountPaid"`
	Payable                  float64 `json:"payable"`
	GrossProfit              float64 `json:"grossProfit"`
	GrossProfitPercentage    float64 `json:"grossProfitPercentage"`
	AvgMonthlySales          float64 `json:"avgMonthlySales"`
	AvgPurchaseValue         float64 `json:"avgPurchaseValue"`
}

// CalculateMetrics reduces one snapshot of the raw collections into the
// dashboard record. Every ratio guards its denominator: an empty snapshot
// produces all zeroes, never NaN. The enriched sales view is accepted for parity
// with the presentation contract even though no current metric reads it.
func CalculateMetrics(data models.AllData, _ []EnrichedSale) DashboardMetrics {
	salesValue := sum(data.Sales, func(s models.Sale) string { return s.TotalSalesAmount })
	purchaseValue := sum(data.Purchases, func(p models.Purchase) string { return p.TotalWithTax })
	salesReturnValue := sum(data.SaleReturns, func(sr models.SaleReturn) string { return sr.TotalWithTax })
	purchaseReturnValue := sum(data.PurchaseReturns, func(pr models.PurchaseReturn) string { return pr.TotalWithTax })

	salesQty := sum(data.Sales, func(s models.Sale) string { return s.TotalQuantity })
	purchaseQty := sum(data.Purchases, func(p models.Purchase) string { return p.TotalQuantity })
	salesReturnQty := sum(data.SaleReturns, func(sr models.SaleReturn) string { return sr.TotalQty })
	purchaseReturnQty := sum(data.PurchaseReturns, func(pr models.PurchaseReturn) string { return pr.TotalQuantity })

	netSaleValue := salesValue - salesReturnValue
	netPurchaseValue := purchaseValue - purchaseReturnValue
	grossProfit := netSaleValue - netPurchaseValue

	amountPaid := sum(data.PaymentInvoices, func(p models.PaymentInvoice) string { return p.AmountPaid })
	payable := sum(data.Payables, func(p models.Payable) string { return p.BcyBalance })

	distinctMonths := make(map[string]bool)
	for _, s := range data.Sales {
		if s.Month != "" {
			distinctMonths[s.Month] = true
		}
	}

	m := DashboardMetrics{
		SalesQuantity:       salesQty,
		PurchaseQuantity:    purchaseQty,
		SalesValue:          salesValue,
		PurchaseValue:       purchaseValue,
		SalesReturnQty:      salesReturnQty,
		PurchaseReturnQty:   purchaseReturnQty,
		SalesReturnValue:    salesReturnValue,
		PurchaseReturnValue: purchaseReturnValue,
		NetSaleQty:          salesQty - salesReturnQty,
		NetPurchaseQty:      purchaseQty - purchaseReturnQty,
		NetSaleValue:        netSaleValue,
		NetPurchaseValue:    netPurchaseValue,
		NetProfit:           grossProfit,
		Outstanding:         salesValue - amountPaid,
		PurchaseOutstanding: payable,
		AmountPaid:          amountPaid,
		Payable:             payable,
		GrossProfit:         grossProfit,
	}
	if salesValue > 0 {
		m.SalesReturnPercentage = salesReturnValue / salesValue * 100
	}
	if purchaseValue > 0 {
		m.PurchaseReturnPercentage = purchaseReturnValue / purchaseValue * 100
	}
	if netSaleValue > 0 {
		m.GrossProfitPercentage = grossProfit / netSaleValue * 100
	}
	if len(distinctMonths) > 0 {
		m.AvgMonthlySales = salesValue / float64(len(distinctMonths))
	}
	if len(data.Purchases) > 0 {
		m.AvgPurchaseValue = purchaseValue / float64(len(data.Purchases))
	}
	return m
}

func sum[T any](rows []T, field func(T) string) float64 {
	var total float64
	for _, row := range rows {
		total += ToNumber(field(row))
	}
	return total
}
