package recon

import (
	"sort"
	"strings"

	"github.com/reconlens/reconlens-api/internal/models"
)

// AllMonths is the sentinel selector that disables month filtering.
const AllMonths = "All Months"

// FilterMonth keeps the rows whose Month field equals the selector exactly.
// Filtering is raw string equality on purpose: the chronological parsing in
// SortMonthLabels is a sort key only and must not leak into filtering.
func FilterMonth[T any](rows []T, month func(T) string, selected string) []T {
	if selected == "" || selected == AllMonths {
		return rows
	}
	kept := make([]T, 0, len(rows))
	for _, row := range rows {
		if month(row) == selected {
			kept = append(kept, row)
		}
	}
	return kept
}

// FilterAllData applies the month selector to every raw collection.
func FilterAllData(data models.AllData, selected string) models.AllData {
	if selected == "" || selected == AllMonths {
		return data
	}
	return models.AllData{
		Sales:            FilterMonth(data.Sales, func(s models.Sale) string { return s.Month }, selected),
		Purchases:        FilterMonth(data.Purchases, func(p models.Purchase) string { return p.Month }, selected),
		SaleReturns:      FilterMonth(data.SaleReturns, func(sr models.SaleReturn) string { return sr.Month }, selected),
		PurchaseReturns:  FilterMonth(data.PurchaseReturns, func(pr models.PurchaseReturn) string { return pr.Month }, selected),
		PaymentSummaries: FilterMonth(data.PaymentSummaries, func(ps models.PaymentSummary) string { return ps.Month }, selected),
		PaymentInvoices:  FilterMonth(data.PaymentInvoices, func(pi models.PaymentInvoice) string { return pi.Month }, selected),
		Payables:         FilterMonth(data.Payables, func(p models.Payable) string { return p.Month }, selected),
	}
}

// UniqueMonths collects the distinct non-empty Month labels across every
// collection, sorted chronologically.
func UniqueMonths(data models.AllData) []string {
	seen := make(map[string]bool)
	var months []string
	add := func(month string) {
		if month != "" && !seen[month] {
			seen[month] = true
			months = append(months, month)
		}
	}
	for _, s := range data.Sales {
		add(s.Month)
	}
	for _, p := range data.Purchases {
		add(p.Month)
	}
	for _, sr := range data.SaleReturns {
		add(sr.Month)
	}
	for _, pr := range data.PurchaseReturns {
		add(pr.Month)
	}
	for _, ps := range data.PaymentSummaries {
		add(ps.Month)
	}
	for _, pi := range data.PaymentInvoices {
		add(pi.Month)
	}
	for _, p := range data.Payables {
		add(p.Month)
	}
	SortMonthLabels(months)
	return months
}

// SortMonthLabels orders labels chronologically when both sides parse as month
// labels, and lexicographically when either side is unparseable.
func SortMonthLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		a, okA := ParseMonthLabel(labels[i])
		b, okB := ParseMonthLabel(labels[j])
		if okA && okB {
			return a.Before(b)
		}
		return strings.Compare(labels[i], labels[j]) < 0
	})
}
