package services

import (
	"sync"
	"time"

	"github.com/reconlens/reconlens-api/internal/models"
	"github.com/reconlens/reconlens-api/internal/recon"
)

// DerivedViews bundles the four reconciliation views computed from one snapshot.
type DerivedViews struct {
	EnrichedSales      []recon.EnrichedSale
	SalePurchaseChecks []recon.SalePurchaseCheck
	SalePaymentChecks  []recon.SalePaymentCheck
	SaleReturnChecks   []recon.SaleReturnCheck
}

// DataStore owns the in-memory raw collections and a memo of the derived views.
// The recon functions are pure; this is the one place that caches their output,
// keyed on a version counter that moves whenever a collection is replaced or
// cleared. Months and free-text filtering happen over the cached views, so a
// filter change never forces a recompute.
type DataStore struct {
	mu      sync.RWMutex
	data    models.AllData
	version uint64

	derived        DerivedViews
	derivedVersion uint64
	derivedValid   bool

	now func() time.Time
}

// NewDataStore creates an empty store.
func NewDataStore() *DataStore {
	return &DataStore{now: time.Now}
}

// Seed installs persisted collections at startup without touching the database.
func (ds *DataStore) Seed(data models.AllData) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.data = data
	ds.version++
	ds.derivedValid = false
}

// SeedFromMap installs persisted collections keyed by kind, as loaded from
// the database.
func (ds *DataStore) SeedFromMap(loaded map[models.DataType][]models.Row) {
	var data models.AllData
	for kind, rows := range loaded {
		data.MapRows(kind, rows)
	}
	ds.Seed(data)
}

// Replace swaps in a freshly parsed collection wholesale.
func (ds *DataStore) Replace(kind models.DataType, rows []models.Row) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.data.MapRows(kind, rows)
	ds.version++
	ds.derivedValid = false
}

// Clear empties every collection.
func (ds *DataStore) Clear() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.data = models.AllData{}
	ds.version++
	ds.derivedValid = false
}

// Snapshot returns the current raw collections. Callers must treat the slices
// as read-only; Replace installs new slices rather than mutating these.
func (ds *DataStore) Snapshot() models.AllData {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.data
}

// Version reports the current snapshot identity, usable as a cache key.
func (ds *DataStore) Version() uint64 {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.version
}

// Derived returns the four reconciliation views for the current snapshot,
// recomputing only when the snapshot has changed since the last call.
func (ds *DataStore) Derived() DerivedViews {
	ds.mu.RLock()
	if ds.derivedValid && ds.derivedVersion == ds.version {
		views := ds.derived
		ds.mu.RUnlock()
		return views
	}
	ds.mu.RUnlock()

	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.derivedValid && ds.derivedVersion == ds.version {
		return ds.derived
	}

	data := ds.data
	ds.derived = DerivedViews{
		EnrichedSales:      recon.EnrichSales(data.Sales, data.Purchases, data.PaymentInvoices, data.SaleReturns),
		SalePurchaseChecks: recon.BuildSalePurchaseChecks(data.Sales, data.Purchases),
		SalePaymentChecks:  recon.BuildSalePaymentChecks(data.Sales, data.PaymentInvoices, data.PaymentSummaries, ds.now()),
		SaleReturnChecks:   recon.BuildSaleReturnChecks(data.PaymentInvoices, data.SaleReturns),
	}
	ds.derivedVersion = ds.version
	ds.derivedValid = true
	return ds.derived
}

// Months lists the distinct month labels across all collections, sorted
// chronologically, with the pass-through sentinel first.
func (ds *DataStore) Months() []string {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return append([]string{recon.AllMonths}, recon.UniqueMonths(ds.data)...)
}

// Metrics aggregates the dashboard record for one month selector. The raw
// collections are month-filtered first; the enriched view is filtered the same
// way before being handed over.
func (ds *DataStore) Metrics(month string) recon.DashboardMetrics {
	derived := ds.Derived()
	snapshot := ds.Snapshot()

	filtered := recon.FilterAllData(snapshot, month)
	enriched := recon.FilterMonth(derived.EnrichedSales,
		func(e recon.EnrichedSale) string { return e.Month }, month)
	return recon.CalculateMetrics(filtered, enriched)
}
