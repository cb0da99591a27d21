package models

// ReconciliationResult tallies the outcome of one batch save.
// Skipped counts records dropped before reconciliation for a missing natural key;
// they are not part of TotalProcessed.
type ReconciliationResult struct {
	Inserted       int `json:"inserted"`
	Updated        int `json:"updated"`
	Errors         int `json:"errors"`
	TotalProcessed int `json:"total_processed"`
	Skipped        int `json:"skipped"`
}

// Add merges other into r.
func (r *ReconciliationResult) Add(other ReconciliationResult) {
	r.Inserted += other.Inserted
	r.Updated += other.Updated
	r.Errors += other.Errors
	r.TotalProcessed += other.TotalProcessed
	r.Skipped += other.Skipped
}

type DeactivationResult struct {
	RestaurantsDeactivated int64 `json:"restaurants_deactivated"`
	ProductsDeactivated    int64 `json:"products_deactivated"`
}

// CatalogCounts totals the active rows of each table.
type CatalogCounts struct {
	Restaurants int `json:"restaurants"`
	Products    int `json:"products"`
}
