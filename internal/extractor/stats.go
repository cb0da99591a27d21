package extractor

import (
	"time"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

type RestaurantTotals struct {
	Total      int                         `json:"total"`
	ByCategory map[models.Category]int     `json:"by_category"`
	Saved      models.ReconciliationResult `json:"saved"`
}

type ProductTotals struct {
	Total    int `json:"total"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Errors   int `json:"errors"`
	Skipped  int `json:"skipped"`
}

type Performance struct {
	RestaurantsPerSecond float64 `json:"restaurants_per_second"`
	ProductsPerSecond    float64 `json:"products_per_second"`
}

// Result is the outcome of one extraction run. A failed run keeps the totals
// accumulated before the failure.
type Result struct {
	RunID               string           `json:"run_id"`
	Success             bool             `json:"success"`
	Error               string           `json:"error,omitempty"`
	StartedAt           time.Time        `json:"started_at"`
	TotalTime           float64          `json:"total_time"` // seconds
	CategoriesProcessed int              `json:"categories_processed"`
	Restaurants         RestaurantTotals `json:"restaurants"`
	Products            ProductTotals    `json:"products"`
	Performance         Performance      `json:"performance"`
}

func newResult(runID string, started time.Time) *Result {
	return &Result{
		RunID:       runID,
		StartedAt:   started,
		Restaurants: RestaurantTotals{ByCategory: make(map[models.Category]int)},
	}
}

func (r *Result) finish(elapsed time.Duration) {
	r.TotalTime = elapsed.Seconds()
	if r.TotalTime > 0 {
		r.Performance.RestaurantsPerSecond = float64(r.Restaurants.Total) / r.TotalTime
		r.Performance.ProductsPerSecond = float64(r.Products.Total) / r.TotalTime
	}
}

// RestaurantsResult is the outcome of a restaurants-only extraction.
type RestaurantsResult struct {
	RunID      string                                          `json:"run_id"`
	Success    bool                                            `json:"success"`
	Error      string                                          `json:"error,omitempty"`
	TotalTime  float64                                         `json:"total_time"`
	Total      int                                             `json:"total"`
	ByCategory map[models.Category]models.ReconciliationResult `json:"by_category"`
	Saved      models.ReconciliationResult                     `json:"saved"`
}

// SessionStats accumulates successful runs of one coordinator.
type SessionStats struct {
	Runs                 int       `json:"runs"`
	RestaurantsExtracted int       `json:"restaurants_extracted"`
	ProductsExtracted    int       `json:"products_extracted"`
	LastRun              time.Time `json:"last_run"`
}

func (s *SessionStats) merge(restaurants, products int, at time.Time) {
	s.Runs++
	s.RestaurantsExtracted += restaurants
	s.ProductsExtracted += products
	s.LastRun = at
}

// Statistics describes the persisted catalog.
type Statistics struct {
	ActiveRestaurants     int                     `json:"active_restaurants"`
	ActiveProducts        int                     `json:"active_products"`
	RestaurantsByCategory map[models.Category]int `json:"restaurants_by_category"`
	SupportedCategories   []models.Category       `json:"supported_categories"`
	Session               SessionStats            `json:"session"`
}
