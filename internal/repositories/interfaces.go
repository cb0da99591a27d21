package repositories

import (
	"context"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

// Save methods reconcile by natural key and only return an error when the batch
// itself could not run; per-record failures are counted in the result.
// Load methods log failures and return an empty slice.

type RestaurantRepository interface {
	SaveRestaurants(ctx context.Context, restaurants []*models.Restaurant) (models.ReconciliationResult, error)
	LoadActiveRestaurants(ctx context.Context) []*models.Restaurant
	CountByCategory(ctx context.Context) (map[models.Category]int, error)
}

type ProductRepository interface {
	SaveProducts(ctx context.Context, products []*models.Product) (models.ReconciliationResult, error)
	LoadActiveProducts(ctx context.Context) []*models.Product
}

type MaintenanceRepository interface {
	DeactivateStale(ctx context.Context, daysOld int) models.DeactivationResult
	Counts(ctx context.Context) (models.CatalogCounts, error)
}

type CatalogRepository interface {
	RestaurantRepository
	ProductRepository
	MaintenanceRepository
}
