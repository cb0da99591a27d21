// Package extractor runs catalog extraction: restaurants are generated and saved
// per category, then products are generated for every persisted restaurant and
// saved as one batch.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lucsky/cuid"

	"github.com/chrisdamba/foodcatalogsim/internal/catalog"
	"github.com/chrisdamba/foodcatalogsim/internal/factories"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
	"github.com/chrisdamba/foodcatalogsim/internal/output"
	"github.com/chrisdamba/foodcatalogsim/internal/repositories"
)

type Coordinator struct {
	catalog      *catalog.Catalog
	restaurants  *factories.RestaurantFactory
	products     *factories.ProductFactory
	repo         repositories.CatalogRepository
	events       output.Destination
	idResolution string
	logger       *slog.Logger
	now          func() time.Time
	onCategory   func(category models.Category)

	session SessionStats
}

type Option func(*Coordinator)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Coordinator) { c.logger = logger }
}

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) { c.now = now }
}

// WithEvents publishes batch and run events to dest.
func WithEvents(dest output.Destination) Option {
	return func(c *Coordinator) { c.events = dest }
}

// WithIDResolution selects how restaurant ids are obtained before product
// generation: models.IDResolutionDirect or models.IDResolutionReload.
func WithIDResolution(mode string) Option {
	return func(c *Coordinator) { c.idResolution = mode }
}

func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Coordinator) { c.catalog = cat }
}

// WithCategoryCallback is invoked after each category finishes its restaurant stage.
func WithCategoryCallback(fn func(category models.Category)) Option {
	return func(c *Coordinator) { c.onCategory = fn }
}

func NewCoordinator(repo repositories.CatalogRepository, src *factories.Source, opts ...Option) *Coordinator {
	c := &Coordinator{
		catalog:      catalog.Default(),
		repo:         repo,
		idResolution: models.IDResolutionDirect,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.restaurants = factories.NewRestaurantFactory(c.catalog, src)
	c.products = factories.NewProductFactory(c.catalog, src, c.logger)
	return c
}

// Run extracts restaurantsPerCategory restaurants for every category and
// productsPerRestaurant products for each persisted restaurant. The result is
// always returned; err is a *BatchError when the run aborted.
func (c *Coordinator) Run(ctx context.Context, categories []string, restaurantsPerCategory, productsPerRestaurant int) (result *Result, err error) {
	started := c.now()
	result = newResult(cuid.New(), started.UTC())
	stage, current := StageGenerateRestaurants, ""

	defer func() {
		if r := recover(); r != nil {
			err = &BatchError{Stage: stage, Category: current, Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			result.Success = false
			result.Error = err.Error()
			c.logger.Error("extraction run failed", "run_id", result.RunID, "error", err)
		}
		result.finish(c.now().Sub(started))
		c.publish(models.TopicExtractionRun, ExtractionRunEvent{Timestamp: c.now().UTC(), Result: result})
		if err == nil {
			c.session.merge(result.Restaurants.Total, result.Products.Total, c.now().UTC())
		}
	}()

	c.logger.Info("starting extraction", "run_id", result.RunID, "categories", categories,
		"restaurants_per_category", restaurantsPerCategory, "products_per_restaurant", productsPerRestaurant)

	var products []*models.Product
	for _, raw := range categories {
		category := catalog.NormalizeCategory(raw)
		current = category.String()

		stage = StageGenerateRestaurants
		if err := ctx.Err(); err != nil {
			return result, &BatchError{Stage: stage, Category: current, Err: err}
		}
		restaurants := c.restaurants.CreateRestaurants(category, restaurantsPerCategory)

		stage = StageSaveRestaurants
		saved, err := c.repo.SaveRestaurants(ctx, restaurants)
		// an aborted category still counts what it generated and saved
		result.Restaurants.Saved.Add(saved)
		result.Restaurants.Total += len(restaurants)
		result.Restaurants.ByCategory[category] += len(restaurants)
		if err != nil {
			return result, &BatchError{Stage: stage, Category: current, Err: err}
		}
		c.publish(models.TopicRestaurantBatch, RestaurantBatchEvent{
			Timestamp: c.now().UTC(), RunID: result.RunID, Category: category,
			Generated: len(restaurants), Result: saved,
		})

		stage = StageGenerateProducts
		for _, r := range c.persistedRestaurants(ctx, category, restaurants) {
			if err := ctx.Err(); err != nil {
				return result, &BatchError{Stage: stage, Category: current, Err: err}
			}
			generated := c.products.CreateProductsForRestaurant(r, productsPerRestaurant)
			products = append(products, generated...)
			result.Products.Total += len(generated)
		}

		result.CategoriesProcessed++
		c.logger.Info("category processed", "category", category, "restaurants", len(restaurants),
			"inserted", saved.Inserted, "updated", saved.Updated, "errors", saved.Errors)
		if c.onCategory != nil {
			c.onCategory(category)
		}
	}

	stage, current = StageSaveProducts, ""
	if len(products) > 0 {
		saved, err := c.repo.SaveProducts(ctx, products)
		result.Products.Inserted += saved.Inserted
		result.Products.Updated += saved.Updated
		result.Products.Errors += saved.Errors
		result.Products.Skipped += saved.Skipped
		c.publish(models.TopicProductBatch, ProductBatchEvent{
			Timestamp: c.now().UTC(), RunID: result.RunID, Generated: len(products), Result: saved,
		})
		if err != nil {
			return result, &BatchError{Stage: stage, Err: err}
		}
	}

	result.Success = true
	c.logger.Info("extraction finished", "run_id", result.RunID,
		"restaurants", result.Restaurants.Total, "products", result.Products.Total)
	return result, nil
}

// persistedRestaurants returns the restaurants of category that carry a durable id.
func (c *Coordinator) persistedRestaurants(ctx context.Context, category models.Category, generated []*models.Restaurant) []*models.Restaurant {
	if c.idResolution == models.IDResolutionReload {
		var out []*models.Restaurant
		for _, r := range c.repo.LoadActiveRestaurants(ctx) {
			if r.Category == category {
				out = append(out, r)
			}
		}
		return out
	}

	// duplicate names resolve to the same row; generate its products once
	seen := make(map[int64]bool, len(generated))
	out := make([]*models.Restaurant, 0, len(generated))
	for _, r := range generated {
		if !r.HasID() {
			c.logger.Warn("restaurant has no persisted id", "name", r.Name, "category", category)
			continue
		}
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

// ProcessCategory runs a full extraction for a single category.
func (c *Coordinator) ProcessCategory(ctx context.Context, category string, restaurants, productsPerRestaurant int) (*Result, error) {
	return c.Run(ctx, []string{category}, restaurants, productsPerRestaurant)
}

// ExtractRestaurants generates and saves restaurants only.
func (c *Coordinator) ExtractRestaurants(ctx context.Context, categories []string, restaurantsPerCategory int) (*RestaurantsResult, error) {
	started := c.now()
	result := &RestaurantsResult{
		RunID:      cuid.New(),
		ByCategory: make(map[models.Category]models.ReconciliationResult),
	}
	defer func() { result.TotalTime = c.now().Sub(started).Seconds() }()

	for _, raw := range categories {
		category := catalog.NormalizeCategory(raw)
		restaurants := c.restaurants.CreateRestaurants(category, restaurantsPerCategory)

		saved, err := c.repo.SaveRestaurants(ctx, restaurants)
		result.Saved.Add(saved)
		byCategory := result.ByCategory[category]
		byCategory.Add(saved)
		result.ByCategory[category] = byCategory
		result.Total += len(restaurants)
		if err != nil {
			batchErr := &BatchError{Stage: StageSaveRestaurants, Category: category.String(), Err: err}
			result.Error = batchErr.Error()
			return result, batchErr
		}
		c.publish(models.TopicRestaurantBatch, RestaurantBatchEvent{
			Timestamp: c.now().UTC(), RunID: result.RunID, Category: category,
			Generated: len(restaurants), Result: saved,
		})
		if c.onCategory != nil {
			c.onCategory(category)
		}
	}

	result.Success = true
	c.session.merge(result.Total, 0, c.now().UTC())
	return result, nil
}

// Statistics reports what is currently persisted together with the session counters.
func (c *Coordinator) Statistics(ctx context.Context) (*Statistics, error) {
	counts, err := c.repo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}
	byCategory, err := c.repo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count restaurants by category: %w", err)
	}
	return &Statistics{
		ActiveRestaurants:     counts.Restaurants,
		ActiveProducts:        counts.Products,
		RestaurantsByCategory: byCategory,
		SupportedCategories:   c.catalog.Supported(),
		Session:               c.session,
	}, nil
}

// Cleanup deactivates restaurants untouched for more than daysOld days and their products.
func (c *Coordinator) Cleanup(ctx context.Context, daysOld int) models.DeactivationResult {
	return c.repo.DeactivateStale(ctx, daysOld)
}

func (c *Coordinator) SessionStats() SessionStats {
	return c.session
}

func (c *Coordinator) publish(topic string, event any) {
	if err := output.Publish(c.events, topic, event); err != nil {
		c.logger.Warn("failed to publish event", "topic", topic, "error", err)
	}
}
