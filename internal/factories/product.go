package factories

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chrisdamba/foodcatalogsim/internal/catalog"
	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var productSuffixes = []string{"Especial", "Gourmet", "Premium", "da Casa", "Tradicional", "Completo"}

// name keywords that add the matching product tag
var nameTagKeywords = []string{"Gourmet", "Especial", "Premium"}

const (
	suffixProbability    = 0.3
	discountProbability  = 0.3
	minDiscount          = 0.10
	maxDiscount          = 0.30
	availableProbability = 0.75
)

// ErrNoRestaurantID is returned when products are requested for a restaurant that
// has not been persisted yet.
var ErrNoRestaurantID = errors.New("restaurant has no persisted id")

type ProductFactory struct {
	catalog *catalog.Catalog
	src     *Source
	logger  *slog.Logger
}

func NewProductFactory(c *catalog.Catalog, src *Source, logger *slog.Logger) *ProductFactory {
	if c == nil {
		c = catalog.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductFactory{catalog: c, src: src, logger: logger}
}

// CreateProductsForRestaurant generates count products owned by restaurant. A
// restaurant without an id yields no products. Items that fail to generate are
// logged and skipped.
func (pf *ProductFactory) CreateProductsForRestaurant(restaurant *models.Restaurant, count int) []*models.Product {
	if !restaurant.HasID() {
		name := ""
		if restaurant != nil {
			name = restaurant.Name
		}
		pf.logger.Warn("skipping product generation", "restaurant", name, "error", ErrNoRestaurantID)
		return []*models.Product{}
	}

	products := make([]*models.Product, 0, count)
	for i := 0; i < count; i++ {
		product, err := pf.safeCreate(restaurant)
		if err != nil {
			pf.logger.Warn("product generation failed", "restaurant", restaurant.Name, "index", i, "error", err)
			continue
		}
		products = append(products, product)
	}
	return products
}

func (pf *ProductFactory) safeCreate(restaurant *models.Restaurant) (product *models.Product, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic generating product: %v", r)
		}
	}()
	product = pf.CreateProduct(restaurant)
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func validateProduct(p *models.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return errors.New("empty product name")
	case p.Price < 0:
		return fmt.Errorf("negative price %.2f", p.Price)
	case p.OriginalPrice < p.Price:
		return fmt.Errorf("original price %.2f below price %.2f", p.OriginalPrice, p.Price)
	}
	return nil
}

// CreateProduct builds one product for restaurant. Category tables are looked up
// with the restaurant's category; the stored product category comes from
// keyword classification of the generated name.
func (pf *ProductFactory) CreateProduct(restaurant *models.Restaurant) *models.Product {
	category := restaurant.Category
	name := pf.ProductName(category)
	price := pf.Price(category)

	return &models.Product{
		Name:            name,
		Description:     pf.Description(name, category),
		Price:           price,
		OriginalPrice:   pf.OriginalPrice(price),
		Category:        catalog.ClassifyProduct(name, category),
		RestaurantID:    restaurant.ID,
		ImageURL:        imageURL("products", name),
		IsAvailable:     pf.src.Chance(availableProbability),
		NutritionalInfo: pf.NutritionalInfo(category),
		Allergens:       pf.Allergens(category),
		Tags:            pf.Tags(name, category),
		PreparationTime: pf.PreparationTime(category),
		PortionSize:     pf.src.Pick(pf.catalog.PortionSizes(category)),
	}
}

func (pf *ProductFactory) ProductName(category models.Category) string {
	name := pf.src.Pick(pf.catalog.Products(category))
	if pf.src.Chance(suffixProbability) {
		name = fmt.Sprintf("%s %s", name, pf.src.Pick(productSuffixes))
	}
	return name
}

func (pf *ProductFactory) Description(productName string, category models.Category) string {
	return strings.ReplaceAll(pf.catalog.Description(category), catalog.ProductNamePlaceholder, productName)
}

// Price draws from the category price range, rounded to cents.
func (pf *ProductFactory) Price(category models.Category) float64 {
	pr := pf.catalog.PriceRange(category)
	return round(pf.src.Uniform(pr.Min, pr.Max), 2)
}

// OriginalPrice derives the pre-discount price. The result is never below price.
func (pf *ProductFactory) OriginalPrice(price float64) float64 {
	if !pf.src.Chance(discountProbability) {
		return price
	}
	discount := pf.src.Uniform(minDiscount, maxDiscount)
	original := round(price/(1-discount), 2)
	if original < price {
		return price
	}
	return original
}

func (pf *ProductFactory) NutritionalInfo(category models.Category) string {
	tmpl := pf.catalog.Nutrition(category)
	values := make([]any, 0, len(tmpl.Ranges))
	for _, r := range tmpl.Ranges {
		values = append(values, pf.src.IntBetween(r.Min, r.Max))
	}
	return fmt.Sprintf(tmpl.Format, values...)
}

// Allergens renders a "Contém: ..." list of one to three allergens from the
// category pool, or the no-allergen sentinel for an empty pool.
func (pf *ProductFactory) Allergens(category models.Category) string {
	pool := pf.catalog.Allergens(category)
	if len(pool) == 0 {
		return models.NoAllergens
	}
	picked := catalog.Sample(pf.src.Rand(), pool, pf.src.IntBetween(1, 3))
	return "Contém: " + strings.Join(picked, ", ")
}

func (pf *ProductFactory) Tags(productName string, category models.Category) []string {
	base := pf.catalog.ProductTags(category)
	pool := make([]string, len(base), len(base)+len(nameTagKeywords))
	copy(pool, base)
	for _, keyword := range nameTagKeywords {
		if strings.Contains(productName, keyword) && !contains(pool, keyword) {
			pool = append(pool, keyword)
		}
	}
	return catalog.Sample(pf.src.Rand(), pool, 2)
}

func (pf *ProductFactory) PreparationTime(category models.Category) string {
	r := pf.catalog.PrepTimeRange(category)
	return fmt.Sprintf("%d min", pf.src.IntBetween(r.Min, r.Max))
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
