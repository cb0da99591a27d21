// Package catalog holds every category-scoped table used to generate restaurants and
// products. Lookups never fail: a category without an entry resolves to the generic
// fallback of the table being consulted.
package catalog

import (
	"math/rand"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

// PriceRange is a closed interval in currency units.
type PriceRange struct {
	Min float64
	Max float64
}

// IntRange is a closed interval of whole numbers.
type IntRange struct {
	Min int
	Max int
}

// NutritionTemplate is a format string whose verbs are filled, in order, with a
// uniform draw from the matching range.
type NutritionTemplate struct {
	Format string
	Ranges []IntRange
}

// Profile groups the tables of a single category. Nil slices mean "not specified"
// and trigger the generic fallback; an empty non-nil Allergens means the category
// declares no allergens.
type Profile struct {
	RestaurantNames []string
	Products        []string
	Price           *PriceRange
	RestaurantTags  []string
	ProductTags     []string
	Allergens       []string
	Nutrition       *NutritionTemplate
	PrepTime        *IntRange
	Portions        []string
	Description     string // ProductNamePlaceholder marks where the product name goes
}

var (
	genericRestaurantNames = []string{"Restaurante Genérico", "Comida Boa", "Sabor Especial", "Delicias da Casa"}
	genericProducts        = []string{"Prato Especial", "Combo", "Delícia"}
	genericPrice           = PriceRange{Min: 10.0, Max: 40.0}
	genericRestaurantTags  = []string{"Comida", "Delivery", "Gourmet"}
	genericProductTags     = []string{"Delicioso", "Especial", "Tradicional"}
	genericAllergens       = []string{"Glúten", "Leite"}
	genericNutrition       = NutritionTemplate{
		Format: "Calorias: %d | Informações nutricionais disponíveis no estabelecimento",
		Ranges: []IntRange{{200, 400}},
	}
	genericPrepTime    = IntRange{Min: 10, Max: 25}
	genericPortions    = []string{"Individual", "Pequena", "Média", "Grande"}
	genericDescription = "Delicioso {name} preparado com ingredientes selecionados."
)

// Catalog is a read-only set of category profiles.
type Catalog struct {
	order    []models.Category
	profiles map[models.Category]Profile
}

// New builds a catalog from profiles; order fixes the Supported listing.
func New(order []models.Category, profiles map[models.Category]Profile) *Catalog {
	return &Catalog{order: order, profiles: profiles}
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

func (c *Catalog) profile(category models.Category) Profile {
	return c.profiles[category]
}

// Supported lists the categories that own restaurant name pools, in display order.
func (c *Catalog) Supported() []models.Category {
	out := make([]models.Category, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) IsSupported(category models.Category) bool {
	for _, known := range c.order {
		if known == category {
			return true
		}
	}
	return false
}

func (c *Catalog) RestaurantNames(category models.Category) []string {
	if names := c.profile(category).RestaurantNames; len(names) > 0 {
		return names
	}
	return genericRestaurantNames
}

func (c *Catalog) Products(category models.Category) []string {
	if products := c.profile(category).Products; len(products) > 0 {
		return products
	}
	return genericProducts
}

func (c *Catalog) PriceRange(category models.Category) PriceRange {
	if p := c.profile(category).Price; p != nil {
		return *p
	}
	return genericPrice
}

// RestaurantTagPool is the full pool Tags samples from.
func (c *Catalog) RestaurantTagPool(category models.Category) []string {
	if tags := c.profile(category).RestaurantTags; len(tags) > 0 {
		return tags
	}
	return genericRestaurantTags
}

// Tags samples at most two distinct tags from the category's restaurant tag pool.
func (c *Catalog) Tags(rng *rand.Rand, category models.Category) []string {
	return Sample(rng, c.RestaurantTagPool(category), 2)
}

func (c *Catalog) ProductTags(category models.Category) []string {
	if tags := c.profile(category).ProductTags; len(tags) > 0 {
		return tags
	}
	return genericProductTags
}

// Allergens returns the allergen pool. An empty result is an explicit
// "no allergens"; unknown categories get the generic pool.
func (c *Catalog) Allergens(category models.Category) []string {
	p, ok := c.profiles[category]
	if ok && p.Allergens != nil {
		return p.Allergens
	}
	return genericAllergens
}

func (c *Catalog) Nutrition(category models.Category) NutritionTemplate {
	if n := c.profile(category).Nutrition; n != nil {
		return *n
	}
	return genericNutrition
}

func (c *Catalog) PrepTimeRange(category models.Category) IntRange {
	if r := c.profile(category).PrepTime; r != nil {
		return *r
	}
	return genericPrepTime
}

func (c *Catalog) PortionSizes(category models.Category) []string {
	if portions := c.profile(category).Portions; len(portions) > 0 {
		return portions
	}
	return genericPortions
}

// ProductNamePlaceholder is replaced by the product name in description templates.
const ProductNamePlaceholder = "{name}"

// Description returns the description template for the category.
func (c *Catalog) Description(category models.Category) string {
	if d := c.profile(category).Description; d != "" {
		return d
	}
	return genericDescription
}

// Sample draws min(n, len(pool)) distinct elements of pool in random order.
func Sample(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return []string{}
	}
	out := make([]string, 0, n)
	for _, idx := range rng.Perm(len(pool))[:n] {
		out = append(out, pool[idx])
	}
	return out
}
