package catalog

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

func TestSupportedCategoriesHaveTables(t *testing.T) {
	c := Default()
	require.Len(t, c.Supported(), 12)

	rng := rand.New(rand.NewSource(1))
	for _, category := range c.Supported() {
		t.Run(category.String(), func(t *testing.T) {
			assert.Len(t, c.RestaurantNames(category), 12)
			assert.NotEmpty(t, c.Products(category))
			assert.NotEmpty(t, c.PortionSizes(category))
			assert.NotEmpty(t, c.ProductTags(category))
			d := c.Description(category)
			assert.Equal(t, 1, strings.Count(d, ProductNamePlaceholder), d)
			assert.NotContains(t, d, "%s")

			n := c.Nutrition(category)
			assert.Equal(t, len(n.Ranges), strings.Count(n.Format, "%d"), n.Format)
			assert.Equal(t, strings.Count(n.Format, "%"), strings.Count(n.Format, "%d"), n.Format)

			pr := c.PriceRange(category)
			assert.Greater(t, pr.Min, 0.0)
			assert.Greater(t, pr.Max, pr.Min)

			tags := c.Tags(rng, category)
			assert.NotEmpty(t, tags)
			assert.LessOrEqual(t, len(tags), 2)
			assert.Subset(t, c.RestaurantTagPool(category), tags)
		})
	}
}

func TestUnknownCategoryFallsBack(t *testing.T) {
	c := Default()
	unknown := models.Category("unknown_cuisine")

	assert.False(t, c.IsSupported(unknown))
	assert.Equal(t, []string{"Restaurante Genérico", "Comida Boa", "Sabor Especial", "Delicias da Casa"}, c.RestaurantNames(unknown))
	assert.Equal(t, []string{"Prato Especial", "Combo", "Delícia"}, c.Products(unknown))
	assert.Equal(t, PriceRange{Min: 10.0, Max: 40.0}, c.PriceRange(unknown))
	assert.Equal(t, []string{"Glúten", "Leite"}, c.Allergens(unknown))
	assert.Equal(t, IntRange{Min: 10, Max: 25}, c.PrepTimeRange(unknown))
	assert.Equal(t, "Delicioso {name} preparado com ingredientes selecionados.", c.Description(unknown))

	tags := c.Tags(rand.New(rand.NewSource(7)), unknown)
	assert.Len(t, tags, 2)
	assert.Subset(t, []string{"Comida", "Delivery", "Gourmet"}, tags)
}

func TestAllergensEmptyPoolIsExplicit(t *testing.T) {
	c := Default()
	allergens := c.Allergens(models.CategoryBebidas)
	assert.NotNil(t, allergens)
	assert.Empty(t, allergens)

	// a known category without its own pool still uses the generic one
	assert.Equal(t, []string{"Glúten", "Leite"}, c.Allergens(models.CategoryChinesa))
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want models.Category
	}{
		{"Hamburguers", models.CategoryHamburguer},
		{"  pizzas ", models.CategoryPizza},
		{"JAPA", models.CategoryJaponesa},
		{"healthy", models.CategorySaudavel},
		{"Drinks", models.CategoryBebidas},
		{"pizza", models.CategoryPizza},
		{"unknown_cuisine", "unknown_cuisine"},
		{"Unknown_Cuisine", "unknown_cuisine"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategory(tt.raw))
		})
	}
}

func TestClassifyProduct(t *testing.T) {
	assert.Equal(t, models.CategoryPizza, ClassifyProduct("Pizza Margherita", models.CategoryItaliana))
	assert.Equal(t, models.CategoryBrasileira, ClassifyProduct("Prato do Dia", models.CategoryBrasileira))
	assert.Equal(t, models.CategoryHamburguer, ClassifyProduct("Big Mac Especial", models.CategoryLanches))
	assert.Equal(t, models.CategoryBebidas, ClassifyProduct("Smoothie Verde", models.CategorySaudavel))
	assert.Equal(t, models.CategoryMassas, ClassifyProduct("Macarrão Chow Mein", models.CategoryChinesa))
	assert.Equal(t, models.CategoryCarnes, ClassifyProduct("Frango Xadrez", models.CategoryChinesa))
}

func TestReclassifyPromotionalTag(t *testing.T) {
	assert.Equal(t, "Pizzas", ReclassifyPromotionalTag("Novidade", "Pizzaria Bella Vista"))
	assert.Equal(t, "Alimentação", ReclassifyPromotionalTag("Novidade", "Restaurante XYZ"))
	assert.Equal(t, "Açaí", ReclassifyPromotionalTag("Promoção", "Açaí da Hora"))
	assert.Equal(t, "Japonesa", ReclassifyPromotionalTag("destaque", "Sushi Zen"))
	assert.Equal(t, "Italiana", ReclassifyPromotionalTag("Italiana", "Pizzaria Bella Vista"))
}

func TestSample(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := []string{"a", "b", "c"}

	got := Sample(rng, pool, 2)
	assert.Len(t, got, 2)
	assert.NotEqual(t, got[0], got[1])

	assert.Len(t, Sample(rng, pool, 10), 3)
	assert.Empty(t, Sample(rng, nil, 2))
}
