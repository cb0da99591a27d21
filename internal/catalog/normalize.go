package catalog

import (
	"strings"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var categoryAliases = map[string]models.Category{
	"pizzas":      models.CategoryPizza,
	"hamburguers": models.CategoryHamburguer,
	"hamburger":   models.CategoryHamburguer,
	"burgers":     models.CategoryHamburguer,
	"japonês":     models.CategoryJaponesa,
	"japa":        models.CategoryJaponesa,
	"italiano":    models.CategoryItaliana,
	"brazil":      models.CategoryBrasileira,
	"brazilian":   models.CategoryBrasileira,
	"chinese":     models.CategoryChinesa,
	"mexican":     models.CategoryMexicana,
	"arab":        models.CategoryArabe,
	"arabic":      models.CategoryArabe,
	"healthy":     models.CategorySaudavel,
	"fit":         models.CategorySaudavel,
	"sweets":      models.CategoryDoces,
	"desserts":    models.CategoryDoces,
	"snacks":      models.CategoryLanches,
	"drinks":      models.CategoryBebidas,
}

// NormalizeCategory lower-cases and trims raw and resolves known aliases.
// Unmapped input is returned in its normalized casing.
func NormalizeCategory(raw string) models.Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := categoryAliases[key]; ok {
		return canonical
	}
	return models.Category(key)
}

type keywordRule struct {
	category string
	keywords []string
}

// order matters: the first rule with a matching keyword wins
var productKeywordRules = []keywordRule{
	{models.CategoryPizza.String(), []string{"pizza", "margherita", "calabresa", "portuguesa"}},
	{models.CategoryHamburguer.String(), []string{"burger", "hamburguer", "big mac", "whopper"}},
	{models.CategoryBebidas.String(), []string{"suco", "refrigerante", "café", "água", "smoothie"}},
	{models.CategoryDoces.String(), []string{"brigadeiro", "sorvete", "açaí", "cupcake", "chocolate"}},
	{models.CategorySaladas.String(), []string{"salada", "caesar", "verde", "mix"}},
	{models.CategoryMassas.String(), []string{"lasanha", "fettuccine", "macarrão", "gnocchi"}},
	{models.CategoryCarnes.String(), []string{"picanha", "frango", "carne", "bife"}},
	{models.CategoryPeixes.String(), []string{"salmão", "bacalhau", "peixe", "camarão"}},
	{models.CategoryVegetariano.String(), []string{"quinoa", "tofu", "vegetariano", "vegano"}},
}

// ClassifyProduct assigns a product category from keywords in its name, keeping
// restaurantCategory when nothing matches.
func ClassifyProduct(productName string, restaurantCategory models.Category) models.Category {
	if matched, ok := matchRules(productKeywordRules, productName); ok {
		return models.Category(matched)
	}
	return restaurantCategory
}

var promotionalTags = []string{"novidade", "novo", "new", "promoção", "oferta", "destaque"}

const FallbackRepairCategory = "Alimentação"

var repairKeywordRules = []keywordRule{
	{"Açaí", []string{"açaí", "acai"}},
	{"Pizzas", []string{"pizza", "pizzaria"}},
	{"Japonesa", []string{"japonês", "japonesa", "sushi", "japanese"}},
	{"Lanches", []string{"burger", "hamburg", "lanch"}},
	{"Brasileira", []string{"brasileira", "caseira", "marmita", "prato"}},
	{"Doces & Bolos", []string{"doce", "sobremesa", "sorvete"}},
	{"Bebidas", []string{"bebida", "drink", "suco"}},
	{"Fast Food", []string{"fast", "express"}},
}

// IsPromotionalTag reports whether category is a marketing label rather than a cuisine.
func IsPromotionalTag(category string) bool {
	lower := strings.ToLower(category)
	for _, tag := range promotionalTags {
		if strings.Contains(lower, tag) {
			return true
		}
	}
	return false
}

// ReclassifyPromotionalTag replaces a promotional label with a cuisine inferred from
// the restaurant name. Non-promotional categories are returned unchanged.
func ReclassifyPromotionalTag(rawCategory, restaurantName string) string {
	if !IsPromotionalTag(rawCategory) {
		return rawCategory
	}
	if matched, ok := matchRules(repairKeywordRules, restaurantName); ok {
		return matched
	}
	return FallbackRepairCategory
}

func matchRules(rules []keywordRule, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category, true
			}
		}
	}
	return "", false
}
