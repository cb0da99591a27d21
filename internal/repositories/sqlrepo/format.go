package sqlrepo

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

// persistable rows carry trimmed strings and clamped money; the caller's record
// is left untouched apart from the id merged back after saving.

func formatRestaurant(r *models.Restaurant) (models.Restaurant, error) {
	if r == nil || strings.TrimSpace(r.Name) == "" {
		return models.Restaurant{}, &MissingKeyError{Table: models.TableRestaurants, Field: "name"}
	}
	if strings.TrimSpace(r.Category.String()) == "" {
		return models.Restaurant{}, &MissingKeyError{Table: models.TableRestaurants, Field: "category"}
	}

	out := *r
	out.Name = strings.TrimSpace(r.Name)
	out.Category = models.Category(strings.TrimSpace(r.Category.String()))
	out.DeliveryTime = strings.TrimSpace(r.DeliveryTime)
	out.Address = strings.TrimSpace(r.Address)
	out.ImageURL = strings.TrimSpace(r.ImageURL)
	out.Rating = money(r.Rating, 1)
	out.DeliveryFee = money(max(r.DeliveryFee, 0), 2)
	return out, nil
}

func formatProduct(p *models.Product) (models.Product, error) {
	switch {
	case p == nil || strings.TrimSpace(p.Name) == "":
		return models.Product{}, &MissingKeyError{Table: models.TableProducts, Field: "name"}
	case p.RestaurantID <= 0:
		return models.Product{}, &MissingKeyError{Table: models.TableProducts, Field: "restaurant_id"}
	case strings.TrimSpace(p.Category.String()) == "":
		return models.Product{}, &MissingKeyError{Table: models.TableProducts, Field: "category"}
	}

	out := *p
	out.Name = strings.TrimSpace(p.Name)
	out.Category = models.Category(strings.TrimSpace(p.Category.String()))
	out.Description = strings.TrimSpace(p.Description)
	out.ImageURL = strings.TrimSpace(p.ImageURL)
	out.NutritionalInfo = strings.TrimSpace(p.NutritionalInfo)
	out.Allergens = strings.TrimSpace(p.Allergens)
	out.PreparationTime = strings.TrimSpace(p.PreparationTime)
	out.PortionSize = strings.TrimSpace(p.PortionSize)

	out.Price = money(max(p.Price, 0), 2)
	out.OriginalPrice = money(max(p.OriginalPrice, out.Price), 2)
	return out, nil
}

func money(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
