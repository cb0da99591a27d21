package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/chrisdamba/foodcatalogsim/internal/models"
)

var (
	CategoryHeader   = []string{"name", "city", "restaurants", "products"}
	RestaurantHeader = []string{
		"id", "name", "category", "city", "rating", "delivery_fee", "delivery_time",
		"address", "tags", "is_open", "image_url", "updated_at",
	}
	ProductHeader = []string{
		"id", "name", "description", "price", "original_price", "category", "restaurant_id",
		"restaurant_name", "image_url", "is_available", "nutritional_info", "allergens",
		"tags", "preparation_time", "portion_size", "updated_at",
	}
)

// UnknownCity is used when an address carries no " - City, UF" suffix.
const UnknownCity = "Desconhecida"

type restaurantRow struct {
	ID           int64   `parquet:"name=id, type=INT64"`
	Name         string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Category     string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	City         string  `parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	Rating       float64 `parquet:"name=rating, type=DOUBLE"`
	DeliveryFee  float64 `parquet:"name=delivery_fee, type=DOUBLE"`
	DeliveryTime string  `parquet:"name=delivery_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	Address      string  `parquet:"name=address, type=BYTE_ARRAY, convertedtype=UTF8"`
	Tags         string  `parquet:"name=tags, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsOpen       bool    `parquet:"name=is_open, type=BOOLEAN"`
	ImageURL     string  `parquet:"name=image_url, type=BYTE_ARRAY, convertedtype=UTF8"`
	UpdatedAt    string  `parquet:"name=updated_at, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type productRow struct {
	ID              int64   `parquet:"name=id, type=INT64"`
	Name            string  `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	Description     string  `parquet:"name=description, type=BYTE_ARRAY, convertedtype=UTF8"`
	Price           float64 `parquet:"name=price, type=DOUBLE"`
	OriginalPrice   float64 `parquet:"name=original_price, type=DOUBLE"`
	Category        string  `parquet:"name=category, type=BYTE_ARRAY, convertedtype=UTF8"`
	RestaurantID    int64   `parquet:"name=restaurant_id, type=INT64"`
	RestaurantName  string  `parquet:"name=restaurant_name, type=BYTE_ARRAY, convertedtype=UTF8"`
	ImageURL        string  `parquet:"name=image_url, type=BYTE_ARRAY, convertedtype=UTF8"`
	IsAvailable     bool    `parquet:"name=is_available, type=BOOLEAN"`
	NutritionalInfo string  `parquet:"name=nutritional_info, type=BYTE_ARRAY, convertedtype=UTF8"`
	Allergens       string  `parquet:"name=allergens, type=BYTE_ARRAY, convertedtype=UTF8"`
	Tags            string  `parquet:"name=tags, type=BYTE_ARRAY, convertedtype=UTF8"`
	PreparationTime string  `parquet:"name=preparation_time, type=BYTE_ARRAY, convertedtype=UTF8"`
	PortionSize     string  `parquet:"name=portion_size, type=BYTE_ARRAY, convertedtype=UTF8"`
	UpdatedAt       string  `parquet:"name=updated_at, type=BYTE_ARRAY, convertedtype=UTF8"`
}

type categoryRow struct {
	Name        string `parquet:"name=name, type=BYTE_ARRAY, convertedtype=UTF8"`
	City        string `parquet:"name=city, type=BYTE_ARRAY, convertedtype=UTF8"`
	Restaurants int64  `parquet:"name=restaurants, type=INT64"`
	Products    int64  `parquet:"name=products, type=INT64"`
}

func newRestaurantRow(r *models.Restaurant) restaurantRow {
	return restaurantRow{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category.String(),
		City:         CityOf(r.Address),
		Rating:       r.Rating,
		DeliveryFee:  r.DeliveryFee,
		DeliveryTime: r.DeliveryTime,
		Address:      r.Address,
		Tags:         strings.Join(r.Tags, models.TagSeparator),
		IsOpen:       r.IsOpen,
		ImageURL:     r.ImageURL,
		UpdatedAt:    formatTime(r.UpdatedAt),
	}
}

func (r restaurantRow) record() []string {
	return []string{
		strconv.FormatInt(r.ID, 10), r.Name, r.Category, r.City,
		formatFloat(r.Rating, 1), formatFloat(r.DeliveryFee, 2), r.DeliveryTime,
		r.Address, r.Tags, strconv.FormatBool(r.IsOpen), r.ImageURL, r.UpdatedAt,
	}
}

func newProductRow(p *models.Product) productRow {
	return productRow{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		OriginalPrice:   p.OriginalPrice,
		Category:        p.Category.String(),
		RestaurantID:    p.RestaurantID,
		RestaurantName:  p.RestaurantName,
		ImageURL:        p.ImageURL,
		IsAvailable:     p.IsAvailable,
		NutritionalInfo: p.NutritionalInfo,
		Allergens:       p.Allergens,
		Tags:            strings.Join(p.Tags, models.TagSeparator),
		PreparationTime: p.PreparationTime,
		PortionSize:     p.PortionSize,
		UpdatedAt:       formatTime(p.UpdatedAt),
	}
}

func (p productRow) record() []string {
	return []string{
		strconv.FormatInt(p.ID, 10), p.Name, p.Description,
		formatFloat(p.Price, 2), formatFloat(p.OriginalPrice, 2), p.Category,
		strconv.FormatInt(p.RestaurantID, 10), p.RestaurantName, p.ImageURL,
		strconv.FormatBool(p.IsAvailable), p.NutritionalInfo, p.Allergens, p.Tags,
		p.PreparationTime, p.PortionSize, p.UpdatedAt,
	}
}

func (c categoryRow) record() []string {
	return []string{c.Name, c.City, strconv.FormatInt(c.Restaurants, 10), strconv.FormatInt(c.Products, 10)}
}

// CityOf extracts the city from an address shaped "street, number - City, UF".
func CityOf(address string) string {
	i := strings.LastIndex(address, " - ")
	if i < 0 {
		return UnknownCity
	}
	city := address[i+3:]
	if j := strings.Index(city, ","); j >= 0 {
		city = city[:j]
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return UnknownCity
	}
	return city
}

func formatFloat(v float64, places int) string {
	return strconv.FormatFloat(v, 'f', places, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
