package models

import "time"

type Product struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	OriginalPrice   float64   `json:"original_price"`
	Category        Category  `json:"category"`
	RestaurantID    int64     `json:"restaurant_id"`
	RestaurantName  string    `json:"restaurant_name,omitempty"` // only set on load
	ImageURL        string    `json:"image_url"`
	IsAvailable     bool      `json:"is_available"`
	NutritionalInfo string    `json:"nutritional_info"`
	Allergens       string    `json:"allergens"`
	Tags            []string  `json:"tags"`
	PreparationTime string    `json:"preparation_time"` // "N min"
	PortionSize     string    `json:"portion_size"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasDiscount reports whether the product is sold below its original price.
func (p *Product) HasDiscount() bool {
	return p.OriginalPrice > p.Price
}
