package models

import "time"

type Restaurant struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     Category  `json:"category"`
	Rating       float64   `json:"rating"`
	DeliveryFee  float64   `json:"delivery_fee"`
	DeliveryTime string    `json:"delivery_time"` // "N min"
	Address      string    `json:"address"`
	Tags         []string  `json:"tags"`
	IsOpen       bool      `json:"is_open"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasID reports whether the restaurant carries a persisted identifier.
func (r *Restaurant) HasID() bool {
	return r != nil && r.ID > 0
}
