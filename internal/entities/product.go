package entities

import "time"

// Product represents a catalog product entity in the database
type Product struct {
	ID          string    `json:"id"` // UUID
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl"` // Empty when no image was uploaded
	CreatedAt   time.Time `json:"createdAt"`
}
