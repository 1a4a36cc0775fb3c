package models

import "shoply-be/internal/entities"

// ProductListResponse represents the response for GET /products
type ProductListResponse struct {
	Message string              `json:"message"`
	Data    []*entities.Product `json:"data"`
}
