package models

import "shoply-be/internal/entities"

// CartResponse represents the response for GET /cart. Data is an empty
// slice when the user has no cart yet.
type CartResponse struct {
	Message string                     `json:"message"`
	Data    []*entities.CartItemDetail `json:"data"`
}

// MessageResponse is the plain acknowledgement body shared by mutation
// endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
