package models

// UserSummary is the public view of a user. The password hash is never
// part of any response.
type UserSummary struct {
	ID    string `json:"id"` // UUID
	Name  string `json:"name"`
	Email string `json:"email"`
}

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// LoginResponse represents the response after a successful login
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"` // JWT bearer token
	User    UserSummary `json:"user"`
}
