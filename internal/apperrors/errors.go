package apperrors

import "net/http"

// Error is a typed application error that services return to controllers.
// Code is a stable machine-readable identifier; Message is safe to return
// to API clients as-is.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a typed application error.
func New(code string, status int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Status:  status,
	}
}

// Validation creates a VALIDATION error with a request-specific message.
func Validation(message string) *Error {
	return New("VALIDATION", http.StatusBadRequest, message)
}

var (
	// ErrEmailInUse is returned when registering with an email that already exists.
	ErrEmailInUse = New("EMAIL_IN_USE", http.StatusBadRequest, "Email already in use")

	// ErrInvalidCredentials is intentionally identical for unknown email and
	// wrong password so login failures do not reveal which one it was.
	ErrInvalidCredentials = New("INVALID_CREDENTIALS", http.StatusBadRequest, "Invalid email or password")

	ErrTokenRequired = New("TOKEN_REQUIRED", http.StatusUnauthorized, "Token is required")
	ErrTokenInvalid  = New("TOKEN_INVALID", http.StatusForbidden, "Invalid token")

	ErrProductNotFound  = New("PRODUCT_NOT_FOUND", http.StatusNotFound, "Product not found")
	ErrCartNotFound     = New("CART_NOT_FOUND", http.StatusNotFound, "Cart not found")
	ErrCartItemNotFound = New("CART_ITEM_NOT_FOUND", http.StatusNotFound, "Product not in cart")
)
