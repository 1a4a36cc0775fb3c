package entities

// Cart is a user's persistent collection of pending purchase line items.
// There is at most one cart per user, enforced by a unique index on user_id.
type Cart struct {
	ID     string `json:"id"`     // UUID
	UserID string `json:"userId"` // UUID
}

// CartItem is a (product, quantity) line entry within a cart. At most one
// row exists per (cart_id, product_id) pair; duplicate adds increment the
// quantity instead of creating a new row.
type CartItem struct {
	ID        string `json:"id"`        // UUID
	CartID    string `json:"cartId"`    // UUID
	ProductID string `json:"productId"` // UUID, weak reference (no FK)
	Quantity  int    `json:"quantity"`
}

// CartItemDetail is a cart line joined with its product columns, as returned
// by GET /cart.
type CartItemDetail struct {
	ID        string  `json:"id"`
	CartID    string  `json:"cartId"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}
