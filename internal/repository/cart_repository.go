package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"shoply-be/internal/entities"
)

//go:generate mockgen -source=cart_repository.go -destination=mocks/mock_cart_repository.go -package=mocks

// CartRepository defines the interface for cart database operations
type CartRepository interface {
	FindOrCreateByUserID(userID string) (*entities.Cart, error)
	FindByUserID(userID string) (*entities.Cart, error)
	UpsertItem(cartID, productID string, quantity int) (*entities.CartItem, error)
	ListItems(cartID string) ([]*entities.CartItemDetail, error)
	DeleteItem(itemID, cartID string) (int64, error)
}

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *sql.DB) CartRepository {
	return &cartRepository{db: db}
}

// FindOrCreateByUserID returns the user's cart, creating it if absent. The
// unique index on user_id makes this a single atomic statement, so two
// concurrent first adds cannot create two carts.
func (r *cartRepository) FindOrCreateByUserID(userID string) (*entities.Cart, error) {
	query := `
		INSERT INTO carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id
	`

	var cart entities.Cart
	err := r.db.QueryRow(query, userID).Scan(&cart.ID, &cart.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create cart: %w", err)
	}

	return &cart, nil
}

// FindByUserID finds a user's cart. Returns (nil, nil) when the user has
// no cart yet.
func (r *cartRepository) FindByUserID(userID string) (*entities.Cart, error) {
	query := `SELECT id, user_id FROM carts WHERE user_id = $1`

	var cart entities.Cart
	err := r.db.QueryRow(query, userID).Scan(&cart.ID, &cart.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}

	return &cart, nil
}

// UpsertItem inserts a cart item or, when a row for (cart_id, product_id)
// already exists, increments its quantity by the given amount. One atomic
// statement, so concurrent adds of the same product cannot duplicate rows.
func (r *cartRepository) UpsertItem(cartID, productID string, quantity int) (*entities.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, cart_id, product_id, quantity
	`

	var item entities.CartItem
	err := r.db.QueryRow(query, cartID, productID, quantity).Scan(
		&item.ID,
		&item.CartID,
		&item.ProductID,
		&item.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart item: %w", err)
	}

	return &item, nil
}

// ListItems returns all items in a cart joined with their product details.
func (r *cartRepository) ListItems(cartID string) ([]*entities.CartItemDetail, error) {
	query := `
		SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity,
		       p.id, p.name, p.description, p.price, p.stock, p.category, p.image_url, p.created_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(query, cartID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	var items []*entities.CartItemDetail
	for rows.Next() {
		var item entities.CartItemDetail
		err := rows.Scan(
			&item.ID,
			&item.CartID,
			&item.ProductID,
			&item.Quantity,
			&item.Product.ID,
			&item.Product.Name,
			&item.Product.Description,
			&item.Product.Price,
			&item.Product.Stock,
			&item.Product.Category,
			&item.Product.ImageURL,
			&item.Product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	return items, nil
}

// DeleteItem removes a cart item by its own id, scoped to the given cart so
// one user can never remove another user's item. Returns rows affected.
func (r *cartRepository) DeleteItem(itemID, cartID string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM cart_items WHERE id = $1 AND cart_id = $2`, itemID, cartID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cart item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
