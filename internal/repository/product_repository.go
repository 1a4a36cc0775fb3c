package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"shoply-be/internal/entities"
)

//go:generate mockgen -source=product_repository.go -destination=mocks/mock_product_repository.go -package=mocks

// ProductRepository defines the interface for product database operations
type ProductRepository interface {
	Create(name, description string, price float64, stock int, category, imageURL string) (*entities.Product, error)
	List(search string) ([]*entities.Product, error)
	FindByID(id string) (*entities.Product, error)
	DeleteWithCartItems(id string) (int64, error)
}

type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

// Create inserts a new product into the database
func (r *productRepository) Create(name, description string, price float64, stock int, category, imageURL string) (*entities.Product, error) {
	query := `
		INSERT INTO products (name, description, price, stock, category, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, price, stock, category, image_url, created_at
	`

	var product entities.Product
	err := r.db.QueryRow(query, name, description, price, stock, category, imageURL).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Category,
		&product.ImageURL,
		&product.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// List returns all products ordered newest-first. When search is non-empty
// it filters on name with ILIKE, so matching is case-insensitive.
func (r *productRepository) List(search string) ([]*entities.Product, error) {
	query := `
		SELECT id, name, description, price, stock, category, image_url, created_at
		FROM products
		ORDER BY created_at DESC
	`
	args := []any{}

	if search != "" {
		query = `
			SELECT id, name, description, price, stock, category, image_url, created_at
			FROM products
			WHERE name ILIKE $1
			ORDER BY created_at DESC
		`
		args = append(args, "%"+search+"%")
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*entities.Product
	for rows.Next() {
		var product entities.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.Category,
			&product.ImageURL,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, &product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// FindByID finds a product by ID. Returns (nil, nil) when no product exists.
func (r *productRepository) FindByID(id string) (*entities.Product, error) {
	query := `
		SELECT id, name, description, price, stock, category, image_url, created_at
		FROM products
		WHERE id = $1
	`

	var product entities.Product
	err := r.db.QueryRow(query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Category,
		&product.ImageURL,
		&product.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return &product, nil
}

// DeleteWithCartItems removes every cart item referencing the product and
// then the product itself, inside one transaction. Cart items carry no FK
// on product_id, so the item delete must come first and both must commit
// together. Returns the number of product rows deleted (0 or 1).
func (r *productRepository) DeleteWithCartItems(id string) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM cart_items WHERE product_id = $1`, id); err != nil {
		return 0, fmt.Errorf("failed to delete cart items: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit product deletion: %w", err)
	}

	return rowsAffected, nil
}
