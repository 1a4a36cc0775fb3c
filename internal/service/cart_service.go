package service

import (
	"fmt"

	"shoply-be/internal/apperrors"
	"shoply-be/internal/entities"
	"shoply-be/internal/models"
	"shoply-be/internal/repository"
)

// CartService defines the interface for shopping cart business logic
type CartService interface {
	AddToCart(userID string, req *models.AddToCartRequest) (*entities.CartItem, error)
	GetCart(userID string) ([]*entities.CartItemDetail, error)
	RemoveFromCart(userID, cartItemID string) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new cart service
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCart lazily creates the user's cart and adds the product to it.
// Adding a product already in the cart increments the existing line's
// quantity instead of creating a second row.
func (s *cartService) AddToCart(userID string, req *models.AddToCartRequest) (*entities.CartItem, error) {
	if req.Quantity <= 0 {
		return nil, apperrors.Validation("Quantity must be greater than zero")
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate product: %w", err)
	}
	if product == nil {
		return nil, apperrors.ErrProductNotFound
	}

	cart, err := s.cartRepo.FindOrCreateByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	item, err := s.cartRepo.UpsertItem(cart.ID, req.ProductID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}

	return item, nil
}

// GetCart returns the user's cart items joined with product details, or an
// empty slice when the user has no cart yet.
func (s *cartService) GetCart(userID string) ([]*entities.CartItemDetail, error) {
	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cart: %w", err)
	}
	if cart == nil {
		return []*entities.CartItemDetail{}, nil
	}

	items, err := s.cartRepo.ListItems(cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	if items == nil {
		items = []*entities.CartItemDetail{}
	}

	return items, nil
}

// RemoveFromCart deletes a cart line by its own id, not the product id;
// the route parameter name is historical. The delete is scoped to the
// requesting user's cart, so ids from other carts come back as not found.
func (s *cartService) RemoveFromCart(userID, cartItemID string) error {
	cart, err := s.cartRepo.FindByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to find cart: %w", err)
	}
	if cart == nil {
		return apperrors.ErrCartNotFound
	}

	rowsAffected, err := s.cartRepo.DeleteItem(cartItemID, cart.ID)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.ErrCartItemNotFound
	}

	return nil
}
