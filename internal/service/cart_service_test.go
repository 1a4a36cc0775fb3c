package service

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"shoply-be/internal/apperrors"
	"shoply-be/internal/entities"
	"shoply-be/internal/models"
	"shoply-be/internal/repository/mocks"
)

func newCartServiceForTest(t *testing.T) (*mocks.MockCartRepository, *mocks.MockProductRepository, CartService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cartRepo := mocks.NewMockCartRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)
	return cartRepo, productRepo, NewCartService(cartRepo, productRepo)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	_, _, svc := newCartServiceForTest(t)

	for _, quantity := range []int{0, -3} {
		_, err := svc.AddToCart("user-1", &models.AddToCartRequest{
			ProductID: "prod-1",
			Quantity:  quantity,
		})
		var appErr *apperrors.Error
		if !errors.As(err, &appErr) || appErr.Code != "VALIDATION" {
			t.Errorf("quantity %d: expected VALIDATION error, got %v", quantity, err)
		}
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	_, productRepo, svc := newCartServiceForTest(t)

	productRepo.EXPECT().FindByID("missing").Return(nil, nil)

	_, err := svc.AddToCart("user-1", &models.AddToCartRequest{
		ProductID: "missing",
		Quantity:  1,
	})
	if !errors.Is(err, apperrors.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddToCartCreatesCartAndUpsertsItem(t *testing.T) {
	cartRepo, productRepo, svc := newCartServiceForTest(t)

	productRepo.EXPECT().FindByID("prod-1").Return(&entities.Product{ID: "prod-1"}, nil)
	cartRepo.EXPECT().FindOrCreateByUserID("user-1").Return(&entities.Cart{ID: "cart-1", UserID: "user-1"}, nil)
	cartRepo.EXPECT().
		UpsertItem("cart-1", "prod-1", 3).
		Return(&entities.CartItem{ID: "item-1", CartID: "cart-1", ProductID: "prod-1", Quantity: 5}, nil)

	item, err := svc.AddToCart("user-1", &models.AddToCartRequest{
		ProductID: "prod-1",
		Quantity:  3,
	})
	if err != nil {
		t.Fatalf("AddToCart returned error: %v", err)
	}
	// The upsert folds the add into the existing row, so the returned line
	// carries the summed quantity.
	if item.Quantity != 5 {
		t.Errorf("expected summed quantity 5, got %d", item.Quantity)
	}
}

func TestGetCartWithoutCartReturnsEmptyList(t *testing.T) {
	cartRepo, _, svc := newCartServiceForTest(t)

	cartRepo.EXPECT().FindByUserID("user-1").Return(nil, nil)

	items, err := svc.GetCart("user-1")
	if err != nil {
		t.Fatalf("GetCart returned error: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
}

func TestGetCartReturnsJoinedItems(t *testing.T) {
	cartRepo, _, svc := newCartServiceForTest(t)

	cartRepo.EXPECT().FindByUserID("user-1").Return(&entities.Cart{ID: "cart-1", UserID: "user-1"}, nil)
	cartRepo.EXPECT().ListItems("cart-1").Return([]*entities.CartItemDetail{
		{
			ID:        "item-1",
			CartID:    "cart-1",
			ProductID: "prod-1",
			Quantity:  2,
			Product:   entities.Product{ID: "prod-1", Name: "Keyboard"},
		},
	}, nil)

	items, err := svc.GetCart("user-1")
	if err != nil {
		t.Fatalf("GetCart returned error: %v", err)
	}
	if len(items) != 1 || items[0].Product.Name != "Keyboard" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestRemoveFromCartWithoutCart(t *testing.T) {
	cartRepo, _, svc := newCartServiceForTest(t)

	cartRepo.EXPECT().FindByUserID("user-1").Return(nil, nil)

	err := svc.RemoveFromCart("user-1", "item-1")
	if !errors.Is(err, apperrors.ErrCartNotFound) {
		t.Errorf("expected ErrCartNotFound, got %v", err)
	}
}

func TestRemoveFromCartForeignItemID(t *testing.T) {
	cartRepo, _, svc := newCartServiceForTest(t)

	// The item id exists, but in another user's cart: the scoped delete
	// touches zero rows and the caller sees not found.
	cartRepo.EXPECT().FindByUserID("user-1").Return(&entities.Cart{ID: "cart-1", UserID: "user-1"}, nil)
	cartRepo.EXPECT().DeleteItem("foreign-item", "cart-1").Return(int64(0), nil)

	err := svc.RemoveFromCart("user-1", "foreign-item")
	if !errors.Is(err, apperrors.ErrCartItemNotFound) {
		t.Errorf("expected ErrCartItemNotFound, got %v", err)
	}
}

func TestRemoveFromCartSuccess(t *testing.T) {
	cartRepo, _, svc := newCartServiceForTest(t)

	cartRepo.EXPECT().FindByUserID("user-1").Return(&entities.Cart{ID: "cart-1", UserID: "user-1"}, nil)
	cartRepo.EXPECT().DeleteItem("item-1", "cart-1").Return(int64(1), nil)

	if err := svc.RemoveFromCart("user-1", "item-1"); err != nil {
		t.Errorf("RemoveFromCart returned error: %v", err)
	}
}
