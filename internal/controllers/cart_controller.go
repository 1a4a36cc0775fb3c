package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shoply-be/internal/apperrors"
	"shoply-be/internal/models"
	"shoply-be/internal/service"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

// Add handles POST /cart/add
func (cc *CartController) Add(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindingError(c, err)
		return
	}

	if _, err := cc.cartService.AddToCart(userID, &req); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product added to cart"})
}

// Get handles GET /cart
func (cc *CartController) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := cc.cartService.GetCart(userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CartResponse{
		Message: "Cart fetched",
		Data:    items,
	})
}

// Remove handles DELETE /cart/remove/:productId. The path parameter is the
// cart item's own id, not the product id; existing clients depend on that.
func (cc *CartController) Remove(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cartItemID := c.Param("productId")

	if err := cc.cartService.RemoveFromCart(userID, cartItemID); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Product removed from cart"})
}

// currentUserID reads the user id placed in the context by the auth
// middleware.
func currentUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		writeError(c, apperrors.ErrTokenRequired)
		return "", false
	}
	return userIDVal.(string), true
}
