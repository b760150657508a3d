package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-store/gateway/pkg/cart"
	"github.com/vitrine-store/gateway/pkg/global"
	"github.com/vitrine-store/gateway/pkg/models"
)

func cartPayload(items []models.CartItem) map[string]interface{} {
	return map[string]interface{}{
		"items": items,
		"total": cart.Total(items),
	}
}

// GetCart refreshes the cart from the backend and returns it. A backend
// failure degrades to the last known state rather than erroring the view.
func GetCart(c *gin.Context) {
	sess := sessionFrom(c)
	items := cartStore.Load(c.Request.Context(), sess)
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(items)))
}

// AddCartItem is the one cart mutation that fails loudly, so the storefront
// can tell the shopper the product was not added.
func AddCartItem(c *gin.Context) {
	sess := sessionFrom(c)

	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	product := req.Product
	if product.ID == "" {
		product.ID = req.ProductID
	}

	items, err := cartStore.Add(c.Request.Context(), sess, product)
	if err != nil {
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to add product to cart", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(items)))
}

// UpdateCartItem sets an absolute quantity; zero or less removes the line.
// Backend failures are swallowed here and the unchanged list comes back.
func UpdateCartItem(c *gin.Context) {
	sess := sessionFrom(c)

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "quantity", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	items := cartStore.UpdateQuantity(c.Request.Context(), sess, c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(items)))
}

func RemoveCartItem(c *gin.Context) {
	sess := sessionFrom(c)
	items := cartStore.Remove(c.Request.Context(), sess, c.Param("id"))
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(items)))
}

func ClearCart(c *gin.Context) {
	sess := sessionFrom(c)
	items := cartStore.Clear(c.Request.Context(), sess)
	c.JSON(http.StatusOK, global.SuccessResponse(cartPayload(items)))
}
