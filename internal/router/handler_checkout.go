package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vitrine-store/gateway/pkg/backend"
	"github.com/vitrine-store/gateway/pkg/checkout"
	"github.com/vitrine-store/gateway/pkg/global"
	"github.com/vitrine-store/gateway/pkg/models"
)

// SubmitOrder validates the shipping form and creates the order from the
// current cart. Validation failures come back as field-level errors before
// any backend call; a backend failure is a generic, retryable error.
func SubmitOrder(c *gin.Context) {
	sess := sessionFrom(c)

	var draft models.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	stateList := statesSvc.List(c.Request.Context())

	orderID, err := checkoutSvc.Submit(c.Request.Context(), sess, draft, stateList)
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("Order validation failed", validationErrors(verr)))
			return
		}
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to create order. Please try again.", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]string{"orderId": orderID}))
}

func validationErrors(verr *checkout.ValidationError) []global.ValidationError {
	switch verr.Code {
	case checkout.CodeMissingFields:
		out := make([]global.ValidationError, len(verr.Fields))
		for i, field := range verr.Fields {
			out[i] = global.ValidationError{Field: field, Message: "This field is required", Code: verr.Code}
		}
		return out
	case checkout.CodeInvalidZipFormat:
		return []global.ValidationError{
			{Field: "zipcode", Message: "Zipcode must match the 00000-000 format", Code: verr.Code},
		}
	case checkout.CodeEmptyCart:
		return []global.ValidationError{
			{Field: "cart", Message: "Cart is empty", Code: verr.Code},
		}
	}
	return []global.ValidationError{{Field: "request", Message: verr.Error(), Code: verr.Code}}
}

// GetOrderDetails proxies the order lookup for the confirmation view.
func GetOrderDetails(c *gin.Context) {
	order, err := apiClient.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		var serr *backend.StatusError
		if errors.As(err, &serr) && serr.Code == http.StatusNotFound {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Order not found", nil))
			return
		}
		c.JSON(http.StatusBadGateway, global.ErrorResponse("Failed to load order details", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{"order": order}))
}

// GetStates serves the region reference list, degrading to the built-in
// fallback when the upstream source is down.
func GetStates(c *gin.Context) {
	stateList := statesSvc.List(c.Request.Context())
	c.JSON(http.StatusOK, models.StatesResponse{Success: true, States: stateList})
}
