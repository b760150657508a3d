package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vitrine-store/gateway/pkg/models"
)

// CreateOrder submits the order and returns the backend-issued identifier.
func (c *Client) CreateOrder(ctx context.Context, bearer string, req models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	var resp models.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders/create", bearer, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetOrder fetches order detail for the confirmation view. No auth: the
// backend exposes order lookup by id publicly.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var resp models.OrderDetailResponse
	if err := c.do(ctx, http.MethodGet, "/orders/"+url.PathEscape(orderID), "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}
