package backend

import (
	"context"
	"net/http"

	"github.com/vitrine-store/gateway/pkg/models"
)

// CartList fetches the full cart for the session behind the bearer token.
func (c *Client) CartList(ctx context.Context, bearer string) (*models.CartResponse, error) {
	var cr models.CartResponse
	if err := c.do(ctx, http.MethodGet, "/cart/list", bearer, nil, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// CartAdd sends the product id plus its snapshot. The backend decides the
// resulting quantity (incrementing an existing line, enforcing stock) and
// returns the whole new item list.
func (c *Client) CartAdd(ctx context.Context, bearer string, product models.Product) (*models.CartResponse, error) {
	var cr models.CartResponse
	req := models.AddToCartRequest{ProductID: product.ID, Product: product}
	if err := c.do(ctx, http.MethodPost, "/cart/add", bearer, req, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// CartDelete removes one line and returns the new item list.
func (c *Client) CartDelete(ctx context.Context, bearer, productID string) (*models.CartResponse, error) {
	var cr models.CartResponse
	req := models.RemoveFromCartRequest{ProductID: productID}
	if err := c.do(ctx, http.MethodDelete, "/cart/delete-product", bearer, req, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// CartUpdateQuantity sets an absolute quantity for one line.
func (c *Client) CartUpdateQuantity(ctx context.Context, bearer, productID string, quantity int) (*models.CartResponse, error) {
	var cr models.CartResponse
	req := models.UpdateQuantityRequest{ProductID: productID, Quantity: quantity}
	if err := c.do(ctx, http.MethodPut, "/cart/update-quantity", bearer, req, &cr); err != nil {
		return nil, err
	}
	return &cr, nil
}

// CartClear wipes the session's cart.
func (c *Client) CartClear(ctx context.Context, bearer string) error {
	return c.do(ctx, http.MethodPost, "/cart/clear", bearer, nil, nil)
}
