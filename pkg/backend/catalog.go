package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vitrine-store/gateway/pkg/models"
)

// FindAllProducts fetches one page of the filtered catalog. The query values
// are built by pkg/catalog; empty filters never reach the wire.
func (c *Client) FindAllProducts(ctx context.Context, params url.Values) (*models.CatalogPage, error) {
	var page models.CatalogPage
	path := "/products/find-all"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	if err := c.do(ctx, http.MethodGet, path, "", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
