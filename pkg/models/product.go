package models

// ProductDetails carries the descriptive attributes the catalog filters on.
type ProductDetails struct {
	Adjective string `json:"adjective"`
	Material  string `json:"material"`
}

// Product is an immutable snapshot owned by the commerce backend. Prices and
// discount fractions arrive as decimal strings and are kept that way; numeric
// interpretation happens only where a total is computed.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Gallery       []string       `json:"gallery"`
	Description   string         `json:"description"`
	Price         string         `json:"price"`
	HasDiscount   bool           `json:"hasDiscount"`
	DiscountValue string         `json:"discountValue"`
	Details       ProductDetails `json:"details"`
}

// Pagination mirrors the backend's page metadata for /products/find-all.
type Pagination struct {
	CurrentPage   int  `json:"currentPage"`
	TotalPages    int  `json:"totalPages"`
	TotalProducts int  `json:"totalProducts"`
	HasNextPage   bool `json:"hasNextPage"`
	HasPrevPage   bool `json:"hasPrevPage"`
	Limit         int  `json:"limit"`
}

type CatalogFilters struct {
	Materials []string `json:"materials"`
}

// CatalogPage is one page of the filtered catalog plus facet metadata.
type CatalogPage struct {
	Products   []Product      `json:"products"`
	Pagination Pagination     `json:"pagination"`
	Filters    CatalogFilters `json:"filters"`
}
