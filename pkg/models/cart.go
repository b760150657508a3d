package models

// CartItem is a product snapshot plus its quantity. The backend guarantees at
// most one line per product id and a quantity of at least 1; a line whose
// quantity drops to zero is removed, never kept at zero.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartResponse is what every cart endpoint returns: the full, authoritative
// item list after the operation.
type CartResponse struct {
	Items []CartItem `json:"items"`
}

type AddToCartRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Product   Product `json:"product"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}
