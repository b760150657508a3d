package models

// OrderDraft is the checkout form as submitted. Observation is the only
// optional field.
type OrderDraft struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	Zipcode      string `json:"zipcode"`
	City         string `json:"city"`
	State        string `json:"state"`
	Observation  string `json:"observation"`
}

// OrderLine carries product id and quantity only. Prices are never sent; the
// backend reprices every line itself.
type OrderLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// CreateOrderRequest matches the backend's /orders/create contract. Total is
// the client-computed figure, sent for display and audit, not authoritative.
type CreateOrderRequest struct {
	ProductsIds  []OrderLine `json:"productsIds"`
	Phone        string      `json:"phone"`
	Street       string      `json:"street"`
	Number       string      `json:"number"`
	Neighborhood string      `json:"neighborhood"`
	ZipCode      string      `json:"zipCode"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	StateName    string      `json:"stateName"`
	Observation  string      `json:"observation"`
	Total        float64     `json:"total"`
}

type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

type OrderCustomer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type OrderItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Quantity int      `json:"quantity"`
	Gallery  []string `json:"gallery"`
}

// Order is the confirmation-view detail fetched after a successful checkout.
type Order struct {
	ID        string        `json:"id"`
	Items     []OrderItem   `json:"items"`
	Customer  OrderCustomer `json:"customer"`
	Total     float64       `json:"total"`
	CreatedAt string        `json:"createdAt"`
	Status    string        `json:"status"`
}

// OrderDetailResponse wraps the backend's /orders/:id payload.
type OrderDetailResponse struct {
	Order Order `json:"order"`
}
