package models

import "time"

const OrderStatusCreated = "created"

// Order is the local shadow record for an order whose authoritative state
// lives in the external service. ExternalID references the identifier the
// external service assigned; a row exists only when the remote creation
// succeeded.
type Order struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	ExternalID int64     `json:"external_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// ExternalOrder mirrors the order payload the external service returns.
type ExternalOrder struct {
	ID        int64       `json:"id"`
	UserID    int         `json:"user_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt string      `json:"created_at,omitempty"`
}

type OrderItem struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type UserOrders struct {
	Orders []ExternalOrder `json:"orders"`
}
