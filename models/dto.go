package models

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateOrderRequest uses pointers for the required numeric fields so the
// orchestrator can tell an absent field from a legitimate zero value.
type CreateOrderRequest struct {
	UserID *int        `json:"user_id"`
	Items  []OrderItem `json:"items"`
	Total  *float64    `json:"total"`
}
