package models

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ReadinessResponse struct {
	Status          string `json:"status"`
	Database        string `json:"database"`
	ExternalService string `json:"external_service"`
}

// OrderCreatedResponse merges the external service's payload with the id of
// the local shadow record.
type OrderCreatedResponse struct {
	ExternalOrder
	LocalOrderID int `json:"local_order_id"`
}
