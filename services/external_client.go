package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"order-gateway/models"
)

// ExternalClient is the HTTP contract of the external order/payment service.
// It is the system of record for orders; this process only keeps shadow
// records.
type ExternalClient interface {
	Health(ctx context.Context) error
	CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.ExternalOrder, error)
	OrdersForUser(ctx context.Context, userID int) (*models.UserOrders, error)
	PaymentStatus(ctx context.Context, orderID int64) (json.RawMessage, error)
}

type externalClient struct {
	baseURL    string
	healthHTTP *http.Client
	dataHTTP   *http.Client
}

// NewExternalClient builds a client with separate timeout budgets: a short
// one for the liveness probe and a longer one for data-path calls. Neither
// path retries.
func NewExternalClient(baseURL string, healthTimeout, requestTimeout time.Duration) ExternalClient {
	return &externalClient{
		baseURL:    baseURL,
		healthHTTP: &http.Client{Timeout: healthTimeout},
		dataHTTP:   &http.Client{Timeout: requestTimeout},
	}
}

func (c *externalClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.healthHTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrExternalUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &models.UpstreamError{Status: resp.StatusCode}
	}

	return nil
}

func (c *externalClient) CreateOrder(ctx context.Context, order models.CreateOrderRequest) (*models.ExternalOrder, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.dataHTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, &models.UpstreamError{Status: resp.StatusCode}
	}

	created := &models.ExternalOrder{}
	if err := json.NewDecoder(resp.Body).Decode(created); err != nil {
		return nil, fmt.Errorf("decode order response: %w", err)
	}

	return created, nil
}

func (c *externalClient) OrdersForUser(ctx context.Context, userID int) (*models.UserOrders, error) {
	url := fmt.Sprintf("%s/orders/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build orders request: %w", err)
	}

	resp, err := c.dataHTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		orders := &models.UserOrders{}
		if err := json.NewDecoder(resp.Body).Decode(orders); err != nil {
			return nil, fmt.Errorf("decode orders response: %w", err)
		}
		return orders, nil
	case http.StatusNotFound:
		// The external service answers 404 for users it has no orders for.
		return &models.UserOrders{Orders: []models.ExternalOrder{}}, nil
	default:
		return nil, &models.UpstreamError{Status: resp.StatusCode}
	}
}

func (c *externalClient) PaymentStatus(ctx context.Context, orderID int64) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/payments/%d", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}

	resp, err := c.dataHTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrExternalUnavailable, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var payment json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
			return nil, fmt.Errorf("decode payment response: %w", err)
		}
		return payment, nil
	case http.StatusNotFound:
		return nil, models.ErrPaymentNotFound
	default:
		return nil, &models.UpstreamError{Status: resp.StatusCode}
	}
}
