package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"order-gateway/models"
)

// OrderStore is the slice of the order repository the orchestrator depends on.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
}

// OrderService coordinates order creation across the local store and the
// external system of record. A shadow row is written if and only if the
// remote creation succeeded.
type OrderService struct {
	users    UserStore
	orders   OrderStore
	external ExternalClient
	logger   zerolog.Logger
}

func NewOrderService(users UserStore, orders OrderStore, external ExternalClient, logger zerolog.Logger) *OrderService {
	return &OrderService{users: users, orders: orders, external: external, logger: logger}
}

// CreateOrder runs validation, the user existence check, the remote create,
// and the local persist, in that order. The user check happens strictly
// before the remote call so an invalid user never creates a remote-side
// orphan. No step retries.
func (s *OrderService) CreateOrder(ctx context.Context, req models.CreateOrderRequest) (*models.OrderCreatedResponse, error) {
	if req.UserID == nil {
		return nil, &models.ValidationError{Field: "user_id"}
	}
	if req.Items == nil {
		return nil, &models.ValidationError{Field: "items"}
	}
	if req.Total == nil {
		return nil, &models.ValidationError{Field: "total"}
	}

	user, err := s.users.FindByID(ctx, *req.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	// The remote create runs to completion or client timeout even if the
	// caller disconnects; aborting it midway could leave a remote order
	// with no local record and no error surfaced to anyone.
	remote, err := s.external.CreateOrder(context.WithoutCancel(ctx), req)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:     *req.UserID,
		Total:      *req.Total,
		Status:     models.OrderStatusCreated,
		ExternalID: remote.ID,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		// The remote order already exists and is not undone; the log line
		// carries the remote id so the drift can be found later.
		s.logger.Error().
			Err(err).
			Int64("external_order_id", remote.ID).
			Int("user_id", order.UserID).
			Msg("remote order created but local record failed")
		return nil, fmt.Errorf("persist order record: %w", err)
	}

	s.logger.Info().
		Int("local_order_id", order.ID).
		Int64("external_order_id", remote.ID).
		Msg("order created")

	return &models.OrderCreatedResponse{ExternalOrder: *remote, LocalOrderID: order.ID}, nil
}

// GetOrdersForUser verifies the user exists, then returns the external
// service's view. The local shadow table is never consulted for listing.
func (s *OrderService) GetOrdersForUser(ctx context.Context, userID int) (*models.UserOrders, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if user == nil {
		return nil, models.ErrUserNotFound
	}

	return s.external.OrdersForUser(ctx, userID)
}

// GetPaymentStatus proxies the external service's payment record for an
// external order id.
func (s *OrderService) GetPaymentStatus(ctx context.Context, orderID int64) (json.RawMessage, error) {
	return s.external.PaymentStatus(ctx, orderID)
}
