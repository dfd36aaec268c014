package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"order-gateway/models"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	query := `
		INSERT INTO orders (user_id, total, status, external_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(
		ctx,
		query,
		order.UserID,
		order.Total,
		order.Status,
		order.ExternalID,
	).Scan(&order.ID, &order.CreatedAt)

	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return nil
}
