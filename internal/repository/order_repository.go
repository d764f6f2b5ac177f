package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"voltly/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using
// PostgreSQL. The full summary is stored as a JSON document alongside a
// few extracted columns for querying.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Save persists an order summary.
func (r *orderRepository) Save(ctx context.Context, order *model.OrderSummary) error {
	summary, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode order summary: %w", err)
	}

	query := `
		INSERT INTO orders (id, channel, grand_total, order_date, summary)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = r.pool.Exec(ctx, query,
		order.ID, string(order.Channel), order.GrandTotal, order.OrderDate, summary)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to save order")
		return fmt.Errorf("failed to save order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("channel", string(order.Channel)).
		Msg("order saved successfully")

	return nil
}

// GetByID retrieves an order summary by its ID.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderSummary, error) {
	query := `
		SELECT summary
		FROM orders
		WHERE id = $1
	`

	var summary []byte
	err := r.pool.QueryRow(ctx, query, id).Scan(&summary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return decodeSummary(summary)
}

// GetLatest retrieves the most recently placed order summary.
func (r *orderRepository) GetLatest(ctx context.Context) (*model.OrderSummary, error) {
	query := `
		SELECT summary
		FROM orders
		ORDER BY order_date DESC
		LIMIT 1
	`

	var summary []byte
	err := r.pool.QueryRow(ctx, query).Scan(&summary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query latest order")
		return nil, fmt.Errorf("failed to query latest order: %w", err)
	}

	return decodeSummary(summary)
}

func decodeSummary(data []byte) (*model.OrderSummary, error) {
	var order model.OrderSummary
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order summary: %w", err)
	}
	return &order, nil
}
