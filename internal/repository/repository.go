package repository

import (
	"context"

	"voltly/internal/model"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order summary persistence.
// Summaries are written once at checkout and read back by the finance or
// payment flow.
type OrderRepository interface {
	// Save persists an order summary.
	Save(ctx context.Context, order *model.OrderSummary) error

	// GetByID retrieves an order summary by its ID. A missing order
	// returns (nil, nil).
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderSummary, error)

	// GetLatest retrieves the most recently placed order summary, or
	// (nil, nil) when no orders exist.
	GetLatest(ctx context.Context) (*model.OrderSummary, error)
}
