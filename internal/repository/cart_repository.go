package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"voltly/internal/cart"
	"voltly/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartStorage implements cart.Storage against PostgreSQL. Each cart is a
// single row keyed by a stable cart key, holding the line set as JSON.
type cartStorage struct {
	pool   *pgxpool.Pool
	key    string
	logger zerolog.Logger
}

// NewCartStorage creates a PostgreSQL-backed cart storage for the given
// cart key.
func NewCartStorage(pool *pgxpool.Pool, key string, logger zerolog.Logger) cart.Storage {
	return &cartStorage{
		pool:   pool,
		key:    key,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// Load reads the stored line set. A missing row or an unreadable line
// document yields an empty cart rather than an error.
func (s *cartStorage) Load(ctx context.Context) ([]model.CartLine, error) {
	query := `
		SELECT lines
		FROM carts
		WHERE key = $1
	`

	var data []byte
	err := s.pool.QueryRow(ctx, query, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart %q: %w", s.key, err)
	}

	var lines []model.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Warn().Err(err).Str("cart_key", s.key).Msg("stored cart is unreadable, treating as empty")
		return nil, nil
	}
	return lines, nil
}

// Save writes the current line set, replacing any stored cart for the key.
func (s *cartStorage) Save(ctx context.Context, lines []model.CartLine) error {
	if lines == nil {
		lines = []model.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart %q: %w", s.key, err)
	}

	query := `
		INSERT INTO carts (key, lines, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET lines = EXCLUDED.lines, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, s.key, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save cart %q: %w", s.key, err)
	}

	s.logger.Debug().Str("cart_key", s.key).Int("lines", len(lines)).Msg("cart saved")
	return nil
}
