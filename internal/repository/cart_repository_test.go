package repository

import (
	"context"
	"testing"
	"time"

	"voltly/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartStorage_SaveAndLoad(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	storage := NewCartStorage(pool, "default", zerolog.Nop())
	ctx := context.Background()

	lines := []model.CartLine{
		{
			Product: model.Product{
				ID:       201,
				Name:     "Daikin Fit 2 ton Air Conditioner",
				Price:    4800,
				Category: model.CategoryAirConditioners,
			},
			Quantity: 2,
		},
		{
			Product: model.Product{
				ID:       501,
				Name:     "Tesla Powerwall 3",
				Price:    11500,
				Category: model.CategorySmartBattery,
			},
			Quantity:         1,
			ExtendedWarranty: true,
		},
	}

	require.NoError(t, storage.Save(ctx, lines))

	got, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 201, got[0].Product.ID)
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[1].ExtendedWarranty)
}

func TestCartStorage_LoadMissingCart(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	storage := NewCartStorage(pool, "nobody", zerolog.Nop())

	got, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCartStorage_SaveReplacesExisting(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	storage := NewCartStorage(pool, "default", zerolog.Nop())
	ctx := context.Background()

	first := []model.CartLine{{Product: model.Product{ID: 1, Name: "A"}, Quantity: 1}}
	require.NoError(t, storage.Save(ctx, first))

	second := []model.CartLine{
		{Product: model.Product{ID: 2, Name: "B"}, Quantity: 3},
	}
	require.NoError(t, storage.Save(ctx, second))

	got, err := storage.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Product.ID)
	assert.Equal(t, 3, got[0].Quantity)
}

func TestCartStorage_SaveEmptyClears(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	storage := NewCartStorage(pool, "default", zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, storage.Save(ctx, []model.CartLine{{Product: model.Product{ID: 1}, Quantity: 1}}))
	require.NoError(t, storage.Save(ctx, nil))

	got, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCartStorage_KeysAreIsolated(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	a := NewCartStorage(pool, "cart-a", zerolog.Nop())
	b := NewCartStorage(pool, "cart-b", zerolog.Nop())

	require.NoError(t, a.Save(ctx, []model.CartLine{{Product: model.Product{ID: 1}, Quantity: 1}}))

	got, err := b.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCartStorage_CorruptLinesTreatedAsEmpty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	_, err := pool.Exec(ctx,
		`INSERT INTO carts (key, lines, updated_at) VALUES ($1, $2, $3)`,
		"default", `{"not":"a line array"}`, time.Now().UTC())
	require.NoError(t, err)

	storage := NewCartStorage(pool, "default", zerolog.Nop())
	got, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}
