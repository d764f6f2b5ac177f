package integration

import (
	"context"
	"testing"

	"voltly/internal/cart"
	"voltly/internal/catalog"
	"voltly/internal/model"
	"voltly/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartPersistence_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()
	cat := catalog.New()

	t.Run("cart state survives a store restart", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		storage := repository.NewCartStorage(testDB.Pool, "restart-test", logger)
		store := cart.NewStore(ctx, storage, logger)

		product, ok := cat.ByID(101)
		require.True(t, ok)
		store.AddItem(ctx, product)
		store.AddItem(ctx, product)
		store.ToggleExtendedWarranty(ctx, 101)

		// A fresh store over the same storage rehydrates the lines
		reloaded := cart.NewStore(ctx, repository.NewCartStorage(testDB.Pool, "restart-test", logger), logger)
		lines := reloaded.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, 101, lines[0].Product.ID)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.True(t, lines[0].ExtendedWarranty)
	})

	t.Run("carts are isolated by key", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		product, ok := cat.ByID(501)
		require.True(t, ok)

		storeA := cart.NewStore(ctx, repository.NewCartStorage(testDB.Pool, "tenant-a", logger), logger)
		storeA.AddItem(ctx, product)

		storeB := cart.NewStore(ctx, repository.NewCartStorage(testDB.Pool, "tenant-b", logger), logger)
		assert.Empty(t, storeB.Lines())
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()
	repo := repository.NewOrderRepository(testDB.Pool, logger)

	t.Run("saved order summaries round trip intact", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		order := &model.OrderSummary{
			ID: uuid.New(),
			Lines: []model.CartLine{
				{Product: model.Product{ID: 101, Name: "Goodman 2 Ton 14.3 SEER2 Heat Pump", Price: 5499}, Quantity: 1},
			},
			Subtotal:   5499,
			TaxAmount:  714.87,
			GrandTotal: 6213.87,
			Channel:    model.ChannelPayment,
			Customer: &model.CustomerInfo{
				Name:  "Jordan Reyes",
				Email: "jordan@example.com",
				Phone: "416-555-0188",
			},
		}

		require.NoError(t, repo.Save(ctx, order))

		got, err := repo.GetByID(ctx, order.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, order.ID, got.ID)
		assert.Equal(t, model.ChannelPayment, got.Channel)
		require.NotNil(t, got.Customer)
		assert.Equal(t, "Jordan Reyes", got.Customer.Name)
		require.Len(t, got.Lines, 1)
		assert.Equal(t, 101, got.Lines[0].Product.ID)
	})
}
