package service

import (
	"context"
	"fmt"
	"time"

	"voltly/internal/cart"
	"voltly/internal/catalog"
	"voltly/internal/crm"
	"voltly/internal/model"
	"voltly/internal/pricing"
	"voltly/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// checkoutProvince is the province all storefront orders are taxed in.
const checkoutProvince = pricing.Ontario

// cartService implements CartService.
type cartService struct {
	store     *cart.Store
	catalog   *catalog.Catalog
	crm       crm.Client
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewCartService creates a new cart service. The CRM client may be nil
// when the integration is not configured.
func NewCartService(
	store *cart.Store,
	cat *catalog.Catalog,
	crmClient crm.Client,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		store:     store,
		catalog:   cat,
		crm:       crmClient,
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "cart").Logger(),
	}
}

// AddItem adds one unit of a catalogue product to the cart.
func (s *cartService) AddItem(ctx context.Context, productID int) error {
	product, ok := s.catalog.ByID(productID)
	if !ok {
		s.logger.Warn().Int("product_id", productID).Msg("product not found")
		return model.ErrProductNotFound
	}

	s.store.AddItem(ctx, product)
	return nil
}

// RemoveItem deletes the cart line for a product.
func (s *cartService) RemoveItem(ctx context.Context, productID int) {
	s.store.RemoveItem(ctx, productID)
}

// UpdateQuantity sets a line's quantity.
func (s *cartService) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.store.UpdateQuantity(ctx, productID, quantity)
}

// ToggleExtendedWarranty flips the warranty flag on a line.
func (s *cartService) ToggleExtendedWarranty(ctx context.Context, productID int) {
	s.store.ToggleExtendedWarranty(ctx, productID)
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) {
	s.store.Clear(ctx)
}

// View returns the cart snapshot with all derived totals.
func (s *cartService) View(ctx context.Context) *model.CartView {
	lines := s.store.Lines()
	subtotal, warranty, entries := s.store.Totals()

	return &model.CartView{
		Lines:                 lines,
		ItemCount:             s.store.ItemCount(),
		Subtotal:              subtotal,
		ExtendedWarrantyTotal: warranty,
		HasFinanceOption:      s.store.HasFinanceOption(),
		TotalMonthlyPayment:   s.store.TotalMonthlyPayment(),
		GiveawayEntries:       entries,
		Processing:            s.store.Processing(),
	}
}

// ProcessOrder runs the checkout flow.
func (s *cartService) ProcessOrder(
	ctx context.Context,
	channel model.Channel,
	installation *model.InstallationInfo,
	customer *model.CustomerInfo,
) (*model.OrderSummary, error) {
	if !channel.Valid() {
		return nil, model.ErrInvalidChannel
	}
	if !installation.Complete() {
		s.logger.Warn().Msg("checkout blocked, installation scheduling incomplete")
		return nil, model.ErrIncompleteInstallation
	}

	if !s.store.SetProcessing(true) {
		return nil, model.NewDomainError(model.ErrCodeValidationFailed, "an order is already being processed")
	}
	defer s.store.SetProcessing(false)

	lines := s.store.Lines()
	if len(lines) == 0 {
		return nil, model.NewDomainError(model.ErrCodeValidationFailed, "cart is empty")
	}

	subtotal, warranty, entries := s.store.Totals()
	taxAmount := pricing.TaxAmount(subtotal+warranty, checkoutProvince)

	order := &model.OrderSummary{
		ID:                    uuid.New(),
		Lines:                 lines,
		Subtotal:              subtotal,
		ExtendedWarrantyPrice: warranty,
		TaxAmount:             taxAmount,
		GrandTotal:            subtotal + warranty + taxAmount,
		GiveawayEntries:       entries,
		Channel:               channel,
		OrderDate:             time.Now().UTC(),
		Installation:          installation,
		Customer:              customer,
	}

	// The CRM record is a non-critical side channel; checkout proceeds
	// regardless of its outcome.
	if s.crm != nil {
		if _, err := s.crm.RecordPurchase(ctx, order); err != nil {
			s.logger.Warn().Err(err).Str("order_id", order.ID.String()).Msg("failed to record purchase in CRM")
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to persist order summary")
		return nil, fmt.Errorf("failed to process order: %w", err)
	}

	s.store.Clear(ctx)

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("channel", string(channel)).
		Float64("grand_total", order.GrandTotal).
		Int("giveaway_entries", entries).
		Msg("order processed")

	return order, nil
}
