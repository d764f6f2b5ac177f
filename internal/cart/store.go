package cart

import (
	"context"
	"math"
	"sync"

	"voltly/internal/model"

	"github.com/rs/zerolog"
)

const (
	// ExtendedWarrantyPrice is the flat price per cart line with the
	// extended warranty selected.
	ExtendedWarrantyPrice = 750.0

	// GiveawayEntryThreshold is the spend per giveaway entry.
	GiveawayEntryThreshold = 1000.0
)

// Storage persists a cart's line set between sessions.
type Storage interface {
	// Load reads the stored line set. Corrupt or missing data is treated
	// as an empty cart, not an error.
	Load(ctx context.Context) ([]model.CartLine, error)

	// Save writes the current line set.
	Save(ctx context.Context, lines []model.CartLine) error
}

// Store holds the cart aggregate. All derived totals are recomputed from
// the current line set, never stored. The line set is written to storage
// on every mutation and rehydrated at construction.
type Store struct {
	mu         sync.Mutex
	lines      []model.CartLine
	processing bool
	storage    Storage
	logger     zerolog.Logger
}

// NewStore creates a cart store rehydrated from storage. Unreadable
// stored state degrades to an empty cart.
func NewStore(ctx context.Context, storage Storage, logger zerolog.Logger) *Store {
	s := &Store{
		storage: storage,
		logger:  logger.With().Str("component", "cart").Logger(),
	}

	lines, err := storage.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to load cart from storage, starting empty")
		lines = nil
	}
	s.lines = lines

	return s
}

// AddItem adds a product to the cart. If a line for this product already
// exists its quantity is incremented by 1; otherwise a new line with
// quantity 1 and no warranty is appended.
func (s *Store) AddItem(ctx context.Context, product model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			s.logger.Debug().
				Int("product_id", product.ID).
				Int("quantity", s.lines[i].Quantity).
				Msg("incremented cart line quantity")
			s.persist(ctx)
			return
		}
	}

	s.lines = append(s.lines, model.CartLine{Product: product, Quantity: 1})
	s.logger.Debug().
		Int("product_id", product.ID).
		Str("product_name", product.Name).
		Msg("added cart line")
	s.persist(ctx)
}

// RemoveItem deletes the line for a product. Removing an absent product
// is a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
}

func (s *Store) removeLocked(ctx context.Context, productID int) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.logger.Debug().Int("product_id", productID).Msg("removed cart line")
			s.persist(ctx)
			return
		}
	}
}

// UpdateQuantity sets a line's quantity. A quantity below 1 removes the
// line.
func (s *Store) UpdateQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		s.removeLocked(ctx, productID)
		return
	}

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// ToggleExtendedWarranty flips the warranty flag on a line. Lines for
// per-square-foot products never carry a warranty, so the toggle is a
// no-op for them.
func (s *Store) ToggleExtendedWarranty(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			if !s.lines[i].Product.WarrantyEligible() {
				return
			}
			s.lines[i].ExtendedWarranty = !s.lines[i].ExtendedWarranty
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist(ctx)
}

// Lines returns a copy of the current line set in insertion order.
func (s *Store) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	return lines
}

// ItemCount returns the sum of quantities across all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Subtotal returns the sum of price times quantity across all lines.
func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Store) subtotalLocked() float64 {
	total := 0.0
	for _, line := range s.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// ExtendedWarrantyTotal returns the warranty charge: a flat price per
// line with the warranty selected, independent of quantity.
func (s *Store) ExtendedWarrantyTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warrantyTotalLocked()
}

func (s *Store) warrantyTotalLocked() float64 {
	total := 0.0
	for _, line := range s.lines {
		if line.ExtendedWarranty {
			total += ExtendedWarrantyPrice
		}
	}
	return total
}

// HasExtendedWarranty reports whether any line has the warranty selected.
func (s *Store) HasExtendedWarranty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.ExtendedWarranty {
			return true
		}
	}
	return false
}

// HasFinanceOption reports whether any line's product carries a monthly
// payment plan.
func (s *Store) HasFinanceOption() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, line := range s.lines {
		if line.Product.HasFinancing() {
			return true
		}
	}
	return false
}

// TotalMonthlyPayment returns the sum of monthly payments times quantity
// over lines with a financing plan.
func (s *Store) TotalMonthlyPayment() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, line := range s.lines {
		total += line.Product.MonthlyPayment * float64(line.Quantity)
	}
	return total
}

// GiveawayEntries returns the promotional entry count for the cart, one
// entry per full $1000 of subtotal before tax and warranty.
func (s *Store) GiveawayEntries() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProductEntries(s.subtotalLocked())
}

// ProductEntries returns the giveaway entries earned by a given spend.
func ProductEntries(price float64) int {
	return int(math.Floor(price / GiveawayEntryThreshold))
}

// Processing reports whether an order is currently being processed.
func (s *Store) Processing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processing
}

// SetProcessing flips the processing flag, returning false if it was
// already in the requested state.
func (s *Store) SetProcessing(v bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.processing == v {
		return false
	}
	s.processing = v
	return true
}

// Totals returns the derived amounts used at checkout: subtotal, warranty
// total and giveaway entries, computed under a single lock so they are
// consistent with each other.
func (s *Store) Totals() (subtotal, warranty float64, entries int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	subtotal = s.subtotalLocked()
	warranty = s.warrantyTotalLocked()
	entries = ProductEntries(subtotal)
	return subtotal, warranty, entries
}

// persist writes the line set to storage. Persistence failures are logged
// and swallowed; the in-memory cart remains the source of truth.
func (s *Store) persist(ctx context.Context) {
	lines := make([]model.CartLine, len(s.lines))
	copy(lines, s.lines)
	if err := s.storage.Save(ctx, lines); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save cart to storage")
	}
}
