package service

import (
	"context"
	"time"

	"voltly/internal/booking"
	"voltly/internal/model"
)

// CartService defines cart and checkout operations.
type CartService interface {
	// AddItem adds one unit of a catalogue product to the cart.
	AddItem(ctx context.Context, productID int) error

	// RemoveItem deletes the cart line for a product. Removing an absent
	// product is a no-op.
	RemoveItem(ctx context.Context, productID int)

	// UpdateQuantity sets a line's quantity. A quantity below 1 removes
	// the line.
	UpdateQuantity(ctx context.Context, productID, quantity int)

	// ToggleExtendedWarranty flips the warranty flag on a line.
	ToggleExtendedWarranty(ctx context.Context, productID int)

	// Clear empties the cart.
	Clear(ctx context.Context)

	// View returns the cart snapshot with all derived totals.
	View(ctx context.Context) *model.CartView

	// ProcessOrder runs the checkout: validates the scheduling data,
	// records the purchase with the CRM (best effort), persists the order
	// summary, clears the cart and returns the summary whose channel
	// tells the caller which downstream page to hand off to.
	ProcessOrder(ctx context.Context, channel model.Channel, installation *model.InstallationInfo, customer *model.CustomerInfo) (*model.OrderSummary, error)
}

// BookingResult is the outcome of a successful booking submission.
type BookingResult struct {
	AppointmentLabel string          `json:"appointment"`
	ServiceLine      model.CartLine  `json:"serviceLine"`
	TravelLine       *model.CartLine `json:"travelLine,omitempty"`
	TravelFee        float64         `json:"travelFee"`
	DistanceKm       float64         `json:"distanceKm"`
	TotalCost        float64         `json:"totalCost"`
	ConfirmationSent bool            `json:"confirmationSent"`
}

// AddressResult is a resolved postal code with its travel estimate.
type AddressResult struct {
	Address    booking.Address `json:"address"`
	DistanceKm float64         `json:"distanceKm"`
	TravelFee  float64         `json:"travelFee"`
}

// BookingService defines the repair booking operations.
type BookingService interface {
	// SubmitBooking runs a full draft through the wizard and, on success,
	// adds the service (and any travel fee) to the cart, records the
	// booking with the CRM and sends the confirmation, both best effort.
	SubmitBooking(ctx context.Context, draft *model.BookingDraft) (*BookingResult, error)

	// ValidateStep checks the fields gating one wizard step.
	ValidateStep(ctx context.Context, step booking.Step, draft *model.BookingDraft) error

	// AvailableSlots returns the bookable time slots for a date.
	AvailableSlots(ctx context.Context, date time.Time) []string

	// ResolveAddress resolves a postal code to an address and travel
	// estimate, cache first.
	ResolveAddress(ctx context.Context, postalCode string) (*AddressResult, error)
}
