package notify

import (
	"context"

	"voltly/internal/model"
)

// BookingConfirmation carries everything the confirmation message needs
// beyond the draft itself.
type BookingConfirmation struct {
	Draft            *model.BookingDraft
	AppointmentLabel string
	TravelFee        float64
	TotalCost        float64
}

// Sender delivers customer-facing confirmations. Failures are surfaced as
// errors; the booking flow treats them as best-effort.
type Sender interface {
	SendBookingConfirmation(ctx context.Context, confirmation BookingConfirmation) error
}
