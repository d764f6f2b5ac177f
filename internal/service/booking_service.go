package service

import (
	"context"
	"time"

	"voltly/internal/booking"
	"voltly/internal/cart"
	"voltly/internal/crm"
	"voltly/internal/model"
	"voltly/internal/notify"

	"github.com/rs/zerolog"
)

// bookingService implements BookingService. Each submission drives a
// fresh wizard through its steps so the gating and priority rules apply
// to API submissions exactly as they do to interactive ones.
type bookingService struct {
	cache  *booking.AddressCache
	store  *cart.Store
	crm    crm.Client
	sender notify.Sender
	now    func() time.Time
	logger zerolog.Logger
}

// NewBookingService creates a new booking service. The CRM client and
// confirmation sender may be nil when those integrations are not
// configured.
func NewBookingService(
	cache *booking.AddressCache,
	store *cart.Store,
	crmClient crm.Client,
	sender notify.Sender,
	logger zerolog.Logger,
) BookingService {
	return &bookingService{
		cache:  cache,
		store:  store,
		crm:    crmClient,
		sender: sender,
		now:    time.Now,
		logger: logger.With().Str("service", "booking").Logger(),
	}
}

// SubmitBooking runs a full draft through the wizard and applies the
// submission side effects.
func (s *bookingService) SubmitBooking(ctx context.Context, draft *model.BookingDraft) (*BookingResult, error) {
	w := booking.NewWizard(s.cache, s.logger)

	w.SetServiceType(draft.ServiceType)
	w.SetHomeType(draft.HomeType)
	w.SetEquipmentType(draft.EquipmentType)
	w.SetIssueDescription(draft.IssueDescription)
	if err := w.Next(); err != nil {
		return nil, err
	}

	w.SetDate(draft.Date)
	w.SetTimeSlot(draft.TimeSlot)
	w.SetServiceOption(draft.ServiceOption)
	w.SetAgreeToTerms(draft.AgreeToTerms)
	if err := w.Next(); err != nil {
		return nil, err
	}

	w.SetName(draft.Name)
	w.SetEmail(draft.Email)
	w.SetPhone(draft.Phone)
	// The postal code resolves the distance estimate and may auto-fill
	// the address; an explicitly supplied address wins.
	w.SetPostalCode(draft.PostalCode)
	if draft.Address != "" {
		w.SetAddress(draft.Address)
	}

	sub, err := w.Submit()
	if err != nil {
		return nil, err
	}

	// CRM and confirmation are non-critical side channels; the booking
	// lands in the cart regardless of their outcome.
	if s.crm != nil {
		if _, err := s.crm.RecordBooking(ctx, &sub.Draft); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record booking in CRM")
		}
	}

	s.store.AddItem(ctx, sub.ServiceLine.Product)
	if sub.TravelLine != nil {
		s.store.AddItem(ctx, sub.TravelLine.Product)
	}

	confirmationSent := false
	if s.sender != nil {
		err := s.sender.SendBookingConfirmation(ctx, notify.BookingConfirmation{
			Draft:            &sub.Draft,
			AppointmentLabel: sub.AppointmentLabel,
			TravelFee:        sub.TravelFee,
			TotalCost:        sub.TotalCost,
		})
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to send booking confirmation")
		} else {
			confirmationSent = true
		}
	}

	s.logger.Info().
		Str("appointment", sub.AppointmentLabel).
		Float64("total_cost", sub.TotalCost).
		Bool("confirmation_sent", confirmationSent).
		Msg("booking submitted")

	return &BookingResult{
		AppointmentLabel: sub.AppointmentLabel,
		ServiceLine:      sub.ServiceLine,
		TravelLine:       sub.TravelLine,
		TravelFee:        sub.TravelFee,
		DistanceKm:       sub.DistanceKm,
		TotalCost:        sub.TotalCost,
		ConfirmationSent: confirmationSent,
	}, nil
}

// ValidateStep checks the fields gating one wizard step.
func (s *bookingService) ValidateStep(_ context.Context, step booking.Step, draft *model.BookingDraft) error {
	return booking.ValidateStep(step, draft)
}

// AvailableSlots returns the bookable time slots for a date.
func (s *bookingService) AvailableSlots(_ context.Context, date time.Time) []string {
	return booking.AvailableTimeSlots(date, s.now())
}

// ResolveAddress resolves a postal code to an address and travel
// estimate, cache first.
func (s *bookingService) ResolveAddress(_ context.Context, postalCode string) (*AddressResult, error) {
	addr, ok := s.cache.Resolve(postalCode)
	if !ok {
		return nil, model.ErrPostalCodeNotFound
	}

	distance := booking.EstimateDistanceKm(addr)
	return &AddressResult{
		Address:    addr,
		DistanceKm: distance,
		TravelFee:  booking.TravelFee(distance),
	}, nil
}
