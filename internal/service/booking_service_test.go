package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"voltly/internal/booking"
	"voltly/internal/cart"
	"voltly/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T, crmClient *MockCRMClient, sender *MockSender) (BookingService, *cart.Store) {
	t.Helper()
	store := cart.NewStore(context.Background(), &memStorage{}, zerolog.Nop())
	cache := booking.NewAddressCache()

	switch {
	case crmClient != nil && sender != nil:
		return NewBookingService(cache, store, crmClient, sender, zerolog.Nop()), store
	case crmClient != nil:
		return NewBookingService(cache, store, crmClient, nil, zerolog.Nop()), store
	case sender != nil:
		return NewBookingService(cache, store, nil, sender, zerolog.Nop()), store
	default:
		return NewBookingService(cache, store, nil, nil, zerolog.Nop()), store
	}
}

func validDraft() *model.BookingDraft {
	return &model.BookingDraft{
		ServiceType:      model.ServiceTypeHVAC,
		HomeType:         model.HomeTypeHouse,
		EquipmentType:    "Furnace",
		IssueDescription: "Furnace makes a loud banging noise on startup",
		Date:             time.Now().AddDate(0, 0, 7),
		TimeSlot:         "9:00 AM",
		ServiceOption:    model.ServiceOptionStandard,
		Name:             "Jordan Fraser",
		Email:            "jordan@example.com",
		Phone:            "4165550123",
		PostalCode:       "M5V 2H1",
	}
}

func TestBookingService_SubmitBooking(t *testing.T) {
	crmClient := &MockCRMClient{}
	sender := &MockSender{}
	svc, store := newBookingService(t, crmClient, sender)

	crmClient.On("RecordBooking", mock.Anything, mock.Anything).Return(nil, nil)
	sender.On("SendBookingConfirmation", mock.Anything, mock.Anything).Return(nil)

	result, err := svc.SubmitBooking(context.Background(), validDraft())
	require.NoError(t, err)

	assert.Equal(t, "HVAC Service - Standard", result.ServiceLine.Product.Name)
	assert.Equal(t, 149.0, result.TotalCost)
	assert.Nil(t, result.TravelLine, "Toronto is inside the free travel radius")
	assert.True(t, result.ConfirmationSent)

	// Service line landed in the cart
	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "HVAC Service - Standard", lines[0].Product.Name)

	crmClient.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestBookingService_SubmitBooking_TravelFeeLine(t *testing.T) {
	svc, store := newBookingService(t, nil, nil)

	draft := validDraft()
	draft.PostalCode = "T2P 1J9" // Calgary, far outside the service radius

	result, err := svc.SubmitBooking(context.Background(), draft)
	require.NoError(t, err)

	require.NotNil(t, result.TravelLine)
	assert.Greater(t, result.TravelFee, 0.0)
	assert.Equal(t, 149.0+result.TravelFee, result.TotalCost)

	lines := store.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "Travel Fee", lines[1].Product.Name)
}

func TestBookingService_SubmitBooking_ExplicitAddressWins(t *testing.T) {
	crmClient := &MockCRMClient{}
	svc, _ := newBookingService(t, crmClient, nil)

	draft := validDraft()
	draft.Address = "742 Custom Street, Toronto"

	var recorded *model.BookingDraft
	crmClient.On("RecordBooking", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*model.BookingDraft)
		}).
		Return(nil, nil)

	_, err := svc.SubmitBooking(context.Background(), draft)
	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.Equal(t, "742 Custom Street, Toronto", recorded.Address)
}

func TestBookingService_SubmitBooking_ValidationFailure(t *testing.T) {
	svc, store := newBookingService(t, nil, nil)

	draft := validDraft()
	draft.IssueDescription = "too short"

	_, err := svc.SubmitBooking(context.Background(), draft)

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "issueDescription")
	assert.Empty(t, store.Lines())
}

func TestBookingService_SubmitBooking_CRMFailureIsSwallowed(t *testing.T) {
	crmClient := &MockCRMClient{}
	svc, store := newBookingService(t, crmClient, nil)

	crmClient.On("RecordBooking", mock.Anything, mock.Anything).Return(nil, errors.New("crm down"))

	result, err := svc.SubmitBooking(context.Background(), validDraft())
	require.NoError(t, err)
	assert.False(t, result.ConfirmationSent)
	assert.Len(t, store.Lines(), 1)
}

func TestBookingService_SubmitBooking_ConfirmationFailureIsSwallowed(t *testing.T) {
	sender := &MockSender{}
	svc, store := newBookingService(t, nil, sender)

	sender.On("SendBookingConfirmation", mock.Anything, mock.Anything).Return(errors.New("webhook down"))

	result, err := svc.SubmitBooking(context.Background(), validDraft())
	require.NoError(t, err)
	assert.False(t, result.ConfirmationSent)
	assert.Len(t, store.Lines(), 1)
}

func TestBookingService_ValidateStep(t *testing.T) {
	svc, _ := newBookingService(t, nil, nil)
	ctx := context.Background()
	draft := validDraft()
	draft.Address = "25 Queens Quay W, Toronto, Ontario"

	assert.NoError(t, svc.ValidateStep(ctx, booking.StepServiceDetails, draft))
	assert.NoError(t, svc.ValidateStep(ctx, booking.StepSchedule, draft))
	assert.NoError(t, svc.ValidateStep(ctx, booking.StepContactInfo, draft))

	draft.EquipmentType = ""
	err := svc.ValidateStep(ctx, booking.StepServiceDetails, draft)
	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "equipmentType")
}

func TestBookingService_AvailableSlots(t *testing.T) {
	svc, _ := newBookingService(t, nil, nil)

	slots := svc.AvailableSlots(context.Background(), time.Now())
	assert.Equal(t, []string{"9:00 AM", "11:00 AM", "2:00 PM"}, slots)
}

func TestBookingService_ResolveAddress(t *testing.T) {
	svc, _ := newBookingService(t, nil, nil)
	ctx := context.Background()

	result, err := svc.ResolveAddress(ctx, "K1P 5A1")
	require.NoError(t, err)
	assert.Equal(t, "Ottawa", result.Address.City)
	assert.Greater(t, result.TravelFee, 0.0)

	_, err = svc.ResolveAddress(ctx, "Z9Z 9Z9")
	assert.ErrorIs(t, err, model.ErrPostalCodeNotFound)
}
