package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"voltly/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmation() BookingConfirmation {
	return BookingConfirmation{
		Draft: &model.BookingDraft{
			ServiceType:      model.ServiceTypeHVAC,
			EquipmentType:    "Furnace",
			IssueDescription: "No heat since this morning",
			Date:             time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			TimeSlot:         "9:00 AM",
			ServiceOption:    model.ServiceOptionPriority,
			Name:             "Jordan Fraser",
			Email:            "jordan@example.com",
			Phone:            "4165550123",
			Address:          "25 Queens Quay W, Toronto, Ontario",
			PostalCode:       "M5V 2H1",
		},
		AppointmentLabel: "March 15, 2026 at 9:00 AM",
		TravelFee:        20,
		TotalCost:        345,
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	var got confirmationPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewWebhookSender(WebhookConfig{
		URL:     server.URL,
		ToEmail: "bookings@example.com",
	}, zerolog.Nop())

	err := sender.SendBookingConfirmation(context.Background(), confirmation())
	require.NoError(t, err)

	assert.Equal(t, "bookings@example.com", got.ToEmail)
	assert.Equal(t, "New Service Booking Confirmation", got.Subject)
	assert.Equal(t, "HVAC", got.ServiceType)
	assert.Equal(t, "March 15, 2026", got.ServiceDate)
	assert.Equal(t, "9:00 AM", got.ServiceTime)
	assert.Equal(t, "Priority", got.ServiceOption)
	assert.Equal(t, "Jordan Fraser", got.CustomerName)
	assert.Equal(t, "25 Queens Quay W, Toronto, Ontario, M5V 2H1", got.ServiceAddress)
	assert.Equal(t, "$345", got.TotalAmount)
	assert.NotEmpty(t, got.Timestamp)

	assert.Contains(t, got.Message, "Service Type: HVAC")
	assert.Contains(t, got.Message, "Appointment: March 15, 2026 at 9:00 AM")
	assert.Contains(t, got.Message, "Base Service Cost: $325")
	assert.Contains(t, got.Message, "Travel Fee: $20")
	assert.Contains(t, got.Message, "Total Cost: $345")
}

func TestSendBookingConfirmation_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	sender := NewWebhookSender(WebhookConfig{URL: server.URL}, zerolog.Nop())
	err := sender.SendBookingConfirmation(context.Background(), confirmation())
	assert.ErrorContains(t, err, "502")
}

func TestSendBookingConfirmation_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	sender := NewWebhookSender(WebhookConfig{URL: server.URL}, zerolog.Nop())
	err := sender.SendBookingConfirmation(context.Background(), confirmation())
	assert.Error(t, err)
}

func TestAmountFormatting(t *testing.T) {
	assert.Equal(t, "149", amount(149))
	assert.Equal(t, "169.5", amount(169.5))
	assert.Equal(t, "0", amount(0))
}
