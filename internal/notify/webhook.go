package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const confirmationSubject = "New Service Booking Confirmation"

// WebhookConfig holds the confirmation webhook settings.
type WebhookConfig struct {
	URL     string
	ToEmail string
	Timeout time.Duration
}

// confirmationPayload is the flat field set the downstream automation
// (Zapier or similar) expects.
type confirmationPayload struct {
	ToEmail        string `json:"to_email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	ServiceType    string `json:"service_type"`
	ServiceDate    string `json:"service_date"`
	ServiceTime    string `json:"service_time"`
	ServiceOption  string `json:"service_option"`
	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	ServiceAddress string `json:"service_address"`
	TotalAmount    string `json:"total_amount"`
	Timestamp      string `json:"timestamp"`
}

// webhookSender posts booking confirmations to a configured webhook URL.
type webhookSender struct {
	cfg    WebhookConfig
	http   *http.Client
	now    func() time.Time
	logger zerolog.Logger
}

// NewWebhookSender creates a webhook-backed confirmation sender.
func NewWebhookSender(cfg WebhookConfig, logger zerolog.Logger) Sender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &webhookSender{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		now:    time.Now,
		logger: logger.With().Str("component", "confirmation-webhook").Logger(),
	}
}

// SendBookingConfirmation posts the confirmation payload. A non-2xx
// response is an error so callers can log the failure.
func (s *webhookSender) SendBookingConfirmation(ctx context.Context, confirmation BookingConfirmation) error {
	payload := buildConfirmationPayload(confirmation, s.cfg.ToEmail, s.now())

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode confirmation payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build confirmation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("confirmation webhook failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("confirmation webhook failed: %s", resp.Status)
	}

	s.logger.Info().
		Str("customer_email", confirmation.Draft.Email).
		Str("appointment", confirmation.AppointmentLabel).
		Msg("sent booking confirmation")
	return nil
}

func buildConfirmationPayload(c BookingConfirmation, toEmail string, now time.Time) confirmationPayload {
	draft := c.Draft
	serviceType := strings.ToUpper(string(draft.ServiceType))
	serviceOption := capitalize(string(draft.ServiceOption))
	address := draft.Address + ", " + draft.PostalCode
	baseCost := c.TotalCost - c.TravelFee

	message := fmt.Sprintf(`A new service booking has been made with the following details:

Service Type: %s
Equipment: %s
Service Option: %s
Appointment: %s
Issue Description: %s

Customer Details:
Name: %s
Email: %s
Phone: %s
Address: %s

Payment Details:
Base Service Cost: $%s
Travel Fee: $%s
Total Cost: $%s
`,
		serviceType, draft.EquipmentType, serviceOption, c.AppointmentLabel,
		draft.IssueDescription, draft.Name, draft.Email, draft.Phone, address,
		amount(baseCost), amount(c.TravelFee), amount(c.TotalCost))

	return confirmationPayload{
		ToEmail:        toEmail,
		Subject:        confirmationSubject,
		Message:        message,
		ServiceType:    serviceType,
		ServiceDate:    draft.Date.Format("January 2, 2006"),
		ServiceTime:    draft.TimeSlot,
		ServiceOption:  serviceOption,
		CustomerName:   draft.Name,
		CustomerEmail:  draft.Email,
		CustomerPhone:  draft.Phone,
		ServiceAddress: address,
		TotalAmount:    "$" + amount(c.TotalCost),
		Timestamp:      now.UTC().Format(time.RFC3339),
	}
}

// amount renders a dollar value without trailing zeros, so whole-dollar
// fees read as "$149" rather than "$149.000000".
func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
