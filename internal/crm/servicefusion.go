package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"voltly/internal/model"
	"voltly/internal/pricing"

	"github.com/rs/zerolog"
)

// Service Fusion has no notion of our postal code table; work orders are
// filed against the dispatch region until an address sync exists.
const (
	defaultCity   = "Toronto"
	defaultRegion = "ON"
)

// tokenExpirySlack refreshes the OAuth token slightly before the server
// says it expires.
const tokenExpirySlack = 30 * time.Second

// ServiceFusionConfig holds the Service Fusion API connection settings.
type ServiceFusionConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type listResponse[T any] struct {
	Data []T `json:"data"`
}

// serviceFusionClient implements Client against the Service Fusion REST
// API using client-credentials OAuth.
type serviceFusionClient struct {
	cfg    ServiceFusionConfig
	http   *http.Client
	logger zerolog.Logger

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// NewServiceFusionClient creates a Service Fusion CRM client.
func NewServiceFusionClient(cfg ServiceFusionConfig, logger zerolog.Logger) Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &serviceFusionClient{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger.With().Str("component", "service-fusion").Logger(),
	}
}

// accessToken returns a cached OAuth token, fetching a fresh one when the
// cached token is missing or about to expire.
func (c *serviceFusionClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get access token: %s", resp.Status)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	c.token = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - tokenExpirySlack)
	c.logger.Debug().Int("expires_in", token.ExpiresIn).Msg("refreshed access token")
	return c.token, nil
}

// doJSON issues an authenticated request with an optional JSON body and
// decodes the response into out when out is non-nil.
func (c *serviceFusionClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("request to %s failed: %s", path, resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// findCustomer looks a customer up by email, returning nil when no match
// exists.
func (c *serviceFusionClient) findCustomer(ctx context.Context, email string) (*Customer, error) {
	var list listResponse[Customer]
	path := "/v1/customers?email=" + url.QueryEscape(email)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	if len(list.Data) == 0 {
		return nil, nil
	}
	return &list.Data[0], nil
}

func (c *serviceFusionClient) createCustomer(ctx context.Context, customer *Customer) (*Customer, error) {
	var created Customer
	if err := c.doJSON(ctx, http.MethodPost, "/v1/customers", customer, &created); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &created, nil
}

// ensureCustomer returns the existing customer for the email or creates
// one from the given details.
func (c *serviceFusionClient) ensureCustomer(ctx context.Context, customer *Customer) (*Customer, error) {
	existing, err := c.findCustomer(ctx, customer.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	created, err := c.createCustomer(ctx, customer)
	if err != nil {
		return nil, err
	}
	c.logger.Info().Int("customer_id", created.ID).Msg("created customer")
	return created, nil
}

func (c *serviceFusionClient) createJob(ctx context.Context, job *Job) (*Job, error) {
	var created Job
	if err := c.doJSON(ctx, http.MethodPost, "/v1/jobs", job, &created); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	c.logger.Info().Int("job_id", created.ID).Str("title", created.Title).Msg("created job")
	return &created, nil
}

// RecordBooking upserts the customer and files a work order for a repair
// booking.
func (c *serviceFusionClient) RecordBooking(ctx context.Context, draft *model.BookingDraft) (*Job, error) {
	first, last := splitName(draft.Name)
	customer, err := c.ensureCustomer(ctx, &Customer{
		FirstName: first,
		LastName:  last,
		Email:     draft.Email,
		Phone:     draft.Phone,
		Address:   draft.Address,
		City:      defaultCity,
		State:     defaultRegion,
		Zip:       draft.PostalCode,
	})
	if err != nil {
		return nil, err
	}

	trade := CategoryHVAC
	if draft.ServiceType == model.ServiceTypeElectrical {
		trade = CategoryElectrical
	}

	description := fmt.Sprintf(
		"Service Type: %s\nEquipment: %s\nHome Type: %s\nIssue: %s\nService Option: %s",
		draft.ServiceType, draft.EquipmentType, draft.HomeType, draft.IssueDescription, draft.ServiceOption)

	return c.createJob(ctx, &Job{
		CustomerID:    customer.ID,
		Title:         fmt.Sprintf("%s Service - %s", trade, draft.EquipmentType),
		Description:   description,
		Priority:      jobPriority(draft.ServiceOption),
		Category:      trade,
		ScheduledDate: draft.Date.Format("2006-01-02"),
		ScheduledTime: draft.TimeSlot,
		Address:       draft.Address,
		City:          defaultCity,
		State:         defaultRegion,
		Zip:           draft.PostalCode,
	})
}

// RecordPurchase upserts the customer and files a sales work order for a
// processed order.
func (c *serviceFusionClient) RecordPurchase(ctx context.Context, order *model.OrderSummary) (*Job, error) {
	if order.Customer == nil {
		return nil, fmt.Errorf("order %s has no customer details", order.ID)
	}

	first, last := splitName(order.Customer.Name)
	customer, err := c.ensureCustomer(ctx, &Customer{
		FirstName: first,
		LastName:  last,
		Email:     order.Customer.Email,
		Phone:     order.Customer.Phone,
		Address:   order.Customer.Address,
		City:      defaultCity,
		State:     defaultRegion,
		Zip:       order.Customer.PostalCode,
	})
	if err != nil {
		return nil, err
	}

	payment, method := "Direct Payment", "Direct Payment"
	if order.Channel == model.ChannelFinance {
		payment, method = "Financed", "Financing"
	}

	items := make([]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		items = append(items, fmt.Sprintf("%s (Qty: %d) - $%s",
			line.Product.Name, line.Quantity, pricing.FormatCurrency(line.Product.Price)))
	}

	description := fmt.Sprintf(
		"Product Purchase Order\n\nItems:\n%s\n\nTotal Amount: $%s\nPayment Method: %s",
		strings.Join(items, "\n"), pricing.FormatCurrency(order.GrandTotal), method)

	return c.createJob(ctx, &Job{
		CustomerID:  customer.ID,
		Title:       "Product Purchase - " + payment,
		Description: description,
		Priority:    PriorityNormal,
		Category:    CategorySales,
		Address:     order.Customer.Address,
		City:        defaultCity,
		State:       defaultRegion,
		Zip:         order.Customer.PostalCode,
	})
}

// GetTechnicians lists the available technicians.
func (c *serviceFusionClient) GetTechnicians(ctx context.Context) ([]Technician, error) {
	var list listResponse[Technician]
	if err := c.doJSON(ctx, http.MethodGet, "/v1/technicians", nil, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}

// jobPriority maps a service tier to a Service Fusion job priority.
func jobPriority(option model.ServiceOption) string {
	switch option {
	case model.ServiceOptionPriority:
		return PriorityHigh
	case model.ServiceOptionProtection:
		return PriorityNormal
	default:
		return PriorityLow
	}
}

// splitName splits a full name into first and last. Single-word names use
// the same word for both, which Service Fusion requires.
func splitName(name string) (string, string) {
	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) == 0 {
		return "", ""
	}
	first := parts[0]
	last := strings.Join(parts[1:], " ")
	if last == "" {
		last = first
	}
	return first, last
}
