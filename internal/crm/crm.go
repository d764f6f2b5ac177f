package crm

import (
	"context"

	"voltly/internal/model"
)

// Job priorities recognised by Service Fusion.
const (
	PriorityLow       = "Low"
	PriorityNormal    = "Normal"
	PriorityHigh      = "High"
	PriorityEmergency = "Emergency"
)

// Job categories used for the work orders we create.
const (
	CategoryElectrical = "Electrical"
	CategoryHVAC       = "HVAC"
	CategorySales      = "Sales"
)

// Customer mirrors the Service Fusion customer resource.
type Customer struct {
	ID        int    `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
}

// Job mirrors the Service Fusion job resource.
type Job struct {
	ID            int    `json:"id,omitempty"`
	CustomerID    int    `json:"customer_id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	Category      string `json:"category"`
	ScheduledDate string `json:"scheduled_date,omitempty"`
	ScheduledTime string `json:"scheduled_time,omitempty"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
}

// Technician mirrors the Service Fusion technician resource.
type Technician struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// Client is the CRM surface the order and booking flows depend on.
// Failures are surfaced as errors; callers decide whether the operation
// is best-effort.
type Client interface {
	// RecordBooking upserts the customer and opens a work order for a
	// submitted repair booking.
	RecordBooking(ctx context.Context, draft *model.BookingDraft) (*Job, error)

	// RecordPurchase upserts the customer and opens a sales work order
	// for a processed product order.
	RecordPurchase(ctx context.Context, order *model.OrderSummary) (*Job, error)

	// GetTechnicians lists the available technicians.
	GetTechnicians(ctx context.Context) ([]Technician, error)
}
