package model

import (
	"time"

	"github.com/google/uuid"
)

// Channel selects the downstream page an order hands off to.
type Channel string

const (
	ChannelFinance Channel = "finance"
	ChannelPayment Channel = "payment"
)

// Valid reports whether the channel is a known checkout channel.
func (c Channel) Valid() bool {
	return c == ChannelFinance || c == ChannelPayment
}

// OrderSummary is the snapshot of a cart written out when an order is
// processed, read back by the finance or payment page.
type OrderSummary struct {
	ID                    uuid.UUID         `json:"id"`
	Lines                 []CartLine        `json:"items"`
	Subtotal              float64           `json:"totalPrice"`
	ExtendedWarrantyPrice float64           `json:"extendedWarrantyPrice"`
	TaxAmount             float64           `json:"taxAmount"`
	GrandTotal            float64           `json:"finalTotal"`
	GiveawayEntries       int               `json:"totalGiveawayEntries"`
	Channel               Channel           `json:"channel"`
	OrderDate             time.Time         `json:"orderDate"`
	Installation          *InstallationInfo `json:"installationData,omitempty"`
	Customer              *CustomerInfo     `json:"customerData,omitempty"`
}
