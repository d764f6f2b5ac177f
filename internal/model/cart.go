package model

// CartLine is a single product entry in a cart.
type CartLine struct {
	Product          Product `json:"product"`
	Quantity         int     `json:"quantity"`
	ExtendedWarranty bool    `json:"extendedWarranty"`
}

// InstallationInfo holds the scheduling data collected at checkout.
type InstallationInfo struct {
	PostalCode string  `json:"postalCode"`
	Address    string  `json:"address"`
	Date       string  `json:"date"`
	TimeSlot   string  `json:"timeSlot"`
	Priority   bool    `json:"priority,omitempty"`
	DistanceKm float64 `json:"distanceKm,omitempty"`
}

// Complete reports whether all fields required to process an order are set.
func (i *InstallationInfo) Complete() bool {
	return i != nil && i.PostalCode != "" && i.Address != "" && i.Date != "" && i.TimeSlot != ""
}

// CartView is the cart snapshot returned to clients: the line set plus
// every derived total, recomputed on each read.
type CartView struct {
	Lines                 []CartLine `json:"items"`
	ItemCount             int        `json:"itemCount"`
	Subtotal              float64    `json:"totalPrice"`
	ExtendedWarrantyTotal float64    `json:"extendedWarrantyPrice"`
	HasFinanceOption      bool       `json:"hasFinanceOption"`
	TotalMonthlyPayment   float64    `json:"totalMonthlyPayment"`
	GiveawayEntries       int        `json:"totalGiveawayEntries"`
	Processing            bool       `json:"processing"`
}

// CustomerInfo holds customer contact details collected at checkout.
type CustomerInfo struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}
