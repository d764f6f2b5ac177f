package model

import "time"

// ServiceType identifies the trade a repair booking belongs to.
type ServiceType string

const (
	ServiceTypeElectrical ServiceType = "electrical"
	ServiceTypeHVAC       ServiceType = "hvac"
)

// Valid reports whether the service type is known.
func (s ServiceType) Valid() bool {
	return s == ServiceTypeElectrical || s == ServiceTypeHVAC
}

// HomeType identifies the kind of dwelling being serviced.
type HomeType string

const (
	HomeTypeHouse     HomeType = "house"
	HomeTypeCondo     HomeType = "condo"
	HomeTypeTownhouse HomeType = "townhouse"
	HomeTypeApartment HomeType = "apartment"
)

// Valid reports whether the home type is known.
func (h HomeType) Valid() bool {
	switch h {
	case HomeTypeHouse, HomeTypeCondo, HomeTypeTownhouse, HomeTypeApartment:
		return true
	}
	return false
}

// ServiceOption selects the service tier for a booking.
type ServiceOption string

const (
	ServiceOptionStandard   ServiceOption = "standard"
	ServiceOptionPriority   ServiceOption = "priority"
	ServiceOptionProtection ServiceOption = "protection"
)

// Valid reports whether the service option is known.
func (o ServiceOption) Valid() bool {
	switch o {
	case ServiceOptionStandard, ServiceOptionPriority, ServiceOptionProtection:
		return true
	}
	return false
}

// BookingDraft is the in-progress state of the repair booking wizard.
// It is mutated field by field as the customer progresses and converted
// into cart lines on submission.
type BookingDraft struct {
	// Service details
	ServiceType      ServiceType `json:"serviceType"`
	HomeType         HomeType    `json:"homeType"`
	EquipmentType    string      `json:"equipmentType"`
	IssueDescription string      `json:"issueDescription"`

	// Schedule
	Date          time.Time     `json:"date"`
	TimeSlot      string        `json:"timeSlot"`
	ServiceOption ServiceOption `json:"serviceOption"`

	// Contact information
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postalCode"`

	// Terms, required only for the protection plan
	AgreeToTerms bool `json:"agreeToTerms"`
}
