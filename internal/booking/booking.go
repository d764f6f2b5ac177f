package booking

import (
	"fmt"
	"strings"
	"time"

	"voltly/internal/model"
)

const (
	// FreeTravelDistanceKm is the radius around the service centre with
	// no travel charge.
	FreeTravelDistanceKm = 80.0

	// TravelRatePerKm is charged per kilometre beyond the free radius.
	TravelRatePerKm = 1.0

	// ServiceCenterLocation is the dispatch origin for distance estimates.
	ServiceCenterLocation = "80 Dynamic Drive, Scarborough, ON"
)

// ServiceCosts holds the base cost per service option. The protection
// plan cost is a monthly subscription price.
var ServiceCosts = map[model.ServiceOption]float64{
	model.ServiceOptionStandard:   149,
	model.ServiceOptionPriority:   325,
	model.ServiceOptionProtection: 24,
}

// electricalEquipmentTypes are the selectable equipment types for
// electrical service.
var electricalEquipmentTypes = []string{
	"Electrical Panel",
	"Circuit Breaker",
	"Outlet/Switch",
	"Lighting System",
	"EV Charger",
	"Generator",
	"Wiring Issue",
	"Other Electrical Issue",
}

// hvacEquipmentTypes are the selectable equipment types for HVAC service.
var hvacEquipmentTypes = []string{
	"Furnace",
	"Air Conditioner",
	"Heat Pump",
	"Tankless Water Heater",
	"Thermostat",
	"Ductwork",
	"Smart Home System",
	"Other HVAC Issue",
}

// EquipmentTypes returns the valid equipment types for a service type.
func EquipmentTypes(serviceType model.ServiceType) []string {
	if serviceType == model.ServiceTypeElectrical {
		return electricalEquipmentTypes
	}
	return hvacEquipmentTypes
}

// validEquipmentType reports whether the equipment type belongs to the
// service type's list.
func validEquipmentType(serviceType model.ServiceType, equipmentType string) bool {
	for _, e := range EquipmentTypes(serviceType) {
		if e == equipmentType {
			return true
		}
	}
	return false
}

// TravelFee returns the travel charge for a distance estimate: the
// per-kilometre rate applies only beyond the free travel radius.
func TravelFee(distanceKm float64) float64 {
	if distanceKm <= FreeTravelDistanceKm {
		return 0
	}
	return (distanceKm - FreeTravelDistanceKm) * TravelRatePerKm
}

// TotalCost returns the base cost of a service option plus the travel fee.
func TotalCost(option model.ServiceOption, travelFee float64) float64 {
	return ServiceCosts[option] + travelFee
}

// AppointmentTime resolves a date and a time slot label like "2:00 PM"
// into the appointment instant.
func AppointmentTime(date time.Time, timeSlot string) (time.Time, error) {
	parsed, err := time.ParseInLocation("3:04 PM", timeSlot, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time slot %q: %w", timeSlot, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location()), nil
}

// IsPriorityTimeframe reports whether an appointment falls within six
// hours of now without being in the past.
func IsPriorityTimeframe(date time.Time, timeSlot string, now time.Time) bool {
	if date.IsZero() || timeSlot == "" {
		return false
	}
	appointment, err := AppointmentTime(date, timeSlot)
	if err != nil {
		return false
	}
	return !appointment.After(now.Add(6*time.Hour)) && appointment.After(now)
}

// AppointmentLabel formats the appointment for display and notification,
// e.g. "January 2, 2026 at 2:00 PM".
func AppointmentLabel(date time.Time, timeSlot string) string {
	return fmt.Sprintf("%s at %s", date.Format("January 2, 2006"), timeSlot)
}

// titleCase uppercases the first letter of a service option for display.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ServiceCartLine builds the cart line for a booked service.
func ServiceCartLine(draft *model.BookingDraft, appointmentLabel string, id int) model.CartLine {
	option := draft.ServiceOption
	return model.CartLine{
		Product: model.Product{
			ID:       id,
			Name:     fmt.Sprintf("%s Service - %s", strings.ToUpper(string(draft.ServiceType)), titleCase(string(option))),
			Price:    ServiceCosts[option],
			Category: model.CategoryService,
			Features: []string{
				appointmentLabel,
				draft.EquipmentType,
				fmt.Sprintf("%s Service", titleCase(string(option))),
			},
		},
		Quantity: 1,
	}
}

// TravelFeeCartLine builds the cart line for a travel fee. Only called
// when the fee is positive.
func TravelFeeCartLine(postalCode string, distanceKm, travelFee float64, id int) model.CartLine {
	return model.CartLine{
		Product: model.Product{
			ID:       id,
			Name:     "Travel Fee",
			Price:    travelFee,
			Category: model.CategoryService,
			Features: []string{
				fmt.Sprintf("Travel fee for service to postal code %s", postalCode),
				fmt.Sprintf("Distance: %.0fkm", distanceKm),
				fmt.Sprintf("%.0fkm beyond free travel zone", distanceKm-FreeTravelDistanceKm),
			},
		},
		Quantity: 1,
	}
}
