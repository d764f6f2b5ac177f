package booking

import (
	"errors"
	"net/mail"
	"sync"
	"time"

	"voltly/internal/model"

	"github.com/rs/zerolog"
)

// Step identifies a wizard screen.
type Step int

const (
	StepServiceDetails Step = iota + 1
	StepSchedule
	StepContactInfo
	StepSubmitted
)

// String returns the step name for logging.
func (s Step) String() string {
	switch s {
	case StepServiceDetails:
		return "service-details"
	case StepSchedule:
		return "schedule"
	case StepContactInfo:
		return "contact-info"
	case StepSubmitted:
		return "submitted"
	}
	return "unknown"
}

// Notice is a one-time message surfaced to the customer.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Submission is the outcome of a successful wizard submission: the cart
// lines to add plus the data the CRM and notification calls need.
type Submission struct {
	Draft            model.BookingDraft
	AppointmentLabel string
	ServiceLine      model.CartLine
	TravelLine       *model.CartLine
	TravelFee        float64
	DistanceKm       float64
	TotalCost        float64
}

// Wizard is the three-step repair booking state machine. Forward
// transitions are gated by per-step validation; backward transitions are
// always allowed. The wizard holds no side effects: submission returns a
// Submission for the caller to act on.
type Wizard struct {
	mu          sync.Mutex
	draft       model.BookingDraft
	step        Step
	distanceKm  float64
	hasDistance bool
	inPriority  bool
	notices     []Notice
	cache       *AddressCache
	now         func() time.Time
	logger      zerolog.Logger
}

// NewWizard creates a wizard at step one with an empty draft.
func NewWizard(cache *AddressCache, logger zerolog.Logger) *Wizard {
	return &Wizard{
		step:   StepServiceDetails,
		cache:  cache,
		now:    time.Now,
		logger: logger.With().Str("component", "booking-wizard").Logger(),
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() model.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// Notices returns and clears the pending one-time notices.
func (w *Wizard) Notices() []Notice {
	w.mu.Lock()
	defer w.mu.Unlock()
	notices := w.notices
	w.notices = nil
	return notices
}

func (w *Wizard) notify(title, description string) {
	w.notices = append(w.notices, Notice{Title: title, Description: description})
}

// SetServiceType selects the trade. Changing it clears the equipment type
// since the equipment list depends on it.
func (w *Wizard) SetServiceType(t model.ServiceType) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft.ServiceType != t {
		w.draft.EquipmentType = ""
	}
	w.draft.ServiceType = t
}

// SetHomeType selects the dwelling type.
func (w *Wizard) SetHomeType(h model.HomeType) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.HomeType = h
}

// SetEquipmentType selects the equipment being serviced.
func (w *Wizard) SetEquipmentType(e string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.EquipmentType = e
}

// SetIssueDescription sets the free-text issue description.
func (w *Wizard) SetIssueDescription(d string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.IssueDescription = d
}

// SetDate selects the appointment date and re-evaluates the priority
// timeframe.
func (w *Wizard) SetDate(d time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Date = d
	w.reevaluatePriority()
}

// SetTimeSlot selects the appointment slot and re-evaluates the priority
// timeframe.
func (w *Wizard) SetTimeSlot(slot string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.TimeSlot = slot
	w.reevaluatePriority()
}

// SetServiceOption selects the service tier.
func (w *Wizard) SetServiceOption(o model.ServiceOption) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.ServiceOption = o
	w.reevaluatePriority()
}

// SetAgreeToTerms records the terms agreement required by the protection
// plan.
func (w *Wizard) SetAgreeToTerms(agree bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.AgreeToTerms = agree
}

// SetName sets the contact name.
func (w *Wizard) SetName(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Name = name
}

// SetEmail sets the contact email.
func (w *Wizard) SetEmail(email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Email = email
}

// SetPhone sets the contact phone number.
func (w *Wizard) SetPhone(phone string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Phone = phone
}

// SetAddress sets the service address directly, for postal codes the
// lookup cannot resolve.
func (w *Wizard) SetAddress(address string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Address = address
}

// SetPostalCode sets the postal code and, once it reaches the lookup
// length, resolves the address cache-first. A hit auto-fills the address
// and refreshes the distance estimate; a miss leaves the address
// untouched and surfaces a not-found notice.
func (w *Wizard) SetPostalCode(postalCode string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.draft.PostalCode = postalCode
	if len(postalCode) < MinPostalLookupLength {
		return
	}

	addr, ok := w.cache.Resolve(postalCode)
	if !ok {
		w.logger.Debug().Str("postal_code", postalCode).Msg("postal code not found")
		w.notify("Address Not Found", "Please enter a valid Canadian postal code (Format: A1A 1A1)")
		return
	}

	w.draft.Address = addr.FullAddress
	w.distanceKm = EstimateDistanceKm(addr)
	w.hasDistance = true
	w.logger.Debug().
		Str("postal_code", postalCode).
		Str("city", addr.City).
		Float64("distance_km", w.distanceKm).
		Msg("resolved address")
	w.notify("Address Found", "Address fields have been auto-filled based on your postal code.")
}

// reevaluatePriority recomputes the priority timeframe whenever date,
// slot or option changes. Standard bookings inside the window are forced
// to priority; the notice fires once per transition into the window.
func (w *Wizard) reevaluatePriority() {
	priority := IsPriorityTimeframe(w.draft.Date, w.draft.TimeSlot, w.now())
	wasPriority := w.inPriority
	w.inPriority = priority

	if !priority {
		return
	}
	if w.draft.ServiceOption == model.ServiceOptionStandard {
		w.draft.ServiceOption = model.ServiceOptionPriority
	}
	if !wasPriority {
		w.notify("Priority Service Required",
			"Appointments within 6 hours are automatically set to Priority Service.")
	}
}

// InPriorityTimeframe reports whether the selected appointment falls in
// the six-hour priority window.
func (w *Wizard) InPriorityTimeframe() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inPriority
}

// DistanceKm returns the current distance estimate, false when no
// address has resolved yet.
func (w *Wizard) DistanceKm() (float64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.distanceKm, w.hasDistance
}

// TravelFee returns the travel charge for the resolved distance.
func (w *Wizard) TravelFee() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.hasDistance {
		return 0
	}
	return TravelFee(w.distanceKm)
}

// TotalCost returns the base cost of the selected option plus travel fee,
// recomputed on every call.
func (w *Wizard) TotalCost() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.draft.ServiceOption.Valid() {
		return 0
	}
	fee := 0.0
	if w.hasDistance {
		fee = TravelFee(w.distanceKm)
	}
	return TotalCost(w.draft.ServiceOption, fee)
}

// Next advances to the following step if the current step's fields
// validate. It returns a ValidationError naming the failing fields
// otherwise.
func (w *Wizard) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch w.step {
	case StepServiceDetails:
		if err := validateServiceDetails(&w.draft); err != nil {
			return err
		}
		w.step = StepSchedule
	case StepSchedule:
		if err := validateSchedule(&w.draft); err != nil {
			return err
		}
		w.step = StepContactInfo
	default:
		return model.NewDomainError(model.ErrCodeValidationFailed, "no further step")
	}

	w.logger.Debug().Stringer("step", w.step).Msg("advanced wizard step")
	return nil
}

// Back returns to the previous step. It is always allowed and performs
// no validation.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step > StepServiceDetails && w.step <= StepContactInfo {
		w.step--
	}
}

// Submit validates the entire draft and, on success, produces the cart
// lines and resets the wizard. Submission is only possible from the
// contact-info step; a validation failure keeps the wizard there with
// field errors.
func (w *Wizard) Submit() (*Submission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != StepContactInfo {
		return nil, model.NewDomainError(model.ErrCodeValidationFailed, "booking is not ready to submit")
	}

	if err := ValidateDraft(&w.draft); err != nil {
		return nil, err
	}

	label := AppointmentLabel(w.draft.Date, w.draft.TimeSlot)
	fee := 0.0
	if w.hasDistance {
		fee = TravelFee(w.distanceKm)
	}

	id := int(w.now().UnixMilli())
	sub := &Submission{
		Draft:            w.draft,
		AppointmentLabel: label,
		ServiceLine:      ServiceCartLine(&w.draft, label, id),
		TravelFee:        fee,
		DistanceKm:       w.distanceKm,
		TotalCost:        TotalCost(w.draft.ServiceOption, fee),
	}
	if fee > 0 {
		line := TravelFeeCartLine(w.draft.PostalCode, w.distanceKm, fee, id+1)
		sub.TravelLine = &line
	}

	w.logger.Info().
		Str("service_type", string(w.draft.ServiceType)).
		Str("service_option", string(w.draft.ServiceOption)).
		Str("appointment", label).
		Float64("total_cost", sub.TotalCost).
		Msg("booking submitted")

	// Reset to a fresh draft regardless of what the caller does next.
	w.draft = model.BookingDraft{}
	w.step = StepServiceDetails
	w.distanceKm = 0
	w.hasDistance = false
	w.inPriority = false

	return sub, nil
}

// ValidateStep validates the fields gating the given wizard step without
// needing a wizard instance.
func ValidateStep(step Step, draft *model.BookingDraft) error {
	switch step {
	case StepServiceDetails:
		return validateServiceDetails(draft)
	case StepSchedule:
		return validateSchedule(draft)
	case StepContactInfo:
		return validateContactInfo(draft)
	}
	return model.NewDomainError(model.ErrCodeValidationFailed, "unknown wizard step")
}

// validateServiceDetails gates the step one to step two transition.
func validateServiceDetails(draft *model.BookingDraft) error {
	v := model.NewValidationError()

	if !draft.ServiceType.Valid() {
		v.Add("serviceType", "Please select a service type")
	}
	if !draft.HomeType.Valid() {
		v.Add("homeType", "Please select your home type")
	}
	if draft.EquipmentType == "" {
		v.Add("equipmentType", "Please select equipment type")
	} else if draft.ServiceType.Valid() && !validEquipmentType(draft.ServiceType, draft.EquipmentType) {
		v.Add("equipmentType", "Please select equipment type")
	}
	if len(draft.IssueDescription) < 10 {
		v.Add("issueDescription", "Please provide at least 10 characters describing the issue")
	}

	return v.ErrOrNil()
}

// validateSchedule gates the step two to step three transition.
func validateSchedule(draft *model.BookingDraft) error {
	v := model.NewValidationError()

	if draft.Date.IsZero() {
		v.Add("date", "Please select a date")
	}
	if draft.TimeSlot == "" {
		v.Add("timeSlot", "Please select a time slot")
	}
	if !draft.ServiceOption.Valid() {
		v.Add("serviceOption", "Please select a service option")
	}
	if draft.ServiceOption == model.ServiceOptionProtection && !draft.AgreeToTerms {
		v.Add("agreeToTerms", "You must agree to the terms and conditions")
	}

	return v.ErrOrNil()
}

// validateContactInfo checks the step three fields.
func validateContactInfo(draft *model.BookingDraft) error {
	v := model.NewValidationError()

	if len(draft.Name) < 2 {
		v.Add("name", "Name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(draft.Email); err != nil {
		v.Add("email", "Please enter a valid email address")
	}
	if len(draft.Phone) < 10 {
		v.Add("phone", "Please enter a valid phone number")
	}
	if len(draft.Address) < 5 {
		v.Add("address", "Please enter a valid address")
	}
	if len(draft.PostalCode) < 6 {
		v.Add("postalCode", "Please enter a valid postal code")
	}

	return v.ErrOrNil()
}

// ValidateDraft validates the full draft against every step's rules.
func ValidateDraft(draft *model.BookingDraft) error {
	v := model.NewValidationError()

	for _, err := range []error{
		validateServiceDetails(draft),
		validateSchedule(draft),
		validateContactInfo(draft),
	} {
		if err == nil {
			continue
		}
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			for field, msg := range ve.Fields {
				v.Add(field, msg)
			}
		}
	}

	return v.ErrOrNil()
}
