package handler

import (
	"net/http"
	"time"

	"voltly/internal/booking"
	"voltly/internal/model"
	"voltly/internal/service"

	"github.com/rs/zerolog"
)

// BookingHandler handles repair booking HTTP requests.
type BookingHandler struct {
	service service.BookingService
	logger  zerolog.Logger
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(svc service.BookingService, logger zerolog.Logger) *BookingHandler {
	return &BookingHandler{
		service: svc,
		logger:  logger.With().Str("handler", "booking").Logger(),
	}
}

// validateStepRequest is the POST /api/bookings/validate body.
type validateStepRequest struct {
	Step  int                `json:"step"`
	Draft model.BookingDraft `json:"draft"`
}

// slotsResponse lists the open time slots for a date.
type slotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// Submit handles POST /api/bookings requests with a full draft.
func (h *BookingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	var draft model.BookingDraft
	if !decodeJSON(w, r, &draft, h.logger) {
		return
	}

	result, err := h.service.SubmitBooking(r.Context(), &draft)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// ValidateStep handles POST /api/bookings/validate requests, gating one
// wizard step without side effects.
func (h *BookingHandler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	var req validateStepRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := h.service.ValidateStep(r.Context(), booking.Step(req.Step), &req.Draft); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Slots handles GET /api/bookings/slots?date=YYYY-MM-DD requests.
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "date must be YYYY-MM-DD", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, slotsResponse{
		Date:  dateStr,
		Slots: h.service.AvailableSlots(r.Context(), date),
	})
}

// Address handles GET /api/bookings/address?postalCode=A1A+1A1 requests.
func (h *BookingHandler) Address(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	postalCode := r.URL.Query().Get("postalCode")
	if len(postalCode) < booking.MinPostalLookupLength {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "postal code is too short", h.logger)
		return
	}

	result, err := h.service.ResolveAddress(r.Context(), postalCode)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
