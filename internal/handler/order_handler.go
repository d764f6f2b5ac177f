package handler

import (
	"net/http"
	"strings"

	"voltly/internal/model"
	"voltly/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler serves persisted order summaries to the finance and
// payment pages.
type OrderHandler struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(repo repository.OrderRepository, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		repo:   repo,
		logger: logger.With().Str("handler", "order").Logger(),
	}
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/orders/")
	if idStr == "latest" {
		h.getLatest(w, r)
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid order ID format", h.logger)
		return
	}

	order, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve order", h.logger)
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeValidationFailed, "order not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) getLatest(w http.ResponseWriter, r *http.Request) {
	order, err := h.repo.GetLatest(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to retrieve order", h.logger)
		return
	}
	if order == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeValidationFailed, "no orders yet", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}
