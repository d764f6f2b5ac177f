package handler

import (
	"net/http"
	"strconv"
	"strings"

	"voltly/internal/model"
	"voltly/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart and checkout HTTP requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(svc service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// addItemRequest is the POST /api/cart/items body.
type addItemRequest struct {
	ProductID int `json:"productId"`
}

// updateQuantityRequest is the PUT /api/cart/items/{id} body.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// checkoutRequest is the POST /api/cart/checkout body.
type checkoutRequest struct {
	Channel      model.Channel           `json:"channel"`
	Installation *model.InstallationInfo `json:"installationData"`
	Customer     *model.CustomerInfo     `json:"customerData"`
}

// checkoutResponse tells the client which page to hand off to.
type checkoutResponse struct {
	Order      *model.OrderSummary `json:"order"`
	RedirectTo string              `json:"redirectTo"`
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.View(r.Context()))
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	if err := h.service.AddItem(r.Context(), req.ProductID); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.service.View(r.Context()))
}

// UpdateQuantity handles PUT /api/cart/items/{id} requests. A quantity
// below 1 removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request, productID int) {
	var req updateQuantityRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	h.service.UpdateQuantity(r.Context(), productID, req.Quantity)
	writeJSON(w, http.StatusOK, h.service.View(r.Context()))
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request, productID int) {
	h.service.RemoveItem(r.Context(), productID)
	writeJSON(w, http.StatusOK, h.service.View(r.Context()))
}

// ToggleWarranty handles POST /api/cart/items/{id}/warranty requests.
func (h *CartHandler) ToggleWarranty(w http.ResponseWriter, r *http.Request, productID int) {
	h.service.ToggleExtendedWarranty(r.Context(), productID)
	writeJSON(w, http.StatusOK, h.service.View(r.Context()))
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.service.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.service.View(r.Context()))
}

// Checkout handles POST /api/cart/checkout requests.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !decodeJSON(w, r, &req, h.logger) {
		return
	}

	order, err := h.service.ProcessOrder(r.Context(), req.Channel, req.Installation, req.Customer)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	redirect := "/payment"
	if order.Channel == model.ChannelFinance {
		redirect = "/financing-application"
	}

	writeJSON(w, http.StatusOK, checkoutResponse{Order: order, RedirectTo: redirect})
}

// Route dispatches /api/cart requests by method and path. The item ID is
// parsed out of /api/cart/items/{id} paths.
func (h *CartHandler) Route(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")

	switch {
	case path == "/api/cart" && r.Method == http.MethodGet:
		h.Get(w, r)
	case path == "/api/cart" && r.Method == http.MethodDelete:
		h.Clear(w, r)
	case path == "/api/cart/checkout" && r.Method == http.MethodPost:
		h.Checkout(w, r)
	case path == "/api/cart/items" && r.Method == http.MethodPost:
		h.AddItem(w, r)
	case strings.HasPrefix(path, "/api/cart/items/"):
		h.routeItem(w, r, strings.TrimPrefix(path, "/api/cart/items/"))
	default:
		writeError(w, http.StatusNotFound, model.ErrCodeValidationFailed, "not found", h.logger)
	}
}

func (h *CartHandler) routeItem(w http.ResponseWriter, r *http.Request, rest string) {
	idStr, action, _ := strings.Cut(rest, "/")
	productID, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid product ID", h.logger)
		return
	}

	switch {
	case action == "warranty" && r.Method == http.MethodPost:
		h.ToggleWarranty(w, r, productID)
	case action == "" && r.Method == http.MethodPut:
		h.UpdateQuantity(w, r, productID)
	case action == "" && r.Method == http.MethodDelete:
		h.RemoveItem(w, r, productID)
	default:
		writeError(w, http.StatusNotFound, model.ErrCodeValidationFailed, "not found", h.logger)
	}
}
