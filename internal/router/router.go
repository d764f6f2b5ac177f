package router

import (
	"net/http"
	"strings"

	"voltly/internal/handler"
	"voltly/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	bookingHandler *handler.BookingHandler,
	orderHandler *handler.OrderHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes: the list, the filter options and single products
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/products" || r.URL.Path == "/api/products/":
			productHandler.GetAll(w, r)
		case r.URL.Path == "/api/products/filters":
			productHandler.GetFilterOptions(w, r)
		default:
			productHandler.GetByID(w, r)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes dispatch by method and path inside the handler
	mux.HandleFunc("/api/cart", cartHandler.Route)
	mux.HandleFunc("/api/cart/", cartHandler.Route)

	// Booking routes
	bookingRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch strings.TrimSuffix(r.URL.Path, "/") {
		case "/api/bookings":
			bookingHandler.Submit(w, r)
		case "/api/bookings/validate":
			bookingHandler.ValidateStep(w, r)
		case "/api/bookings/slots":
			bookingHandler.Slots(w, r)
		case "/api/bookings/address":
			bookingHandler.Address(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/bookings", bookingRouteHandler)
	mux.HandleFunc("/api/bookings/", bookingRouteHandler)

	// Order summary routes for the finance and payment pages
	mux.HandleFunc("/api/orders/", orderHandler.GetByID)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
