package handler

import (
	"net/http"
	"strconv"
	"strings"

	"voltly/internal/catalog"
	"voltly/internal/model"

	"github.com/rs/zerolog"
)

// ProductHandler serves the catalogue with its filter engine.
type ProductHandler struct {
	catalog *catalog.Catalog
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(cat *catalog.Catalog, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: cat,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// productListResponse is the filtered catalogue page.
type productListResponse struct {
	Products     []model.Product `json:"products"`
	Total        int             `json:"total"`
	ActiveFilter int             `json:"activeFilterCount"`
}

// filterOptionsResponse lists the selectable filter values per category.
type filterOptionsResponse struct {
	Brands      []string `json:"brands"`
	Sizes       []string `json:"sizes"`
	SqftRanges  []string `json:"sqftRanges"`
	PriceRanges []string `json:"priceRanges"`
	Features    []string `json:"features"`
}

// GetAll handles GET /api/products requests with filtering and sorting.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	q := r.URL.Query()

	category := model.Category(q.Get("category"))
	if category == "" || !category.Valid() {
		writeDomainError(w, model.ErrInvalidCategory, h.logger)
		return
	}

	sort := catalog.SortOrder(q.Get("sort"))
	if sort == "" {
		sort = catalog.SortNone
	}
	if !sort.Valid() {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "unknown sort order", h.logger)
		return
	}

	// Filter values repeat the query key; band labels contain commas,
	// so they cannot be comma-joined.
	state := catalog.FilterState{
		Brands:      cleanParams(q["brands"]),
		Sizes:       cleanParams(q["sizes"]),
		SqftRanges:  cleanParams(q["sqft"]),
		PriceRanges: cleanParams(q["prices"]),
		Features:    cleanParams(q["features"]),
		PriceSort:   sort,
	}

	products := catalog.Filter(h.catalog.ByCategory(category), category, state)

	writeJSON(w, http.StatusOK, productListResponse{
		Products:     products,
		Total:        len(products),
		ActiveFilter: state.ActiveCount(),
	})
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/api/products/")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidationFailed, "invalid product ID", h.logger)
		return
	}

	product, ok := h.catalog.ByID(id)
	if !ok {
		writeDomainError(w, model.ErrProductNotFound, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetFilterOptions handles GET /api/products/filters requests.
func (h *ProductHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeValidationFailed, "method not allowed", h.logger)
		return
	}

	category := model.Category(r.URL.Query().Get("category"))
	if !category.Valid() {
		writeDomainError(w, model.ErrInvalidCategory, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, filterOptionsResponse{
		Brands:      h.catalog.Brands(category),
		Sizes:       catalog.SizeOptions(category),
		SqftRanges:  catalog.SqftOptions(category),
		PriceRanges: catalog.PriceOptions(),
		Features:    catalog.FeatureOptions(category),
	})
}

// cleanParams trims repeated query values, dropping empty ones.
func cleanParams(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
