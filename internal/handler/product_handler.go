package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.CatalogService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products with filter, sort and limit parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r.URL.Query())

	products, total, err := h.service.List(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(products),
		Total:   total,
		Data:    products,
	}, h.logger)
}

// GetByID handles GET /api/products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, itemResponse{Success: true, Data: product}, h.logger)
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, itemResponse{Success: true, Data: created}, h.logger)
}

// Replace handles PUT /api/products/{id}, a full update requiring every
// mandatory field.
func (h *ProductHandler) Replace(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	replaced, err := h.service.Replace(chi.URLParam(r, "id"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemResponse{Success: true, Data: replaced}, h.logger)
}

// Patch handles PATCH /api/products/{id}, merging only the supplied fields.
func (h *ProductHandler) Patch(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	updated, err := h.service.Patch(chi.URLParam(r, "id"), input)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, itemResponse{Success: true, Data: updated}, h.logger)
}

// Delete handles DELETE /api/products/{id}. A successful delete returns 204
// with an empty body.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.Delete(chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Categories handles GET /api/categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories := h.service.Categories()
	writeJSON(w, http.StatusOK, categoriesResponse{
		Success: true,
		Count:   len(categories),
		Data:    categories,
	}, h.logger)
}

// decodeInput parses the request body. A body that is not valid JSON for the
// input shape (including non-numeric price or fractional stock) is a 400.
func (h *ProductHandler) decodeInput(w http.ResponseWriter, r *http.Request) (model.ProductInput, bool) {
	var input model.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return model.ProductInput{}, false
	}
	return input, true
}

// writeServiceError maps service failures to HTTP statuses.
func (h *ProductHandler) writeServiceError(w http.ResponseWriter, err error) {
	var valErr *model.ValidationError
	switch {
	case errors.As(err, &valErr):
		writeValidationError(w, valErr, h.logger)
	case errors.Is(err, model.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "product not found", h.logger)
	default:
		h.logger.Error().Err(err).Msg("unexpected service error")
		writeError(w, http.StatusInternalServerError, "internal error", h.logger)
	}
}

// parseFilter extracts query pipeline parameters. Non-numeric bounds and
// non-positive limits are ignored rather than rejected.
func parseFilter(q url.Values) repository.ProductFilter {
	filter := repository.ProductFilter{
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
		InStock:  q.Get("inStock") == "true",
	}

	if v := q.Get("minPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &n
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &n
		}
	}
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = &n
		}
	}

	return filter
}
