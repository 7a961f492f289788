package handler

import (
	"encoding/json"
	"net/http"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// listResponse is the envelope for collection queries: count is the number
// of items returned, total the size of the unfiltered collection.
type listResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Total   int             `json:"total"`
	Data    []model.Product `json:"data"`
}

// itemResponse is the envelope for single-product responses.
type itemResponse struct {
	Success bool          `json:"success"`
	Data    model.Product `json:"data"`
}

// categoriesResponse is the envelope for the category listing.
type categoriesResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Data    []string `json:"data"`
}

// errorResponse is the envelope for failures. Errors carries the full list
// of field violations on a 400.
type errorResponse struct {
	Error  string             `json:"error"`
	Errors []model.FieldError `json:"errors,omitempty"`
}

// writeJSON writes a JSON response with the given status code. An encode
// failure is logged but not exposed to the client, the status line is
// already on the wire.
func writeJSON(w http.ResponseWriter, status int, data interface{}, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error().Err(err).Int("status", status).Msg("failed to encode response")
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Debug().Str("error", message).Int("status", status).Msg("request failed")
	writeJSON(w, status, errorResponse{Error: message}, logger)
}

// writeValidationError writes a 400 with every field violation.
func writeValidationError(w http.ResponseWriter, valErr *model.ValidationError, logger zerolog.Logger) {
	logger.Debug().Int("violations", len(valErr.Fields)).Msg("validation failed")
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error:  "validation failed",
		Errors: valErr.Fields,
	}, logger)
}
