package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"voltly/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with a stable error code.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Warn().Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps service errors onto HTTP responses. Validation
// errors carry their per-field messages; domain errors map their code to
// a status; anything else is an internal error.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		logger.Warn().Int("fields", len(validationErr.Fields)).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:   model.ErrCodeValidationFailed,
			Message: "Please correct the highlighted fields",
			Fields:  validationErr.Fields,
		})
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case model.ErrCodeProductNotFound, model.ErrCodePostalCodeNotFound:
			status = http.StatusNotFound
		case model.ErrCodeInternalError:
			status = http.StatusInternalServerError
		}
		writeError(w, status, domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).Msg("unhandled service error")
	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "something went wrong", logger)
}

// decodeJSON decodes a request body, writing an INVALID_JSON error on
// failure. It reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger zerolog.Logger) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", logger)
		return false
	}
	return true
}
