// Package api implements HTTP handlers for the exchange rate lookup service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"xrate/internal/provider"
	"xrate/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeLookupError maps service and provider errors onto HTTP statuses.
// Context errors are checked first since fetch failures wrap them.
func writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate), errors.Is(err, service.ErrMissingCurrency):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeJSON(w, http.StatusGatewayTimeout, ErrorResponse{Error: "Lookup timed out"})
	case errors.Is(err, provider.ErrCurrencyNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, provider.ErrFetchFailed):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: "Rate feed unavailable"})
	case errors.Is(err, provider.ErrMalformedDocument),
		errors.Is(err, provider.ErrMalformedRate),
		errors.Is(err, provider.ErrInvalidRate):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}
