package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/finvoy/ledgerbook/internal/adapter/http/dto"
	"github.com/finvoy/ledgerbook/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrLineNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEntryAlreadyPosted),
		errors.Is(err, domain.ErrDuplicateEntryNumber),
		errors.Is(err, domain.ErrDuplicateAccountNumber):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEntryNotBalanced),
		errors.Is(err, domain.ErrInsufficientLines):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAmountTooLarge),
		errors.Is(err, domain.ErrMissingAccount),
		errors.Is(err, domain.ErrUnknownAccountType),
		errors.Is(err, domain.ErrInvalidEntryNumber),
		errors.Is(err, domain.ErrInvalidAccountNumber),
		errors.Is(err, domain.ErrInvalidHolderName),
		errors.Is(err, domain.ErrDescriptionTooLong),
		errors.Is(err, domain.ErrReferenceTooLong):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// postingErrorType labels posting failures for metrics.
func postingErrorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrEntryAlreadyPosted):
		return "already_posted"
	case errors.Is(err, domain.ErrEntryNotBalanced):
		return "not_balanced"
	case errors.Is(err, domain.ErrInsufficientLines):
		return "insufficient_lines"
	case errors.Is(err, domain.ErrEntryNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrPersistence):
		return "persistence"
	default:
		return "other"
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
