package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("validation failed")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// Fixed response bodies for authorization failures. Token verification
// failures of any kind map to the same unauthorized body so the response
// does not reveal whether a token was missing, malformed, tampered with,
// or expired.
const (
	MsgUnauthorized = "unauthorized access"
	MsgForbidden    = "forbidden access"
)

// RespondError maps domain errors to HTTP responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		Message(w, http.StatusUnauthorized, MsgUnauthorized)
	case errors.Is(err, ErrForbidden):
		Message(w, http.StatusForbidden, MsgForbidden)
	case errors.Is(err, ErrNotFound):
		Message(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrValidation):
		Message(w, http.StatusBadRequest, "invalid payload")
	default:
		Message(w, http.StatusInternalServerError, "internal error")
	}
}
