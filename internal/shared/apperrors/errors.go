// Package apperrors defines sentinel error values shared across the
// booking flow. Services wrap these with context via fmt.Errorf("%w"),
// and controllers translate them into HTTP statuses with errors.Is, so
// a seat conflict is never collapsed into a generic 500.
package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound is returned when a movie, theater, show or booking id
// does not resolve to a row.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidInput is returned for malformed or missing request fields.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidSeats is returned when a requested seat label is not a
// member of the show's seat grid, or is duplicated within the request.
var ErrInvalidSeats = errors.New("invalid seats")

// ErrSeatConflict is returned when a requested seat is already held by
// a committed booking for the same show.
var ErrSeatConflict = errors.New("seat already booked")

// ErrAmountMismatch is returned when the client-supplied total disagrees
// with the server-computed price.
var ErrAmountMismatch = errors.New("total amount mismatch")

// ErrStoreUnavailable is returned when the underlying store cannot be
// reached. This is the only class where callers may retry.
var ErrStoreUnavailable = errors.New("store unavailable")

// HTTPStatus maps a service error to the HTTP status its controller
// should respond with.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidSeats), errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrSeatConflict):
		return http.StatusConflict
	case errors.Is(err, ErrAmountMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
