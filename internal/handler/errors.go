package handler

import (
	"errors"
	"net/http"

	"github.com/tablequeue/waitlist/internal/repository"
)

// Validation errors are raised before the store is touched and always map to
// 400.
var (
	ErrMissingFields = errors.New("missing parameters")
	ErrInvalidBody   = errors.New("invalid request body")
	ErrInvalidID     = repository.ErrInvalidID
)

// Messages sent for ErrMissingFields; host clients match on them.
const (
	msgCreateMissing = "Unable to add to waitlist - missing parameters."
	msgUpdateMissing = "Unable to update waitlist - missing parameters."
)

// FieldError reports a present field whose value has the wrong type or
// fails a constraint.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string { return "invalid value for " + e.Field }

// IsValidation reports whether err belongs to the validation family.
func IsValidation(err error) bool {
	var fe *FieldError
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, ErrInvalidID) ||
		errors.As(err, &fe)
}

// storeStatus picks the status for a store failure.  Writes report 404 and
// everything else 500; existing hosts key off these codes.
func storeStatus(write bool) int {
	if write {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
