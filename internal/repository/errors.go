// Package repository holds the parameterized SQL behind the waitlist API.
// Handlers depend on it through small interfaces and translate its errors
// into HTTP envelopes.
package repository

import "errors"

// ErrInvalidID is returned before any SQL is issued when the caller passes
// an id the table can never contain.
var ErrInvalidID = errors.New("invalid id")

// StoreError wraps a failed store round-trip.  Error returns the driver's
// message unchanged so API clients see what the database reported.
type StoreError struct {
	Op  string // repository operation, e.g. "create"
	Err error  // underlying driver or database/sql error
}

func (e *StoreError) Error() string { return e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsStoreError reports whether err came from the backing store.
func IsStoreError(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
