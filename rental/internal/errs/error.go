package errs

import (
	"errors"
)

var (
	// ErrNotFound is the storage-level absence signal shared by all
	// repository backends. Services translate it into the entity-specific
	// errors below before it crosses the transport boundary.
	ErrNotFound = errors.New("not found")

	ErrCarNotFound     = errors.New("Car not found")
	ErrBookingNotFound = errors.New("Booking not found")
	ErrNotAvailable    = errors.New("Car is not available for the selected dates")
	ErrInvalidInput    = errors.New("invalid input")
)
