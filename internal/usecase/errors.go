package usecase

import (
	"errors"
	"fmt"

	"hotel-booking/pkg/utils"
)

var (
	// ErrNotFound covers unknown booking, order, room type and hotel ids.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is returned when a user acts on a booking they do not own.
	ErrForbidden = errors.New("forbidden")

	// ErrSignatureMismatch is returned when a payment callback fails
	// verification. The booking is cancelled before this is returned.
	ErrSignatureMismatch = errors.New("payment signature verification failed")

	// ErrBookingCancelled is returned when a payment callback arrives for a
	// booking that is already cancelled. Cancelled bookings are never
	// mutated again.
	ErrBookingCancelled = errors.New("booking already cancelled")
)

// ValidationError carries field-keyed, user-correctable messages so form
// consumers can render them next to the offending inputs.
type ValidationError map[string]string

func (e ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e)
}

// CapacityError reports insufficient availability along with how many units
// remain, so the caller can show "only N left".
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("only %d unit(s) available for these dates", e.Available)
}

// GatewayError wraps a payment provider failure. The booking was rolled
// back; the caller may retry.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}
