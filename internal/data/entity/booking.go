package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking reserves UnitsRequested units of a room type for the half-open
// date range [CheckIn, CheckOut). A booking holds inventory from the moment
// it is created with status confirmed; payment arrives asynchronously and
// flips IsPaid. Cancelled bookings never hold inventory.
type Booking struct {
	Base
	UserID           int64         `db:"user_id"`
	RoomTypeID       int64         `db:"room_type_id"`
	CheckIn          time.Time     `db:"check_in"`
	CheckOut         time.Time     `db:"check_out"`
	UnitsRequested   int           `db:"units_requested"`
	Status           BookingStatus `db:"status"`
	IsPaid           bool          `db:"is_paid"`
	Amount           int64         `db:"amount"` // minor units (paise)
	GatewayOrderID   *string       `db:"gateway_order_id"`
	GatewayPaymentID *string       `db:"gateway_payment_id"`
	GatewaySignature *string       `db:"gateway_signature"`
}

// Nights returns the number of nights in the booking range.
func (b *Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// Overlaps reports whether the booking range intersects [checkIn, checkOut)
// under half-open semantics: a booking checking out on day X does not
// overlap a range checking in on day X.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn)
}

// IsValidDateRange reports whether [checkIn, checkOut) is a positive-length
// stay.
func IsValidDateRange(checkIn, checkOut time.Time) bool {
	return checkIn.Before(checkOut)
}

// IsPositiveAmount reports whether a minor-unit amount is strictly positive.
func IsPositiveAmount(amount int64) bool {
	return amount > 0
}

// Nights counts whole nights between two dates.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}
