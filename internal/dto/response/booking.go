package response

import (
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"
)

type BookingResponse struct {
	ID             int64                `json:"id"`
	UserID         int64                `json:"user_id"`
	RoomTypeID     int64                `json:"room_type_id"`
	RoomTypeName   string               `json:"room_type_name,omitempty"`
	HotelName      string               `json:"hotel_name,omitempty"`
	CheckIn        string               `json:"check_in"`
	CheckOut       string               `json:"check_out"`
	UnitsRequested int                  `json:"units_requested"`
	Status         entity.BookingStatus `json:"status"`
	IsPaid         bool                 `json:"is_paid"`
	Amount         int64                `json:"amount"`
	OrderID        string               `json:"order_id,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

// BookingCreatedResponse is the payment-order descriptor handed to the
// caller so it can open the payment widget.
type BookingCreatedResponse struct {
	Booking  BookingResponse `json:"booking"`
	OrderID  string          `json:"order_id"`
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
}

type AvailabilityResponse struct {
	RoomTypeID     int64  `json:"room_type_id"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	AvailableUnits int    `json:"available_units"`
}

type HotelAvailabilityResponse struct {
	HotelID   int64                  `json:"hotel_id"`
	CheckIn   string                 `json:"check_in"`
	CheckOut  string                 `json:"check_out"`
	RoomTypes []RoomTypeAvailability `json:"room_types"`
}

type RoomTypeAvailability struct {
	RoomTypeID     int64  `json:"room_type_id"`
	Name           string `json:"name"`
	Capacity       int    `json:"capacity"`
	PricePerNight  int64  `json:"price_per_night"`
	AvailableUnits int    `json:"available_units"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking, roomTypeName, hotelName string) *BookingResponse {
	var orderID string
	if booking.GatewayOrderID != nil {
		orderID = *booking.GatewayOrderID
	}

	return &BookingResponse{
		ID:             booking.ID,
		UserID:         booking.UserID,
		RoomTypeID:     booking.RoomTypeID,
		RoomTypeName:   roomTypeName,
		HotelName:      hotelName,
		CheckIn:        booking.CheckIn.Format(utils.DateLayout),
		CheckOut:       booking.CheckOut.Format(utils.DateLayout),
		UnitsRequested: booking.UnitsRequested,
		Status:         booking.Status,
		IsPaid:         booking.IsPaid,
		Amount:         booking.Amount,
		OrderID:        orderID,
		CreatedAt:      booking.CreatedAt,
	}
}
