package request

type CreateBookingRequest struct {
	RoomTypeID     int64  `json:"room_type_id" validate:"required,min=1"`
	CheckIn        string `json:"check_in" validate:"required"`
	CheckOut       string `json:"check_out" validate:"required"`
	UnitsRequested int    `json:"units_requested" validate:"required,min=1"`
}

// PaymentCallbackRequest is what the gateway (or the client relaying it)
// posts back after the payment attempt.
type PaymentCallbackRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}
