package request

type CreateHotelRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	City        string `json:"city" validate:"required,max=120"`
	Address     string `json:"address" validate:"max=500"`
	Description string `json:"description"`
	OwnerID     *int64 `json:"owner_id,omitempty"`
}

type CreateRoomTypeRequest struct {
	HotelID       int64  `json:"hotel_id" validate:"required,min=1"`
	Name          string `json:"name" validate:"required,max=120"`
	Capacity      int    `json:"capacity" validate:"required,min=1"`
	PricePerNight int64  `json:"price_per_night" validate:"required,min=0"`
	TotalUnits    int    `json:"total_units" validate:"min=0"`
}
