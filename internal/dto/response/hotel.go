package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type HotelResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	OwnerID     *int64    `json:"owner_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type RoomTypeResponse struct {
	ID            int64     `json:"id"`
	HotelID       int64     `json:"hotel_id"`
	Name          string    `json:"name"`
	Capacity      int       `json:"capacity"`
	PricePerNight int64     `json:"price_per_night"`
	TotalUnits    int       `json:"total_units"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}

func HotelToResponse(hotel *entity.Hotel) *HotelResponse {
	return &HotelResponse{
		ID:          hotel.ID,
		Name:        hotel.Name,
		City:        hotel.City,
		Address:     hotel.Address,
		Description: hotel.Description,
		OwnerID:     hotel.OwnerID,
		CreatedAt:   hotel.CreatedAt,
	}
}

func RoomTypeToResponse(roomType *entity.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:            roomType.ID,
		HotelID:       roomType.HotelID,
		Name:          roomType.Name,
		Capacity:      roomType.Capacity,
		PricePerNight: roomType.PricePerNight,
		TotalUnits:    roomType.TotalUnits,
		IsActive:      roomType.IsActive,
		CreatedAt:     roomType.CreatedAt,
	}
}
