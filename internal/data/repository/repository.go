package repository

import (
	"errors"

	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

// ErrNotEnoughUnits is returned by BookingRepository.Reserve when the
// requested unit count exceeds the availability computed inside the
// reservation transaction.
var ErrNotEnoughUnits = errors.New("not enough units available")

// ErrRoomTypeNotFound is returned by Reserve when the room type row is
// missing or inactive at lock time.
var ErrRoomTypeNotFound = errors.New("room type not found")

type Repository struct {
	Hotel    HotelRepository
	RoomType RoomTypeRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Hotel:    NewHotelRepository(db, log),
		RoomType: NewRoomTypeRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
