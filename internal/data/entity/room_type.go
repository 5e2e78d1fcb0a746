package entity

// RoomType is a bookable inventory class within a hotel, not a single
// physical room. TotalUnits counts interchangeable physical rooms.
// PricePerNight is stored in minor currency units (paise).
type RoomType struct {
	Base
	HotelID       int64  `db:"hotel_id"`
	Name          string `db:"name"`
	Capacity      int    `db:"capacity"`
	PricePerNight int64  `db:"price_per_night"`
	TotalUnits    int    `db:"total_units"`
	IsActive      bool   `db:"is_active"`
}
