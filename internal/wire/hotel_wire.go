package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireHotel(r chi.Router, hotelHandler *adaptor.HotelHandler, availabilityHandler *adaptor.AvailabilityHandler, log *zap.Logger) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/availability - Remaining units for a room type and range
	r.Get("/api/availability", availabilityHandler.GetAvailability)

	// GET /api/hotels/{id}/availability - Per-room-type availability map
	r.Get("/api/hotels/{id}/availability", availabilityHandler.GetHotelAvailability)

	// ==================== ADMIN ROUTES ====================
	// Inventory provisioning (trusted upstream admin gateway)
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/admin/hotels - Register a hotel
		r.Post("/hotels", hotelHandler.CreateHotel)

		// POST /api/admin/room-types - Register a room type for a hotel
		r.Post("/room-types", hotelHandler.CreateRoomType)
	})
}
