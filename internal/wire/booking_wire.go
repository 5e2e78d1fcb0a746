package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, log *zap.Logger) {
	// ==================== PROTECTED ROUTES (require identity) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Identity(log))

		// POST /api/bookings - Reserve units and open a payment order
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - Booking history, most recent first
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// POST /api/bookings/{id}/cancel - Cancel own booking (idempotent)
		r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
	})
}
