package wire

import (
	"hotel-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/payment/callback - Gateway posts here after the payment
	// attempt; authenticity comes from the HMAC signature, not a session.
	r.Post("/api/payment/callback", paymentHandler.Callback)
}
