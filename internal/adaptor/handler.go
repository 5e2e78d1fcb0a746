package adaptor

import (
	"errors"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking      *BookingHandler
	Payment      *PaymentHandler
	Availability *AvailabilityHandler
	Hotel        *HotelHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Booking:      NewBookingHandler(service.Booking, log),
		Payment:      NewPaymentHandler(service.Booking, log),
		Availability: NewAvailabilityHandler(service.Availability, log),
		Hotel:        NewHotelHandler(service.Hotel, log),
	}
}

// handleServiceError maps the service error taxonomy onto HTTP responses.
// Validation and capacity errors go back as field-keyed maps; everything
// else collapses to a status code and message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr usecase.ValidationError
	var capacityErr *usecase.CapacityError
	var gatewayErr *usecase.GatewayError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Any("errors", map[string]string(validationErr)),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", map[string]string(validationErr))

	case errors.As(err, &capacityErr):
		log.Warn(operation+" failed - insufficient availability",
			zap.Int("available", capacityErr.Available),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, capacityErr.Error(), map[string]any{
			"units_requested": capacityErr.Error(),
			"available":       capacityErr.Available,
		})

	case errors.As(err, &gatewayErr):
		log.Error(operation+" failed - payment gateway",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "Payment provider unavailable, please try again later")

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseForbidden(w, "You do not own this booking")

	case errors.Is(err, usecase.ErrBookingCancelled):
		log.Warn(operation+" failed - booking cancelled",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, "Booking is already cancelled")

	case errors.Is(err, usecase.ErrSignatureMismatch):
		// No verification details leak to the caller.
		log.Warn(operation+" failed - signature mismatch",
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Payment verification failed", nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
