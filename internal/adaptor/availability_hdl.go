package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityHandler struct {
	service usecase.AvailabilityService
	log     *zap.Logger
}

func NewAvailabilityHandler(service usecase.AvailabilityService, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log.With(zap.String("handler", "availability")),
	}
}

// GetAvailability handles GET /api/availability?room_type_id&check_in&check_out (public)
func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	roomTypeID, err := utils.ParseID(query.Get("room_type_id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room_type_id", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), roomTypeID,
		query.Get("check_in"), query.Get("check_out"))
	if err != nil {
		handleServiceError(w, h.log, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetHotelAvailability handles GET /api/hotels/{id}/availability (public)
func (h *AvailabilityHandler) GetHotelAvailability(w http.ResponseWriter, r *http.Request) {
	hotelID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid hotel ID", nil)
		return
	}

	query := r.URL.Query()
	availability, err := h.service.GetHotelAvailability(r.Context(), hotelID,
		query.Get("check_in"), query.Get("check_out"))
	if err != nil {
		handleServiceError(w, h.log, err, "get hotel availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
