package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.BookingService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Callback handles POST /api/payment/callback. The gateway posts
// form-encoded fields server-to-server; a client relaying the widget
// result sends JSON. Both shapes are accepted.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCallback(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.HandlePaymentCallback(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "payment callback")
		return
	}

	utils.ResponseSuccess(w, "Payment verified", booking)
}

func decodeCallback(r *http.Request) (*request.PaymentCallbackRequest, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return &request.PaymentCallbackRequest{
			OrderID:   r.PostFormValue("order_id"),
			PaymentID: r.PostFormValue("payment_id"),
			Signature: r.PostFormValue("signature"),
		}, nil
	}

	var req request.PaymentCallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
