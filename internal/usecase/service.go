package usecase

import (
	"context"

	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// PaymentGateway is the booking service's view of the payment provider.
// pkg/payment implements it against Razorpay; tests implement it in memory.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (string, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Service struct {
	Booking      BookingService
	Availability AvailabilityService
	Hotel        HotelService
}

func NewService(repo *repository.Repository, gateway PaymentGateway, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Booking:      NewBookingService(repo, gateway, config, log),
		Availability: NewAvailabilityService(repo, log),
		Hotel:        NewHotelService(repo, log),
	}
}
