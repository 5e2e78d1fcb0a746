package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking validates the request, atomically reserves units
	// against availability and registers a payment order. The returned
	// descriptor carries everything the payment widget needs.
	CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)

	GetUserBookings(ctx context.Context, userID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, bookingID, userID int64) error

	// HandlePaymentCallback verifies the gateway signature and applies the
	// payment transition. Safe to call more than once for the same order.
	HandlePaymentCallback(ctx context.Context, req *request.PaymentCallbackRequest) (*response.BookingResponse, error)

	// ExpireUnpaidBookings cancels confirmed, unpaid bookings whose payment
	// order was created longer than olderThan ago.
	ExpireUnpaidBookings(ctx context.Context, olderThan time.Duration) (int64, error)
}

type bookingService struct {
	repo    *repository.Repository
	gateway PaymentGateway
	config  *utils.Config
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, gateway PaymentGateway, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		gateway: gateway,
		config:  config,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	// Struct-level rules first, then date rules; all applicable field
	// errors are collected so form consumers can show them together.
	errs := utils.ValidateStruct(req)
	if errs == nil {
		errs = make(map[string]string)
	}

	var checkIn, checkOut time.Time
	var err error

	if req.CheckIn != "" {
		if checkIn, err = utils.ParseDate(req.CheckIn); err != nil {
			errs["check_in"] = "Invalid check-in date format."
		}
	}
	if req.CheckOut != "" {
		if checkOut, err = utils.ParseDate(req.CheckOut); err != nil {
			errs["check_out"] = "Invalid check-out date format."
		}
	}

	if errs["check_in"] == "" && errs["check_out"] == "" && req.CheckIn != "" && req.CheckOut != "" {
		if !entity.IsValidDateRange(checkIn, checkOut) {
			errs["check_out"] = "Check-out must be after check-in."
		}
		if checkIn.Before(utils.Today()) {
			errs["check_in"] = "Check-in cannot be in the past."
		}
	}

	if len(errs) > 0 {
		s.log.Warn("Create booking validation failed",
			zap.Int64("user_id", userID),
			zap.Any("errors", errs),
		)
		return nil, ValidationError(errs)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if roomType == nil || !roomType.IsActive {
		return nil, fmt.Errorf("room type %d: %w", req.RoomTypeID, ErrNotFound)
	}

	// Amount is fixed at creation and computed entirely in minor units.
	nights := entity.Nights(checkIn, checkOut)
	amount := int64(nights) * int64(req.UnitsRequested) * roomType.PricePerNight
	if !entity.IsPositiveAmount(amount) {
		s.log.Error("Computed booking amount not positive",
			zap.Int64("room_type_id", roomType.ID),
			zap.Int64("price_per_night", roomType.PricePerNight),
			zap.Int64("amount", amount),
		)
		return nil, ValidationError{"amount": "Booking amount must be positive."}
	}

	now := time.Now().UTC()
	booking := &entity.Booking{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         userID,
		RoomTypeID:     roomType.ID,
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		UnitsRequested: req.UnitsRequested,
		Status:         entity.BookingStatusConfirmed,
		IsPaid:         false,
		Amount:         amount,
	}

	// The availability re-check and the insert happen inside one
	// serialized reservation; the gateway call below stays outside it so
	// provider latency never blocks other bookings.
	if available, err := s.repo.Booking.Reserve(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrNotEnoughUnits) {
			// available is what the reservation transaction saw, so the
			// "only N left" message matches the state that rejected us.
			s.log.Info("Booking rejected for capacity",
				zap.Int64("room_type_id", roomType.ID),
				zap.Int("requested", req.UnitsRequested),
				zap.Int("available", available),
			)
			return nil, &CapacityError{Available: available}
		}
		if errors.Is(err, repository.ErrRoomTypeNotFound) {
			return nil, fmt.Errorf("room type %d: %w", req.RoomTypeID, ErrNotFound)
		}
		s.log.Error("Failed to reserve booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("room_type_id", req.RoomTypeID),
		)
		return nil, fmt.Errorf("reserve booking: %w", err)
	}

	receipt := fmt.Sprintf("booking_%d", booking.ID)
	orderID, err := s.gateway.CreateOrder(ctx, amount, s.config.Gateway.Currency, receipt)
	if err != nil {
		// No orphan bookings without a payment order: release the units.
		if delErr := s.repo.Booking.Delete(ctx, booking.ID); delErr != nil {
			s.log.Error("Failed to roll back booking after gateway failure",
				zap.Error(delErr),
				zap.Int64("booking_id", booking.ID),
			)
		}
		s.log.Error("Payment order creation failed",
			zap.Error(err),
			zap.Int64("booking_id", booking.ID),
		)
		return nil, &GatewayError{Op: "create order", Err: err}
	}

	if err := s.repo.Booking.SetOrderID(ctx, booking.ID, orderID); err != nil {
		if delErr := s.repo.Booking.Delete(ctx, booking.ID); delErr != nil {
			s.log.Error("Failed to roll back booking after order persist failure",
				zap.Error(delErr),
				zap.Int64("booking_id", booking.ID),
			)
		}
		return nil, fmt.Errorf("persist order ID on booking %d: %w", booking.ID, err)
	}
	booking.GatewayOrderID = &orderID

	s.log.Info("Booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("order_id", orderID),
		zap.Int64("user_id", userID),
		zap.Int64("room_type_id", roomType.ID),
		zap.Int("units", req.UnitsRequested),
		zap.Int("nights", nights),
		zap.Int64("amount", amount),
	)

	return &response.BookingCreatedResponse{
		Booking:  *s.buildBookingResponse(ctx, booking),
		OrderID:  orderID,
		Amount:   amount,
		Currency: s.config.Gateway.Currency,
	}, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID int64, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user bookings", zap.Error(err))
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = *s.buildBookingResponse(ctx, booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID int64) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}
	if booking == nil {
		return fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
	}

	if booking.UserID != userID {
		s.log.Warn("Cancel attempted by non-owner",
			zap.Int64("booking_id", bookingID),
			zap.Int64("owner_id", booking.UserID),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("booking %d: %w", bookingID, ErrForbidden)
	}

	// Idempotent: cancelling a cancelled booking is a no-op.
	if booking.Status == entity.BookingStatusCancelled {
		return nil
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, entity.BookingStatusCancelled); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %d: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
	)

	return nil
}

func (s *bookingService) HandlePaymentCallback(ctx context.Context, req *request.PaymentCallbackRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, ValidationError(errs)
	}

	booking, err := s.repo.Booking.FindByOrderID(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("payment callback: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("order %s: %w", req.OrderID, ErrNotFound)
	}

	verified := s.gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature)

	if booking.Status == entity.BookingStatusCancelled {
		// Terminal; payment fields are never written after cancellation.
		s.log.Warn("Payment callback for cancelled booking",
			zap.Int64("booking_id", booking.ID),
			zap.String("order_id", req.OrderID),
		)
		return nil, fmt.Errorf("booking %d: %w", booking.ID, ErrBookingCancelled)
	}

	if !verified {
		if booking.IsPaid {
			// A paid booking stays paid; reject the bad callback without
			// touching state.
			return nil, fmt.Errorf("order %s: %w", req.OrderID, ErrSignatureMismatch)
		}

		if err := s.repo.Booking.UpdateStatus(ctx, booking.ID, entity.BookingStatusCancelled); err != nil {
			s.log.Error("Failed to cancel booking after failed verification",
				zap.Error(err),
				zap.Int64("booking_id", booking.ID),
			)
			return nil, fmt.Errorf("cancel booking %d after failed verification: %w", booking.ID, err)
		}

		s.log.Warn("Payment verification failed, booking cancelled",
			zap.Int64("booking_id", booking.ID),
			zap.String("order_id", req.OrderID),
		)
		return nil, fmt.Errorf("order %s: %w", req.OrderID, ErrSignatureMismatch)
	}

	if booking.IsPaid {
		// Duplicate verified callback: no-op.
		s.log.Info("Duplicate payment callback ignored",
			zap.Int64("booking_id", booking.ID),
			zap.String("order_id", req.OrderID),
		)
		return s.buildBookingResponse(ctx, booking), nil
	}

	if err := s.repo.Booking.MarkPaid(ctx, booking.ID, req.PaymentID, req.Signature); err != nil {
		s.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.Int64("booking_id", booking.ID),
		)
		return nil, fmt.Errorf("mark booking %d paid: %w", booking.ID, err)
	}

	booking.IsPaid = true
	booking.GatewayPaymentID = &req.PaymentID
	booking.GatewaySignature = &req.Signature

	s.log.Info("Payment confirmed",
		zap.Int64("booking_id", booking.ID),
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
	)

	return s.buildBookingResponse(ctx, booking), nil
}

func (s *bookingService) ExpireUnpaidBookings(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	expired, err := s.repo.Booking.CancelUnpaidCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("expire unpaid bookings: %w", err)
	}

	if expired > 0 {
		s.log.Info("Expired unpaid bookings",
			zap.Int64("count", expired),
			zap.Time("cutoff", cutoff),
		)
	}

	return expired, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) buildBookingResponse(ctx context.Context, booking *entity.Booking) *response.BookingResponse {
	var roomTypeName, hotelName string

	roomType, _ := s.repo.RoomType.FindByID(ctx, booking.RoomTypeID)
	if roomType != nil {
		roomTypeName = roomType.Name

		hotel, _ := s.repo.Hotel.FindByID(ctx, roomType.HotelID)
		if hotel != nil {
			hotelName = hotel.Name
		}
	}

	return response.BookingToResponse(booking, roomTypeName, hotelName)
}
