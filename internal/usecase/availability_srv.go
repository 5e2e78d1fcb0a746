package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type AvailabilityService interface {
	// AvailableUnits computes how many units of the room type remain free
	// over [checkIn, checkOut). Never negative.
	AvailableUnits(ctx context.Context, roomType *entity.RoomType, checkIn, checkOut time.Time) (int, error)

	GetAvailability(ctx context.Context, roomTypeID int64, checkInRaw, checkOutRaw string) (*response.AvailabilityResponse, error)
	GetHotelAvailability(ctx context.Context, hotelID int64, checkInRaw, checkOutRaw string) (*response.HotelAvailabilityResponse, error)
}

type availabilityService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAvailabilityService(repo *repository.Repository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		repo: repo,
		log:  log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) AvailableUnits(ctx context.Context, roomType *entity.RoomType, checkIn, checkOut time.Time) (int, error) {
	booked, err := s.repo.Booking.SumOverlappingUnits(ctx, roomType.ID, checkIn, checkOut)
	if err != nil {
		return 0, fmt.Errorf("available units for room type %d: %w", roomType.ID, err)
	}

	// Confirmed bookings alone hold inventory; an absent overlap sums to 0
	// in the query. Clamp so an over-booked dataset can never report a
	// negative count.
	available := roomType.TotalUnits - booked
	if available < 0 {
		available = 0
	}

	return available, nil
}

func (s *availabilityService) GetAvailability(ctx context.Context, roomTypeID int64, checkInRaw, checkOutRaw string) (*response.AvailabilityResponse, error) {
	checkIn, checkOut, errs := parseDateRange(checkInRaw, checkOutRaw)
	if len(errs) > 0 {
		return nil, ValidationError(errs)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	if roomType == nil || !roomType.IsActive {
		return nil, fmt.Errorf("room type %d: %w", roomTypeID, ErrNotFound)
	}

	available, err := s.AvailableUnits(ctx, roomType, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	return &response.AvailabilityResponse{
		RoomTypeID:     roomType.ID,
		CheckIn:        checkIn.Format(utils.DateLayout),
		CheckOut:       checkOut.Format(utils.DateLayout),
		AvailableUnits: available,
	}, nil
}

func (s *availabilityService) GetHotelAvailability(ctx context.Context, hotelID int64, checkInRaw, checkOutRaw string) (*response.HotelAvailabilityResponse, error) {
	checkIn, checkOut, errs := parseDateRange(checkInRaw, checkOutRaw)
	if len(errs) > 0 {
		return nil, ValidationError(errs)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel availability: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %d: %w", hotelID, ErrNotFound)
	}

	roomTypes, err := s.repo.RoomType.FindActiveByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel availability: %w", err)
	}

	result := &response.HotelAvailabilityResponse{
		HotelID:  hotel.ID,
		CheckIn:  checkIn.Format(utils.DateLayout),
		CheckOut: checkOut.Format(utils.DateLayout),
	}

	for _, roomType := range roomTypes {
		available, err := s.AvailableUnits(ctx, roomType, checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		result.RoomTypes = append(result.RoomTypes, response.RoomTypeAvailability{
			RoomTypeID:     roomType.ID,
			Name:           roomType.Name,
			Capacity:       roomType.Capacity,
			PricePerNight:  roomType.PricePerNight,
			AvailableUnits: available,
		})
	}

	return result, nil
}

// parseDateRange validates a query date range: both dates must parse and
// the range must be a positive-length stay. Past ranges are allowed for
// availability queries.
func parseDateRange(checkInRaw, checkOutRaw string) (time.Time, time.Time, map[string]string) {
	errs := make(map[string]string)

	var checkIn, checkOut time.Time
	var err error

	if checkInRaw == "" {
		errs["check_in"] = "Check-in date is required."
	} else if checkIn, err = utils.ParseDate(checkInRaw); err != nil {
		errs["check_in"] = "Invalid check-in date format."
	}

	if checkOutRaw == "" {
		errs["check_out"] = "Check-out date is required."
	} else if checkOut, err = utils.ParseDate(checkOutRaw); err != nil {
		errs["check_out"] = "Invalid check-out date format."
	}

	if len(errs) == 0 && !entity.IsValidDateRange(checkIn, checkOut) {
		errs["check_out"] = "Check-out must be after check-in."
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}

	return checkIn, checkOut, nil
}
