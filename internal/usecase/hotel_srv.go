package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// HotelService provisions inventory. Listing and filtering hotels is the
// job of an upstream catalog service.
type HotelService interface {
	CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, ValidationError(errs)
	}

	now := time.Now().UTC()
	hotel := &entity.Hotel{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		City:        req.City,
		Address:     req.Address,
		Description: req.Description,
		OwnerID:     req.OwnerID,
	}

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		s.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel created",
		zap.Int64("hotel_id", hotel.ID),
		zap.String("name", hotel.Name),
		zap.String("city", hotel.City),
	)

	return response.HotelToResponse(hotel), nil
}

func (s *hotelService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, ValidationError(errs)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("create room type: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("hotel %d: %w", req.HotelID, ErrNotFound)
	}

	now := time.Now().UTC()
	roomType := &entity.RoomType{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		HotelID:       req.HotelID,
		Name:          req.Name,
		Capacity:      req.Capacity,
		PricePerNight: req.PricePerNight,
		TotalUnits:    req.TotalUnits,
		IsActive:      true,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		s.log.Error("Failed to create room type",
			zap.Error(err),
			zap.Int64("hotel_id", req.HotelID),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info("Room type created",
		zap.Int64("room_type_id", roomType.ID),
		zap.Int64("hotel_id", roomType.HotelID),
		zap.Int("total_units", roomType.TotalUnits),
		zap.Int64("price_per_night", roomType.PricePerNight),
	)

	return response.RoomTypeToResponse(roomType), nil
}
