package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id int64) (*entity.RoomType, error)
	FindActiveByHotelID(ctx context.Context, hotelID int64) ([]*entity.RoomType, error)
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (hotel_id, name, capacity, price_per_night, total_units, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		roomType.HotelID,
		roomType.Name,
		roomType.Capacity,
		roomType.PricePerNight,
		roomType.TotalUnits,
		roomType.IsActive,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	).Scan(&roomType.ID)

	if err != nil {
		r.log.Error("Failed to create room type",
			zap.Error(err),
			zap.Int64("hotel_id", roomType.HotelID),
			zap.String("name", roomType.Name),
		)
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id int64) (*entity.RoomType, error) {
	query := `
		SELECT id, hotel_id, name, capacity, price_per_night, total_units, is_active, created_at, updated_at
		FROM room_types
		WHERE id = $1
	`

	var roomType entity.RoomType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomType.ID,
		&roomType.HotelID,
		&roomType.Name,
		&roomType.Capacity,
		&roomType.PricePerNight,
		&roomType.TotalUnits,
		&roomType.IsActive,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.Int64("room_type_id", id),
		)
		return nil, fmt.Errorf("find room type by ID %d: %w", id, err)
	}

	return &roomType, nil
}

func (r *roomTypeRepository) FindActiveByHotelID(ctx context.Context, hotelID int64) ([]*entity.RoomType, error) {
	query := `
		SELECT id, hotel_id, name, capacity, price_per_night, total_units, is_active, created_at, updated_at
		FROM room_types
		WHERE hotel_id = $1 AND is_active
		ORDER BY price_per_night
	`

	rows, err := r.db.Query(ctx, query, hotelID)
	if err != nil {
		r.log.Error("Failed to find room types by hotel ID",
			zap.Error(err),
			zap.Int64("hotel_id", hotelID),
		)
		return nil, fmt.Errorf("find room types by hotel ID %d: %w", hotelID, err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		var roomType entity.RoomType
		err := rows.Scan(
			&roomType.ID,
			&roomType.HotelID,
			&roomType.Name,
			&roomType.Capacity,
			&roomType.PricePerNight,
			&roomType.TotalUnits,
			&roomType.IsActive,
			&roomType.CreatedAt,
			&roomType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, &roomType)
	}

	return roomTypes, nil
}
