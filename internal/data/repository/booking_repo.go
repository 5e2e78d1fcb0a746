package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Reserve atomically re-checks availability for the booking's room type
	// and range and inserts the row. The availability check and the insert
	// are serialized per room type by locking the room_types row, so two
	// concurrent reservations on the same room type cannot both pass the
	// check. Returns the availability seen inside the transaction; on
	// ErrNotEnoughUnits the returned count is what remains for the range.
	Reserve(ctx context.Context, booking *entity.Booking) (int, error)

	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, id int64) error

	// Business queries
	SumOverlappingUnits(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) (int, error)
	SetOrderID(ctx context.Context, bookingID int64, orderID string) error
	MarkPaid(ctx context.Context, bookingID int64, paymentID, signature string) error
	UpdateStatus(ctx context.Context, bookingID int64, status entity.BookingStatus) error
	CancelUnpaidCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, room_type_id, check_in, check_out, units_requested,
	status, is_paid, amount, gateway_order_id, gateway_payment_id, gateway_signature,
	created_at, updated_at`

// overlap is half-open: a booking ending on a date does not collide with a
// range starting on that date.
const sumOverlappingQuery = `
	SELECT COALESCE(SUM(units_requested), 0)
	FROM bookings
	WHERE room_type_id = $1
	  AND status = 'confirmed'
	  AND check_in < $3
	  AND check_out > $2
`

func (r *bookingRepository) Reserve(ctx context.Context, booking *entity.Booking) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin reserve tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the room type row. Every reservation for this room type queues
	// here, which makes the availability check + insert below atomic with
	// respect to concurrent reservations. Unrelated room types are not
	// blocked.
	var totalUnits int
	err = tx.QueryRow(ctx,
		`SELECT total_units FROM room_types WHERE id = $1 AND is_active FOR UPDATE`,
		booking.RoomTypeID,
	).Scan(&totalUnits)
	if err == pgx.ErrNoRows {
		return 0, ErrRoomTypeNotFound
	}
	if err != nil {
		r.log.Error("Failed to lock room type",
			zap.Error(err),
			zap.Int64("room_type_id", booking.RoomTypeID),
		)
		return 0, fmt.Errorf("lock room type %d: %w", booking.RoomTypeID, err)
	}

	var booked int
	err = tx.QueryRow(ctx, sumOverlappingQuery,
		booking.RoomTypeID, booking.CheckIn, booking.CheckOut,
	).Scan(&booked)
	if err != nil {
		r.log.Error("Failed to sum overlapping bookings",
			zap.Error(err),
			zap.Int64("room_type_id", booking.RoomTypeID),
		)
		return 0, fmt.Errorf("sum overlapping bookings for room type %d: %w", booking.RoomTypeID, err)
	}

	available := totalUnits - booked
	if available < 0 {
		available = 0
	}
	if booking.UnitsRequested > available {
		return available, ErrNotEnoughUnits
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (user_id, room_type_id, check_in, check_out, units_requested,
			status, is_paid, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		booking.UserID,
		booking.RoomTypeID,
		booking.CheckIn,
		booking.CheckOut,
		booking.UnitsRequested,
		booking.Status,
		booking.IsPaid,
		booking.Amount,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.Int64("room_type_id", booking.RoomTypeID),
			zap.Int64("user_id", booking.UserID),
		)
		return 0, fmt.Errorf("insert booking for room type %d: %w", booking.RoomTypeID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit reserve tx: %w", err)
	}

	return available - booking.UnitsRequested, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking by ID %d: %w", id, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE gateway_order_id = $1`

	booking, err := r.scanBooking(r.db.QueryRow(ctx, query, orderID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by order ID",
			zap.Error(err),
			zap.String("order_id", orderID),
		)
		return nil, fmt.Errorf("find booking by order ID %s: %w", orderID, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("count bookings by user ID %d: %w", userID, err)
	}

	return count, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return fmt.Errorf("delete booking %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", id)
	}

	r.log.Info("Booking deleted", zap.Int64("booking_id", id))
	return nil
}

func (r *bookingRepository) SumOverlappingUnits(ctx context.Context, roomTypeID int64, checkIn, checkOut time.Time) (int, error) {
	var booked int
	err := r.db.QueryRow(ctx, sumOverlappingQuery, roomTypeID, checkIn, checkOut).Scan(&booked)
	if err != nil {
		r.log.Error("Failed to sum overlapping bookings",
			zap.Error(err),
			zap.Int64("room_type_id", roomTypeID),
		)
		return 0, fmt.Errorf("sum overlapping bookings for room type %d: %w", roomTypeID, err)
	}

	return booked, nil
}

func (r *bookingRepository) SetOrderID(ctx context.Context, bookingID int64, orderID string) error {
	query := `UPDATE bookings SET gateway_order_id = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, orderID)
	if err != nil {
		r.log.Error("Failed to set booking order ID",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.String("order_id", orderID),
		)
		return fmt.Errorf("set order ID on booking %d: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", bookingID)
	}

	return nil
}

func (r *bookingRepository) MarkPaid(ctx context.Context, bookingID int64, paymentID, signature string) error {
	query := `
		UPDATE bookings
		SET is_paid = TRUE, gateway_payment_id = $2, gateway_signature = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.Exec(ctx, query, bookingID, paymentID, signature)
	if err != nil {
		r.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
		)
		return fmt.Errorf("mark booking %d paid: %w", bookingID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found or not confirmed", bookingID)
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %d status to %s: %w", bookingID, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %d not found", bookingID)
	}

	return nil
}

func (r *bookingRepository) CancelUnpaidCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE status = 'confirmed'
		  AND is_paid = FALSE
		  AND gateway_order_id IS NOT NULL
		  AND created_at < $1
	`

	result, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		r.log.Error("Failed to cancel unpaid bookings",
			zap.Error(err),
			zap.Time("cutoff", cutoff),
		)
		return 0, fmt.Errorf("cancel unpaid bookings before %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return result.RowsAffected(), nil
}

func (r *bookingRepository) scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomTypeID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.UnitsRequested,
		&booking.Status,
		&booking.IsPaid,
		&booking.Amount,
		&booking.GatewayOrderID,
		&booking.GatewayPaymentID,
		&booking.GatewaySignature,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}
