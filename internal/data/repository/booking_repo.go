package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	FindByUserID(ctx context.Context, userID int) (*entity.Booking, error)
	CountByRoomID(ctx context.Context, roomID int) (int, error)
	Create(ctx context.Context, userID, roomID int) (*entity.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int) (*entity.Booking, error)
}

type bookingRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewBookingRepository(db database.Querier, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// FindByUserID returns the user's booking joined with its room, or nil.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID int) (*entity.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
	`

	var booking entity.Booking
	var room entity.Room
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	booking.Room = &room
	return &booking, nil
}

func (r *bookingRepository) CountByRoomID(ctx context.Context, roomID int) (int, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	var count int
	if err := r.db.QueryRow(ctx, query, roomID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by room ID",
			zap.Error(err),
			zap.Int("room_id", roomID),
		)
		return 0, fmt.Errorf("count bookings by room ID %d: %w", roomID, err)
	}

	return count, nil
}

func (r *bookingRepository) Create(ctx context.Context, userID, roomID int) (*entity.Booking, error) {
	query := `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, user_id, room_id, created_at, updated_at
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, userID, roomID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if isUniqueViolation(err) {
		r.log.Warn("Booking already exists for user",
			zap.Int("user_id", userID),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("create booking for user %d: %w", userID, ErrUniqueViolation)
	}
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("create booking for user %d: %w", userID, err)
	}

	return &booking, nil
}

// UpdateRoom points an existing booking at another room. It returns nil
// when no booking has the given ID.
func (r *bookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int) (*entity.Booking, error) {
	query := `
		UPDATE bookings
		SET room_id = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, user_id, room_id, created_at, updated_at
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, bookingID, roomID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to update booking room",
			zap.Error(err),
			zap.Int("booking_id", bookingID),
			zap.Int("room_id", roomID),
		)
		return nil, fmt.Errorf("update booking %d room to %d: %w", bookingID, roomID, err)
	}

	return &booking, nil
}
