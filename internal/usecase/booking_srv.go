package usecase

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/event"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/broker"
	"hotel-booking/pkg/metrics"

	"go.uber.org/zap"
)

const (
	opFetch  = "fetch"
	opCreate = "create"
	opMove   = "move"
)

type BookingService interface {
	GetBooking(ctx context.Context, userID int) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, userID int, req *request.BookingRequest) (*response.BookingResponse, error)
	ChangeBooking(ctx context.Context, userID, bookingID int, req *request.BookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	publisher broker.Publisher
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, publisher broker.Publisher, log *zap.Logger) BookingService {
	if publisher == nil {
		publisher = broker.NopPublisher{}
	}
	return &bookingService{
		repo:      repo,
		publisher: publisher,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context, userID int) (resp *response.BookingResponse, err error) {
	defer func() { s.record(opFetch, err) }()

	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(opFetch, err, zap.Int("user_id", userID))
	}
	if booking == nil {
		return nil, s.fail(opFetch, ErrNotFound, zap.Int("user_id", userID))
	}

	return response.BookingToResponse(booking), nil
}

// CreateBooking checks ticket eligibility first and room capacity second, so
// a user failing both sees the ticket error. Capacity check and insert share
// one room-locked transaction.
func (s *bookingService) CreateBooking(ctx context.Context, userID int, req *request.BookingRequest) (resp *response.BookingResponse, err error) {
	defer func() { s.record(opCreate, err) }()

	fields := []zap.Field{zap.Int("user_id", userID), zap.Int("room_id", req.RoomID)}

	if err := CheckEligibility(ctx, s.repo, userID); err != nil {
		return nil, s.fail(opCreate, err, fields...)
	}

	var booking *entity.Booking
	err = s.repo.Tx.WithinRoomLock(ctx, req.RoomID, func(ctx context.Context, tx *repository.Repository) error {
		existing, err := tx.Booking.FindByUserID(ctx, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrUserAlreadyBooked
		}

		room, err := CheckCapacity(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		created, err := tx.Booking.Create(ctx, userID, room.ID)
		if errors.Is(err, repository.ErrUniqueViolation) {
			return ErrUserAlreadyBooked
		}
		if err != nil {
			return err
		}

		created.Room = room
		booking = created
		return nil
	})
	if err != nil {
		return nil, s.fail(opCreate, err, fields...)
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.ID),
		zap.Int("user_id", userID),
		zap.Int("room_id", booking.RoomID),
	)

	s.publish(ctx, event.RoutingBookingCreated, event.BookingCreated{
		Header:    event.NewHeader(),
		BookingID: booking.ID,
		UserID:    booking.UserID,
		RoomID:    booking.RoomID,
		HotelID:   booking.Room.HotelID,
	})

	return response.BookingToResponse(booking), nil
}

// ChangeBooking moves the user's booking to another room. Ticket eligibility
// is not re-checked; only room existence and capacity are.
func (s *bookingService) ChangeBooking(ctx context.Context, userID, bookingID int, req *request.BookingRequest) (resp *response.BookingResponse, err error) {
	defer func() { s.record(opMove, err) }()

	fields := []zap.Field{
		zap.Int("user_id", userID),
		zap.Int("booking_id", bookingID),
		zap.Int("room_id", req.RoomID),
	}

	current, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, s.fail(opMove, err, fields...)
	}
	if current == nil {
		return nil, s.fail(opMove, ErrUserHasNotBooked, fields...)
	}
	if current.ID != bookingID {
		return nil, s.fail(opMove, ErrBookingNotOwned, fields...)
	}

	var booking *entity.Booking
	err = s.repo.Tx.WithinRoomLock(ctx, req.RoomID, func(ctx context.Context, tx *repository.Repository) error {
		room, err := tx.Room.FindByID(ctx, req.RoomID)
		if err != nil {
			return err
		}
		if room == nil {
			return ErrRoomNotFound
		}

		if _, err := CheckCapacity(ctx, tx, room.ID); err != nil {
			return err
		}

		updated, err := tx.Booking.UpdateRoom(ctx, bookingID, room.ID)
		if err != nil {
			return err
		}
		if updated == nil {
			return ErrUserHasNotBooked
		}

		updated.Room = room
		booking = updated
		return nil
	})
	if err != nil {
		return nil, s.fail(opMove, err, fields...)
	}

	s.log.Info("Booking moved",
		zap.Int("booking_id", booking.ID),
		zap.Int("user_id", userID),
		zap.Int("from_room_id", current.RoomID),
		zap.Int("to_room_id", booking.RoomID),
	)

	s.publish(ctx, event.RoutingBookingMoved, event.BookingMoved{
		Header:     event.NewHeader(),
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		FromRoomID: current.RoomID,
		ToRoomID:   booking.RoomID,
	})

	return response.BookingToResponse(booking), nil
}

// fail logs err and returns it ready for the caller. Booking failures pass
// through untouched; anything else is wrapped with the operation name.
func (s *bookingService) fail(op string, err error, fields ...zap.Field) error {
	if kind, ok := KindOf(err); ok {
		s.log.Warn("Booking "+op+" rejected",
			append(fields, zap.String("kind", string(kind)))...)
		return err
	}

	s.log.Error("Failed to "+op+" booking", append(fields, zap.Error(err))...)
	return fmt.Errorf("%s booking: %w", op, err)
}

func (s *bookingService) record(op string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
		if kind, ok := KindOf(err); ok {
			outcome = string(kind)
		}
	}
	metrics.BookingOperations.WithLabelValues(op, outcome).Inc()
}

// publish never fails the request; the booking is already committed.
func (s *bookingService) publish(ctx context.Context, routingKey string, payload any) {
	if err := s.publisher.Publish(ctx, routingKey, payload); err != nil {
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("routing_key", routingKey),
		)
	}
}
