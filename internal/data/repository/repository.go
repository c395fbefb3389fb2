package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the stores the booking engine reads and writes.
// Tx is nil on a Repository handed out inside a transaction.
type Repository struct {
	Session    SessionRepository
	Enrollment EnrollmentRepository
	Ticket     TicketRepository
	Room       RoomRepository
	Booking    BookingRepository
	Tx         TxManager
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	repo := newQuerierRepository(db, log)
	repo.Tx = NewTxManager(db, log)
	return repo
}

func newQuerierRepository(q database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Session:    NewSessionRepository(q, log),
		Enrollment: NewEnrollmentRepository(q, log),
		Ticket:     NewTicketRepository(q, log),
		Room:       NewRoomRepository(q, log),
		Booking:    NewBookingRepository(q, log),
	}
}
