package usecase

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
)

// memStore is an in-memory stand-in for the Postgres repositories. It yields
// between reads and writes so unsynchronised callers would interleave.
type memStore struct {
	mu            sync.Mutex
	enrollments   map[int]*entity.Enrollment // by user ID
	tickets       map[int]*entity.Ticket     // by enrollment ID
	rooms         map[int]*entity.Room
	bookings      map[int]*entity.Booking
	nextBookingID int

	enrollmentErr error

	locksMu   sync.Mutex
	roomLocks map[int]*sync.Mutex
}

func newMemStore() *memStore {
	return &memStore{
		enrollments:   make(map[int]*entity.Enrollment),
		tickets:       make(map[int]*entity.Ticket),
		rooms:         make(map[int]*entity.Room),
		bookings:      make(map[int]*entity.Booking),
		nextBookingID: 1,
		roomLocks:     make(map[int]*sync.Mutex),
	}
}

func (m *memStore) repository() *repository.Repository {
	repo := m.txRepository()
	repo.Tx = memTx{m}
	return repo
}

func (m *memStore) txRepository() *repository.Repository {
	return &repository.Repository{
		Enrollment: memEnrollments{m},
		Ticket:     memTickets{m},
		Room:       memRooms{m},
		Booking:    memBookings{m},
	}
}

func (m *memStore) addRoom(id, capacity int) *entity.Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	room := &entity.Room{
		Base:     entity.Base{ID: id, CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:     fmt.Sprintf("Room %d", id),
		Capacity: capacity,
		HotelID:  1,
	}
	m.rooms[id] = room
	return room
}

func (m *memStore) addEnrollment(userID int) *entity.Enrollment {
	m.mu.Lock()
	defer m.mu.Unlock()
	enrollment := &entity.Enrollment{
		Base:   entity.Base{ID: userID + 1000},
		UserID: userID,
		Name:   fmt.Sprintf("User %d", userID),
	}
	m.enrollments[userID] = enrollment
	return enrollment
}

func (m *memStore) addTicket(userID int, status entity.TicketStatus, includesHotel, isRemote bool) {
	enrollment := m.addEnrollment(userID)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[enrollment.ID] = &entity.Ticket{
		Base:         entity.Base{ID: userID + 2000},
		EnrollmentID: enrollment.ID,
		Status:       status,
		TicketType: entity.TicketType{
			Name:          "Presencial",
			IncludesHotel: includesHotel,
			IsRemote:      isRemote,
		},
	}
}

func (m *memStore) addValidUser(userID int) {
	m.addTicket(userID, entity.TicketStatusPaid, true, false)
}

func (m *memStore) setTicketStatus(userID int, status entity.TicketStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tickets[m.enrollments[userID].ID].Status = status
}

func (m *memStore) addBooking(userID, roomID int) *entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertBookingLocked(userID, roomID)
}

func (m *memStore) insertBookingLocked(userID, roomID int) *entity.Booking {
	now := time.Now()
	booking := &entity.Booking{
		Base:   entity.Base{ID: m.nextBookingID, CreatedAt: now, UpdatedAt: now},
		UserID: userID,
		RoomID: roomID,
	}
	m.nextBookingID++
	m.bookings[booking.ID] = booking
	return booking
}

func (m *memStore) occupancy(roomID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.countLocked(roomID)
}

func (m *memStore) countLocked(roomID int) int {
	n := 0
	for _, b := range m.bookings {
		if b.RoomID == roomID {
			n++
		}
	}
	return n
}

func (m *memStore) booking(id int) entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.bookings[id]
}

type memEnrollments struct{ m *memStore }

func (r memEnrollments) FindByUserID(_ context.Context, userID int) (*entity.Enrollment, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if r.m.enrollmentErr != nil {
		return nil, r.m.enrollmentErr
	}
	return r.m.enrollments[userID], nil
}

type memTickets struct{ m *memStore }

func (r memTickets) FindByEnrollmentID(_ context.Context, enrollmentID int) (*entity.Ticket, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.tickets[enrollmentID]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

type memRooms struct{ m *memStore }

func (r memRooms) FindByID(_ context.Context, id int) (*entity.Room, error) {
	runtime.Gosched()
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	room, ok := r.m.rooms[id]
	if !ok {
		return nil, nil
	}
	copied := *room
	return &copied, nil
}

type memBookings struct{ m *memStore }

func (r memBookings) FindByUserID(_ context.Context, userID int) (*entity.Booking, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, b := range r.m.bookings {
		if b.UserID == userID {
			copied := *b
			if room, ok := r.m.rooms[b.RoomID]; ok {
				roomCopy := *room
				copied.Room = &roomCopy
			}
			return &copied, nil
		}
	}
	return nil, nil
}

func (r memBookings) CountByRoomID(_ context.Context, roomID int) (int, error) {
	r.m.mu.Lock()
	n := r.m.countLocked(roomID)
	r.m.mu.Unlock()
	runtime.Gosched()
	return n, nil
}

func (r memBookings) Create(_ context.Context, userID, roomID int) (*entity.Booking, error) {
	runtime.Gosched()
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, b := range r.m.bookings {
		if b.UserID == userID {
			return nil, fmt.Errorf("create booking for user %d: %w", userID, repository.ErrUniqueViolation)
		}
	}
	copied := *r.m.insertBookingLocked(userID, roomID)
	return &copied, nil
}

func (r memBookings) UpdateRoom(_ context.Context, bookingID, roomID int) (*entity.Booking, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	b, ok := r.m.bookings[bookingID]
	if !ok {
		return nil, nil
	}
	b.RoomID = roomID
	b.UpdatedAt = time.Now()
	copied := *b
	return &copied, nil
}

// memTx serialises work per room the way the advisory lock does.
type memTx struct{ m *memStore }

func (t memTx) WithinRoomLock(ctx context.Context, roomID int, fn func(ctx context.Context, repo *repository.Repository) error) error {
	t.m.locksMu.Lock()
	lock, ok := t.m.roomLocks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		t.m.roomLocks[roomID] = lock
	}
	t.m.locksMu.Unlock()

	lock.Lock()
	defer lock.Unlock()
	return fn(ctx, t.m.txRepository())
}

// recordingPublisher keeps the routing keys it was asked to publish.
type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []any
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.keys = append(p.keys, routingKey)
	p.events = append(p.events, payload)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) routingKeys() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.keys...)
}
