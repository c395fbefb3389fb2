// Package event defines the messages published to the broker after a booking
// changes. Consumers get enough to act without reading the database.
package event

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoutingBookingCreated = "booking.created"
	RoutingBookingMoved   = "booking.moved"
)

type Header struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewHeader() Header {
	return Header{
		ID:         uuid.NewString(),
		OccurredAt: time.Now().UTC(),
	}
}

type BookingCreated struct {
	Header    Header `json:"header"`
	BookingID int    `json:"booking_id"`
	UserID    int    `json:"user_id"`
	RoomID    int    `json:"room_id"`
	HotelID   int    `json:"hotel_id"`
}

type BookingMoved struct {
	Header     Header `json:"header"`
	BookingID  int    `json:"booking_id"`
	UserID     int    `json:"user_id"`
	FromRoomID int    `json:"from_room_id"`
	ToRoomID   int    `json:"to_room_id"`
}
