package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int       `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingResponse struct {
	ID        int           `json:"id"`
	UserID    int           `json:"userId"`
	RoomID    int           `json:"roomId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Room      *RoomResponse `json:"room,omitempty"`
}

// BookingIDResponse is what create and move return to the client.
type BookingIDResponse struct {
	BookingID int `json:"bookingId"`
}

// Helper converters
func RoomToResponse(room *entity.Room) *RoomResponse {
	if room == nil {
		return nil
	}
	return &RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		HotelID:   room.HotelID,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func BookingToResponse(booking *entity.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        booking.ID,
		UserID:    booking.UserID,
		RoomID:    booking.RoomID,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
		Room:      RoomToResponse(booking.Room),
	}
}
