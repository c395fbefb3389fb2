package entity

// Booking is the user's current room reservation. A user holds at most one;
// moving to another room rewrites RoomID in place.
type Booking struct {
	Base
	UserID int `db:"user_id"`
	RoomID int `db:"room_id"`

	// Room is filled by queries that join rooms.
	Room *Room `db:"-"`
}
