package entity

type Room struct {
	Base
	Name     string `db:"name"`
	Capacity int    `db:"capacity"`
	HotelID  int    `db:"hotel_id"`
}
