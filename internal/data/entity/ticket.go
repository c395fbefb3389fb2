package entity

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	Base
	Name          string `db:"name"`
	Price         int    `db:"price"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
}

type Ticket struct {
	Base
	TicketTypeID int          `db:"ticket_type_id"`
	EnrollmentID int          `db:"enrollment_id"`
	Status       TicketStatus `db:"status"`

	TicketType TicketType `db:"-"`
}

// AllowsHotelBooking reports whether the ticket entitles its holder to a room:
// hotel included, in person, and paid.
func (t *Ticket) AllowsHotelBooking() bool {
	if !t.TicketType.IncludesHotel || t.TicketType.IsRemote || t.Status != TicketStatusPaid {
		return false
	}
	return true
}
