package usecase

import "errors"

// Kind names a booking failure. Callers branch on Kind, never on Message.
type Kind string

const (
	KindNotFound           Kind = "NotFound"
	KindEnrollmentNotFound Kind = "EnrollmentNotFound"
	KindTicketNotFound     Kind = "TicketNotFound"
	KindInvalidTicket      Kind = "InvalidTicket"
	KindRoomOutOfCapacity  Kind = "RoomOutOfCapacity"
	KindUserHasNotBooked   Kind = "UserHasNotBooked"
	KindUserAlreadyBooked  Kind = "UserAlreadyBooked"
)

// BookingError is an expected, terminal outcome of a booking operation.
type BookingError struct {
	Kind    Kind
	Message string
}

func (e *BookingError) Error() string { return e.Message }

// Is matches any BookingError of the same kind, so ErrRoomNotFound is also ErrNotFound.
func (e *BookingError) Is(target error) bool {
	t, ok := target.(*BookingError)
	return ok && t.Kind == e.Kind
}

var (
	ErrNotFound = &BookingError{
		Kind:    KindNotFound,
		Message: "No result for this search!",
	}
	ErrRoomNotFound = &BookingError{
		Kind:    KindNotFound,
		Message: "The room you are choosing does not exist.",
	}
	ErrEnrollmentNotFound = &BookingError{
		Kind:    KindEnrollmentNotFound,
		Message: "User Enrollment Not Found. You can't make a booking.",
	}
	ErrTicketNotFound = &BookingError{
		Kind:    KindTicketNotFound,
		Message: "User Ticket Not Found. You can't make a booking.",
	}
	ErrInvalidTicket = &BookingError{
		Kind:    KindInvalidTicket,
		Message: "Your ticket is invalid. Verify if it includes Hotel, is not remote and was paid before making a booking",
	}
	ErrRoomOutOfCapacity = &BookingError{
		Kind:    KindRoomOutOfCapacity,
		Message: "The room you are choosing is out of capacity. You have to choose another.",
	}
	ErrUserHasNotBooked = &BookingError{
		Kind:    KindUserHasNotBooked,
		Message: "You can't change the room if you have not booked anyone before.",
	}
	// ErrBookingNotOwned shares ErrUserHasNotBooked's kind: the caller holds
	// no booking under the given ID.
	ErrBookingNotOwned = &BookingError{
		Kind:    KindUserHasNotBooked,
		Message: "The booking you are trying to change does not belong to you.",
	}
	ErrUserAlreadyBooked = &BookingError{
		Kind:    KindUserAlreadyBooked,
		Message: "You already have a booking. Change its room instead of booking again.",
	}
)

// KindOf returns the failure kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var bookingErr *BookingError
	if errors.As(err, &bookingErr) {
		return bookingErr.Kind, true
	}
	return "", false
}
