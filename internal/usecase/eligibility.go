package usecase

import (
	"context"

	"hotel-booking/internal/data/repository"
)

// CheckEligibility decides whether userID holds a ticket that entitles them
// to a room. Checks run in order and stop at the first failure.
func CheckEligibility(ctx context.Context, repo *repository.Repository, userID int) error {
	enrollment, err := repo.Enrollment.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return ErrEnrollmentNotFound
	}

	ticket, err := repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return ErrTicketNotFound
	}

	if !ticket.AllowsHotelBooking() {
		return ErrInvalidTicket
	}

	return nil
}
