package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/booking", func(r chi.Router) {
		r.Use(middleware.AuthSession(config.JWT.Secret, repo.Session, log))

		// GET /booking - current booking of the authenticated user
		r.Get("/", bookingHandler.GetBooking)

		// POST /booking - reserve a room
		r.Post("/", bookingHandler.CreateBooking)

		// PUT /booking/{bookingId} - move the booking to another room
		r.Put("/{bookingId}", bookingHandler.ChangeBooking)
	})
}
