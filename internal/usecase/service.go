package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/broker"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, publisher broker.Publisher, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, publisher, log),
	}
}
