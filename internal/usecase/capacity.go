package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
)

// CheckCapacity returns the room when it can take one more booking.
// Run it through a repository from TxManager.WithinRoomLock when the result
// guards a write, otherwise the count can be stale by the time of insert.
func CheckCapacity(ctx context.Context, repo *repository.Repository, roomID int) (*entity.Room, error) {
	occupancy, err := repo.Booking.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	room, err := repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if occupancy >= room.Capacity {
		return nil, ErrRoomOutOfCapacity
	}

	return room, nil
}
