package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCapacity(t *testing.T) {
	ctx := context.Background()

	t.Run("missing room", func(t *testing.T) {
		store := newMemStore()

		room, err := CheckCapacity(ctx, store.repository(), 42)

		assert.Nil(t, room)
		assert.ErrorIs(t, err, ErrRoomNotFound)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("zero capacity", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(1, 0)

		_, err := CheckCapacity(ctx, store.repository(), 1)

		assert.ErrorIs(t, err, ErrRoomOutOfCapacity)
	})

	t.Run("last free slot", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(1, 2)
		store.addBooking(10, 1)

		room, err := CheckCapacity(ctx, store.repository(), 1)

		require.NoError(t, err)
		assert.Equal(t, 1, room.ID)
	})

	t.Run("full room", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(1, 2)
		store.addBooking(10, 1)
		store.addBooking(11, 1)

		_, err := CheckCapacity(ctx, store.repository(), 1)

		assert.ErrorIs(t, err, ErrRoomOutOfCapacity)
	})

	t.Run("bookings in other rooms don't count", func(t *testing.T) {
		store := newMemStore()
		store.addRoom(1, 1)
		store.addRoom(2, 1)
		store.addBooking(10, 2)

		_, err := CheckCapacity(ctx, store.repository(), 1)

		assert.NoError(t, err)
	})
}
