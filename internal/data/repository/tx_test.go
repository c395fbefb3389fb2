package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var lockQuery = regexp.QuoteMeta(`SELECT pg_advisory_xact_lock($1, $2)`)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func TestWithinRoomLock(t *testing.T) {
	ctx := context.Background()

	t.Run("locks the room and commits", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).
			WithArgs(roomLockNamespace, 5).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE room_id = \$1`).
			WithArgs(5).
			WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
		mock.ExpectCommit()

		var count int
		err := NewTxManager(mock, zap.NewNop()).WithinRoomLock(ctx, 5, func(ctx context.Context, repo *Repository) error {
			assert.Nil(t, repo.Tx)
			var err error
			count, err = repo.Booking.CountByRoomID(ctx, 5)
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).
			WithArgs(roomLockNamespace, 5).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectRollback()

		failure := errors.New("room is full")
		err := NewTxManager(mock, zap.NewNop()).WithinRoomLock(ctx, 5, func(context.Context, *Repository) error {
			return failure
		})

		assert.ErrorIs(t, err, failure)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when the lock fails", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).
			WithArgs(roomLockNamespace, 5).
			WillReturnError(errors.New("lock timeout"))
		mock.ExpectRollback()

		called := false
		err := NewTxManager(mock, zap.NewNop()).WithinRoomLock(ctx, 5, func(context.Context, *Repository) error {
			called = true
			return nil
		})

		assert.ErrorContains(t, err, "lock room 5")
		assert.False(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and re-panics when fn panics", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin()
		mock.ExpectExec(lockQuery).
			WithArgs(roomLockNamespace, 5).
			WillReturnResult(pgxmock.NewResult("SELECT", 1))
		mock.ExpectRollback()

		assert.PanicsWithValue(t, "boom", func() {
			_ = NewTxManager(mock, zap.NewNop()).WithinRoomLock(ctx, 5, func(context.Context, *Repository) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool closed"))

		err := NewTxManager(mock, zap.NewNop()).WithinRoomLock(ctx, 5, func(context.Context, *Repository) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})

		assert.ErrorContains(t, err, "begin transaction for room 5")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
