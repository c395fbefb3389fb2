package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// roomLockNamespace is the first key of the two-key advisory lock, keeping
// room locks apart from any other advisory lock users of the database.
const roomLockNamespace = 7001

// TxManager runs work inside a transaction that holds an exclusive lock on
// one room. Everything fn does through repo commits or rolls back together,
// and no other WithinRoomLock call for the same room runs concurrently.
type TxManager interface {
	WithinRoomLock(ctx context.Context, roomID int, fn func(ctx context.Context, repo *Repository) error) error
}

type txManager struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTxManager(db database.PgxIface, log *zap.Logger) TxManager {
	return &txManager{
		db:  db,
		log: log.With(zap.String("repository", "tx")),
	}
}

func (m *txManager) WithinRoomLock(ctx context.Context, roomID int, fn func(ctx context.Context, repo *Repository) error) (err error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		m.log.Error("Failed to begin transaction", zap.Error(err), zap.Int("room_id", roomID))
		return fmt.Errorf("begin transaction for room %d: %w", roomID, err)
	}

	defer func() {
		// A panicking fn must still release the room lock and the connection.
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				m.log.Error("Failed to roll back after panic", zap.Error(rbErr), zap.Int("room_id", roomID))
			}
			panic(p)
		}
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			err = errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
	}()

	// Released automatically at commit or rollback.
	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, roomLockNamespace, roomID); err != nil {
		m.log.Error("Failed to lock room", zap.Error(err), zap.Int("room_id", roomID))
		return fmt.Errorf("lock room %d: %w", roomID, err)
	}

	if err = fn(ctx, newQuerierRepository(tx, m.log)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		m.log.Error("Failed to commit transaction", zap.Error(err), zap.Int("room_id", roomID))
		return fmt.Errorf("commit transaction for room %d: %w", roomID, err)
	}

	return nil
}
