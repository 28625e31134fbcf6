package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"fundvault.backend/internal/domain/entities"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createBackingTables(t, db)
	repo := NewBackingRepository(db)
	uow := NewUnitOfWork(db)

	err := uow.Do(context.Background(), func(ctx context.Context) error {
		if err := repo.Create(ctx, &entities.Backing{ProjectID: 1, Backer: "0xalice", Amount: 100}); err != nil {
			return err
		}
		return repo.Create(ctx, &entities.Backing{ProjectID: 1, Backer: "0xbob", Amount: 200})
	})
	require.NoError(t, err)

	_, total, err := repo.ListByProject(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestUnitOfWork_RollsBackAllWritesOnError(t *testing.T) {
	db := newTestDB(t)
	createBackingTables(t, db)
	repo := NewBackingRepository(db)
	uow := NewUnitOfWork(db)

	boom := errors.New("ledger transfer failed")
	err := uow.Do(context.Background(), func(ctx context.Context) error {
		if err := repo.Create(ctx, &entities.Backing{ProjectID: 1, Backer: "0xalice", Amount: 100}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	// the write before the failure is gone
	_, total, err := repo.ListByProject(context.Background(), 1, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGetDB_PrefersTransactionFromContext(t *testing.T) {
	db := newTestDB(t)

	assert.Same(t, db, GetDB(context.Background(), db), "no tx falls back to the connection")

	tx := db.Begin()
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	ctx := context.WithValue(context.Background(), txKey, tx)
	assert.Same(t, tx, GetDB(ctx, db))
}
