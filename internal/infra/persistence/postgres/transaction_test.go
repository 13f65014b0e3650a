package postgres

import (
	"context"
	"testing"

	"presskit/internal/domain/repository"
	"presskit/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockGorm(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "visuals" WHERE "visuals"\."id" IN \(\$1,\$2\)`).
		WithArgs(1, 3).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		return factory.ContentRepo().DeleteVisuals(context.Background(), []uint{1, 3})
	})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockGorm(t)
	txManager := NewTransactionManager(db)
	sentinel := errors.New("stale read")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockGorm(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	require.PanicsWithValue(t, "boom", func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})

	require.NoError(t, mock.ExpectationsWereMet())
}
