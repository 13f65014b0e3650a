package postgres

import (
	"context"
	"fmt"

	"presskit/internal/domain/repository"
	"presskit/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repository instances bound to a single
// GORM transaction. In GORM a transaction handle is also a *gorm.DB.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// ContentRepo creates a content repository bound to the transaction.
func (f *gormRepositoryFactory) ContentRepo() repository.ContentRepository {
	return NewContentRepository(f.tx)
}

// AdminRepo creates an admin user repository bound to the transaction.
func (f *gormRepositoryFactory) AdminRepo() repository.AdminUserRepository {
	return NewAdminUserRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// Any error returned by fn rolls back every write performed through the factory.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic before re-panicking so the connection is not
	// left holding an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
