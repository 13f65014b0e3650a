package postgres

import (
	"context"

	"presskit/internal/domain/entity"
	"presskit/internal/domain/repository"
	"presskit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminUserRepository implements the domain.AdminUserRepository interface.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// FindByEmail retrieves an admin account by exact email match.
func (repo *adminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var adminM model.AdminUserModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&adminM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminUserDomain(&adminM), nil
}

func toAdminUserDomain(data *model.AdminUserModel) *entity.AdminUser {
	if data == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
