package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/infrastructure/persistence/mappers"
	"incidentdesk/internal/infrastructure/persistence/models"
	"incidentdesk/internal/shared/authorization"
	"incidentdesk/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("email = ? AND status = ?", email, string(user.StatusActive)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.UserModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return count > 0, nil
}

func (r *UserRepository) ListRegular(ctx context.Context) ([]*user.User, error) {
	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role = ?", string(authorization.RoleUser)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *UserRepository) DeleteRegular(ctx context.Context, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("id = ? AND role = ?", userID, string(authorization.RoleUser)).
		Delete(&models.UserModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user not found")
	}
	return nil
}
