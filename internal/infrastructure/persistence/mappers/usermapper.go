package mappers

import (
	"fmt"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/infrastructure/persistence/models"
	"incidentdesk/internal/shared/authorization"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Email:     u.Email(),
		Password:  u.PasswordHash(),
		Role:      string(u.Role()),
		Status:    string(u.Status()),
		CreatedAt: u.CreatedAt(),
	}
}

func (m *UserMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, fmt.Errorf("user model cannot be nil")
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Password,
		authorization.UserRole(model.Role),
		user.Status(model.Status),
		model.CreatedAt,
	)
}

func (m *UserMapper) SessionToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

func (m *UserMapper) SessionToDomain(model *models.SessionModel) (*user.Session, error) {
	if model == nil {
		return nil, fmt.Errorf("session model cannot be nil")
	}
	return &user.Session{
		ID:        model.ID,
		UserID:    model.UserID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}, nil
}
