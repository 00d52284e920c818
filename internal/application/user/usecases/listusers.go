package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type UserSummary struct {
	ID        uint
	Email     string
	Role      string
	Status    string
	CreatedAt time.Time
}

type ListUsersResult struct {
	Users []UserSummary
	Count int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute lists regular accounts only; admins never appear in the
// management view.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (*ListUsersResult, error) {
	accounts, err := uc.userRepo.ListRegular(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("failed to list users", err.Error())
	}

	users := make([]UserSummary, 0, len(accounts))
	for _, a := range accounts {
		users = append(users, UserSummary{
			ID:        a.ID(),
			Email:     a.Email(),
			Role:      string(a.Role()),
			Status:    string(a.Status()),
			CreatedAt: a.CreatedAt(),
		})
	}

	return &ListUsersResult{Users: users, Count: len(users)}, nil
}
