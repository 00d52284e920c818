package usecases

import (
	"context"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute hard-deletes a regular account. Admin accounts are not
// deletable through this path; the repository refuses them.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.userRepo.DeleteRegular(ctx, cmd.UserID); err != nil {
		uc.logger.Warnw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return errors.NewNotFoundError("user not found")
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)
	return nil
}
