package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/shared/authorization"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

type CreateUserCommand struct {
	Email    string
	Password string
}

type CreateUserResult struct {
	UserID    uint
	Email     string
	Role      string
	CreatedAt time.Time
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Execute registers a regular account. The role is always user; admin
// accounts are only created by seeding.
func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if !utils.IsValidEmail(cmd.Email) {
		return nil, errors.NewValidationError("invalid email format")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, errors.NewInternalError("failed to check email", err.Error())
	}
	if exists {
		return nil, errors.NewConflictError("email is already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password", err.Error())
	}

	account, err := user.NewUser(cmd.Email, hash, authorization.RoleUser)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, account); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewInternalError("failed to save user", err.Error())
	}

	uc.logger.Infow("user created", "user_id", account.ID(), "email", account.Email())

	return &CreateUserResult{
		UserID:    account.ID(),
		Email:     account.Email(),
		Role:      string(account.Role()),
		CreatedAt: account.CreatedAt(),
	}, nil
}
