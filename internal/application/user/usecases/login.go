package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/infrastructure/ratelimit"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uint
	Email       string
	Role        string
	AccessToken string
	ExpiresAt   time.Time
	SessionID   string
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	tokens      TokenIssuer
	limiter     LoginLimiter
	limitConfig ratelimit.LoginLimitConfig
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	limiter LoginLimiter,
	limitConfig ratelimit.LoginLimitConfig,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		limiter:     limiter,
		limitConfig: limitConfig,
		logger:      logger,
	}
}

// Execute authenticates an active account. Attempts count against the
// sliding window before credentials are checked, so hammering a valid
// address locks it out the same way as an invalid one.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if !utils.IsValidEmail(cmd.Email) {
		return nil, errors.NewValidationError("invalid email format")
	}
	if len(cmd.Password) == 0 {
		return nil, errors.NewValidationError("password is required")
	}

	allowed, err := uc.limiter.Allow("login:"+cmd.Email, uc.limitConfig)
	if err != nil {
		uc.logger.Errorw("login rate limiter failed", "error", err)
		return nil, errors.NewInternalError("failed to check rate limit", err.Error())
	}
	if !allowed {
		uc.logger.Warnw("login rate limit exceeded", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("too many login attempts, try again later")
	}

	account, err := uc.userRepo.GetActiveByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Warnw("login failed: unknown or inactive account", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	if err := uc.hasher.Verify(cmd.Password, account.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed: bad password", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	token, expiresAt, sessionID, err := uc.openSession(ctx, account)
	if err != nil {
		return nil, err
	}

	// Successful login clears the failure window for this address.
	if err := uc.limiter.Reset("login:" + cmd.Email); err != nil {
		uc.logger.Warnw("failed to reset login limiter", "email", cmd.Email, "error", err)
	}

	uc.logger.Infow("login successful", "user_id", account.ID(), "role", account.Role())

	return &LoginResult{
		UserID:      account.ID(),
		Email:       account.Email(),
		Role:        string(account.Role()),
		AccessToken: token,
		ExpiresAt:   expiresAt,
		SessionID:   sessionID,
	}, nil
}

func (uc *LoginUseCase) openSession(ctx context.Context, account *user.User) (string, time.Time, string, error) {
	sessionID := uuid.NewString()

	token, expiresAt, err := uc.tokens.Generate(account.ID(), sessionID, account.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "error", err)
		return "", time.Time{}, "", errors.NewInternalError("failed to issue token", err.Error())
	}

	session := &user.Session{
		ID:        sessionID,
		UserID:    account.ID(),
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := uc.sessionRepo.Save(ctx, session); err != nil {
		uc.logger.Errorw("failed to save session", "error", err)
		return "", time.Time{}, "", errors.NewInternalError("failed to open session", err.Error())
	}

	return token, expiresAt, sessionID, nil
}
