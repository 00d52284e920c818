package usecases

import (
	"context"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.SessionID == "" {
		return nil
	}

	if err := uc.sessionRepo.Delete(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to delete session", "session_id", cmd.SessionID, "error", err)
		return errors.NewInternalError("failed to close session", err.Error())
	}

	uc.logger.Infow("session closed", "session_id", cmd.SessionID)
	return nil
}
