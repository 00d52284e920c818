package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"incidentdesk/internal/domain/user"
	"incidentdesk/internal/infrastructure/persistence/mappers"
	"incidentdesk/internal/infrastructure/persistence/models"
	"incidentdesk/internal/shared/db"
)

type SessionRepository struct {
	db     *gorm.DB
	mapper *mappers.UserMapper
}

func NewSessionRepository(database *gorm.DB) *SessionRepository {
	return &SessionRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *SessionRepository) Save(ctx context.Context, session *user.Session) error {
	model := r.mapper.SessionToModel(session)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("id = ?", sessionID).
		Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("expires_at < ?", time.Now()).
		Delete(&models.SessionModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return nil
}
