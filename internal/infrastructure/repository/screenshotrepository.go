package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"incidentdesk/internal/domain/screenshot"
	"incidentdesk/internal/infrastructure/persistence/mappers"
	"incidentdesk/internal/infrastructure/persistence/models"
	"incidentdesk/internal/shared/db"
)

type ScreenshotRepository struct {
	db     *gorm.DB
	mapper *mappers.ScreenshotMapper
}

func NewScreenshotRepository(database *gorm.DB) *ScreenshotRepository {
	return &ScreenshotRepository{
		db:     database,
		mapper: mappers.NewScreenshotMapper(),
	}
}

func (r *ScreenshotRepository) Save(ctx context.Context, s *screenshot.Screenshot) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save screenshot: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ScreenshotRepository) ListByUserID(ctx context.Context, userID uint) ([]*screenshot.Screenshot, error) {
	var rows []models.ScreenshotModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list screenshots: %w", err)
	}

	screenshots := make([]*screenshot.Screenshot, 0, len(rows))
	for i := range rows {
		s, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		screenshots = append(screenshots, s)
	}
	return screenshots, nil
}
