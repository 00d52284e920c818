package mappers

import (
	"fmt"

	"incidentdesk/internal/domain/screenshot"
	"incidentdesk/internal/infrastructure/persistence/models"
)

type ScreenshotMapper struct{}

func NewScreenshotMapper() *ScreenshotMapper {
	return &ScreenshotMapper{}
}

func (m *ScreenshotMapper) ToModel(s *screenshot.Screenshot) *models.ScreenshotModel {
	return &models.ScreenshotModel{
		ID:          s.ID(),
		UserID:      s.UserID(),
		FilePath:    s.FilePath(),
		Description: s.Description(),
		CreatedAt:   s.CreatedAt(),
	}
}

func (m *ScreenshotMapper) ToDomain(model *models.ScreenshotModel) (*screenshot.Screenshot, error) {
	if model == nil {
		return nil, fmt.Errorf("screenshot model cannot be nil")
	}

	return screenshot.ReconstructScreenshot(
		model.ID,
		model.UserID,
		model.FilePath,
		model.Description,
		model.CreatedAt,
	)
}
