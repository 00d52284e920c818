package usecases

import (
	"bytes"
	"context"
	"io"
	"time"

	"incidentdesk/internal/domain/screenshot"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

// FileStore is the subset of disk storage a screenshot save needs.
type FileStore interface {
	GenerateFilename(ownerID uint, originalName string) (string, error)
	Save(filename string, src io.Reader) (string, error)
	Remove(filename string) error
}

type SaveScreenshotCommand struct {
	UserID       uint
	OriginalName string
	Content      []byte
	Description  string
}

type SaveScreenshotResult struct {
	ScreenshotID uint
	FilePath     string
	CreatedAt    time.Time
}

type SaveScreenshotUseCase struct {
	screenshotRepo screenshot.Repository
	store          FileStore
	logger         logger.Interface
}

func NewSaveScreenshotUseCase(
	screenshotRepo screenshot.Repository,
	store FileStore,
	logger logger.Interface,
) *SaveScreenshotUseCase {
	return &SaveScreenshotUseCase{
		screenshotRepo: screenshotRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *SaveScreenshotUseCase) Execute(ctx context.Context, cmd SaveScreenshotCommand) (*SaveScreenshotResult, error) {
	description := utils.SanitizeText(cmd.Description)
	if description == "" {
		return nil, errors.NewValidationError("description is required")
	}
	if len(cmd.Content) == 0 {
		return nil, errors.NewValidationError("screenshot file is required")
	}

	filename, err := uc.store.GenerateFilename(cmd.UserID, cmd.OriginalName)
	if err != nil {
		return nil, errors.NewStorageError("failed to generate file name", err.Error())
	}

	storedPath, err := uc.store.Save(filename, bytes.NewReader(cmd.Content))
	if err != nil {
		return nil, errors.NewStorageError("failed to store screenshot", err.Error())
	}

	capture, err := screenshot.NewScreenshot(cmd.UserID, storedPath, description)
	if err != nil {
		uc.cleanup(filename)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.screenshotRepo.Save(ctx, capture); err != nil {
		uc.cleanup(filename)
		uc.logger.Errorw("failed to save screenshot", "error", err)
		return nil, errors.NewInternalError("failed to save screenshot", err.Error())
	}

	uc.logger.Infow("screenshot saved", "screenshot_id", capture.ID(), "user_id", cmd.UserID)

	return &SaveScreenshotResult{
		ScreenshotID: capture.ID(),
		FilePath:     capture.FilePath(),
		CreatedAt:    capture.CreatedAt(),
	}, nil
}

func (uc *SaveScreenshotUseCase) cleanup(filename string) {
	if err := uc.store.Remove(filename); err != nil {
		uc.logger.Warnw("failed to remove orphaned screenshot file", "file", filename, "error", err)
	}
}
