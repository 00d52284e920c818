package usecases

import (
	"bytes"
	"context"
	"time"

	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
	"incidentdesk/internal/shared/utils"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	ProblemType string
	UserID      uint
	Attachments []AttachmentUpload
}

type CreateTicketResult struct {
	TicketID        uint
	Status          string
	CreatedAt       time.Time
	AttachmentCount int
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	txManager   TransactionManager
	store       FileStore
	maxFileSize int64
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	txManager TransactionManager,
	store FileStore,
	maxFileSize int64,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		txManager:   txManager,
		store:       store,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Execute validates every upload before any write, then persists the
// ticket and its attachments in one transaction. Files land on disk inside
// the transaction scope; on rollback they are removed again so a failed
// creation leaves nothing behind.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "user_id", cmd.UserID)

	title := utils.SanitizeText(cmd.Title)
	description := utils.SanitizeText(cmd.Description)

	for _, upload := range cmd.Attachments {
		if err := validateAttachment(upload, uc.maxFileSize); err != nil {
			uc.logger.Warnw("attachment rejected", "file", upload.OriginalName, "error", err)
			return nil, err
		}
	}

	newTicket, err := ticket.NewTicket(title, description, cmd.Priority, cmd.ProblemType, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	var storedFiles []string
	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return errors.NewInternalError("failed to save ticket", err.Error())
		}

		for _, upload := range cmd.Attachments {
			filename, err := uc.store.GenerateFilename(newTicket.ID(), upload.OriginalName)
			if err != nil {
				return errors.NewStorageError("failed to generate attachment name", err.Error())
			}

			storedPath, err := uc.store.Save(filename, bytes.NewReader(upload.Content))
			if err != nil {
				return errors.NewStorageError("failed to store attachment", err.Error())
			}
			storedFiles = append(storedFiles, filename)

			mimeType := sniffMimeType(upload.Content)
			attachment, err := ticket.NewAttachment(newTicket.ID(), storedPath, upload.OriginalName, upload.Size, mimeType)
			if err != nil {
				return errors.NewValidationError(err.Error())
			}

			if err := uc.ticketRepo.SaveAttachment(txCtx, attachment); err != nil {
				return errors.NewInternalError("failed to save attachment", err.Error())
			}

			if err := newTicket.AddAttachment(attachment); err != nil {
				return errors.NewInternalError(err.Error())
			}
		}

		return nil
	})

	if txErr != nil {
		uc.cleanupFiles(storedFiles)
		uc.logger.Errorw("ticket creation rolled back", "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"attachments", len(newTicket.Attachments()))

	return &CreateTicketResult{
		TicketID:        newTicket.ID(),
		Status:          newTicket.Status().String(),
		CreatedAt:       newTicket.CreatedAt(),
		AttachmentCount: len(newTicket.Attachments()),
	}, nil
}

func (uc *CreateTicketUseCase) cleanupFiles(filenames []string) {
	for _, name := range filenames {
		if err := uc.store.Remove(name); err != nil {
			uc.logger.Warnw("failed to remove orphaned attachment file", "file", name, "error", err)
		}
	}
}
