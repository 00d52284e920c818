package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type GetTicketCommand struct {
	TicketID    uint
	RequesterID uint
	IsAdmin     bool
}

type AttachmentInfo struct {
	ID           uint
	FilePath     string
	OriginalName string
	FileSize     int64
	MimeType     string
	CreatedAt    time.Time
}

type GetTicketResult struct {
	Ticket      TicketSummary
	Attachments []AttachmentInfo
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, cmd GetTicketCommand) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !cmd.IsAdmin && t.GetOwnerID() != cmd.RequesterID {
		uc.logger.Warnw("ticket access denied",
			"ticket_id", cmd.TicketID, "requester_id", cmd.RequesterID)
		return nil, errors.NewForbiddenError("access to this ticket is not allowed")
	}

	attachments := make([]AttachmentInfo, 0, len(t.Attachments()))
	for _, a := range t.Attachments() {
		attachments = append(attachments, AttachmentInfo{
			ID:           a.ID(),
			FilePath:     a.FilePath(),
			OriginalName: a.OriginalName(),
			FileSize:     a.FileSize(),
			MimeType:     a.MimeType(),
			CreatedAt:    a.CreatedAt(),
		})
	}

	return &GetTicketResult{
		Ticket:      toSummary(t),
		Attachments: attachments,
	}, nil
}
