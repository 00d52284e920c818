package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

// PDFRenderer turns report read models into PDF bytes.
type PDFRenderer interface {
	GenerateSingle(row *ticket.ReportRow, attachments []*ticket.Attachment) ([]byte, error)
	GenerateBatch(rows []*ticket.ReportRow) ([]byte, error)
	Filename(now time.Time) string
}

type SingleReportCommand struct {
	TicketID uint
}

type ReportResult struct {
	Filename string
	Content  []byte
}

type SingleReportUseCase struct {
	ticketRepo ticket.Repository
	renderer   PDFRenderer
	logger     logger.Interface
}

func NewSingleReportUseCase(
	ticketRepo ticket.Repository,
	renderer PDFRenderer,
	logger logger.Interface,
) *SingleReportUseCase {
	return &SingleReportUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute renders the detail report for one ticket. Only live tickets in
// the no_resolu status are exportable; anything else is NotFound.
func (uc *SingleReportUseCase) Execute(ctx context.Context, cmd SingleReportCommand) (*ReportResult, error) {
	uc.logger.Infow("executing single report use case", "ticket_id", cmd.TicketID)

	row, err := uc.ticketRepo.GetUnresolvedByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket for report", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load ticket", err.Error())
	}
	if row == nil {
		return nil, errors.NewNotFoundError("ticket not found or not unresolved")
	}

	attachments, err := uc.ticketRepo.GetAttachmentsByTicketID(ctx, row.Ticket.ID())
	if err != nil {
		uc.logger.Errorw("failed to load attachments for report", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to load attachments", err.Error())
	}

	content, err := uc.renderer.GenerateSingle(row, attachments)
	if err != nil {
		uc.logger.Errorw("failed to render report", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to render report", err.Error())
	}

	return &ReportResult{
		Filename: uc.renderer.Filename(time.Now()),
		Content:  content,
	}, nil
}
