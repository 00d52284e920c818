package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type BatchReportUseCase struct {
	ticketRepo ticket.Repository
	renderer   PDFRenderer
	logger     logger.Interface
}

func NewBatchReportUseCase(
	ticketRepo ticket.Repository,
	renderer PDFRenderer,
	logger logger.Interface,
) *BatchReportUseCase {
	return &BatchReportUseCase{
		ticketRepo: ticketRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

// Execute renders the summary report over every unresolved ticket. An
// empty result set is an error rather than an empty document.
func (uc *BatchReportUseCase) Execute(ctx context.Context) (*ReportResult, error) {
	uc.logger.Infow("executing batch report use case")

	rows, err := uc.ticketRepo.GetUnresolved(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load unresolved tickets", "error", err)
		return nil, errors.NewInternalError("failed to load unresolved tickets", err.Error())
	}
	if len(rows) == 0 {
		return nil, errors.NewEmptyResultError("Aucun ticket non résolu trouvé")
	}

	content, err := uc.renderer.GenerateBatch(rows)
	if err != nil {
		uc.logger.Errorw("failed to render batch report", "error", err)
		return nil, errors.NewInternalError("failed to render report", err.Error())
	}

	uc.logger.Infow("batch report generated", "tickets", len(rows))

	return &ReportResult{
		Filename: uc.renderer.Filename(time.Now()),
		Content:  content,
	}, nil
}
