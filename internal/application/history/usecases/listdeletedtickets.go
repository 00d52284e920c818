package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/history"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type DeletedTicketItem struct {
	TicketID       uint
	Title          string
	Description    string
	Priority       string
	ProblemType    string
	Status         string
	CreatedAt      time.Time
	DeletedAt      time.Time
	UserEmail      *string
	UserRole       *string
	DeletionReason *string
}

type ListDeletedTicketsResult struct {
	Tickets []DeletedTicketItem
	Count   int
}

type ListDeletedTicketsUseCase struct {
	historyRepo history.Repository
	logger      logger.Interface
}

func NewListDeletedTicketsUseCase(
	historyRepo history.Repository,
	logger logger.Interface,
) *ListDeletedTicketsUseCase {
	return &ListDeletedTicketsUseCase{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *ListDeletedTicketsUseCase) Execute(ctx context.Context) (*ListDeletedTicketsResult, error) {
	rows, err := uc.historyRepo.ListDeletedTickets(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list deleted tickets", "error", err)
		return nil, errors.NewInternalError("failed to list deleted tickets", err.Error())
	}

	items := make([]DeletedTicketItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, DeletedTicketItem{
			TicketID:       row.TicketID,
			Title:          row.Title,
			Description:    row.Description,
			Priority:       row.Priority,
			ProblemType:    row.ProblemType,
			Status:         row.Status,
			CreatedAt:      row.CreatedAt,
			DeletedAt:      row.DeletedAt,
			UserEmail:      row.UserEmail,
			UserRole:       row.UserRole,
			DeletionReason: row.DeletionReason,
		})
	}

	return &ListDeletedTicketsResult{Tickets: items, Count: len(items)}, nil
}
