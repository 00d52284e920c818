package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type ListTicketsCommand struct {
	Status   string
	Priority string
	// OwnerID scopes the listing to one user's tickets. Zero means all
	// tickets; handlers set it for non-admin requesters.
	OwnerID   uint
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

type TicketSummary struct {
	ID          uint
	UserID      uint
	Title       string
	Description string
	Priority    string
	ProblemType string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListTicketsResult struct {
	Tickets []TicketSummary
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, cmd ListTicketsCommand) (*ListTicketsResult, error) {
	filter := ticket.Filter{
		Page:      cmd.Page,
		PageSize:  cmd.PageSize,
		SortBy:    cmd.SortBy,
		SortOrder: cmd.SortOrder,
	}

	if cmd.Status != "" {
		status, err := vo.NewTicketStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if cmd.Priority != "" {
		filter.Priority = &cmd.Priority
	}
	if cmd.OwnerID != 0 {
		filter.UserID = &cmd.OwnerID
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets", err.Error())
	}

	summaries := make([]TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		summaries = append(summaries, toSummary(t))
	}

	return &ListTicketsResult{Tickets: summaries, Total: total}, nil
}

func toSummary(t *ticket.Ticket) TicketSummary {
	return TicketSummary{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		ProblemType: t.ProblemType().String(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}
