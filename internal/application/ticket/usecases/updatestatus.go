package usecases

import (
	"context"
	"time"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type UpdateStatusCommand struct {
	TicketID uint
	Status   string
	ActorID  uint
}

type UpdateStatusResult struct {
	TicketID  uint
	Status    string
	UpdatedAt time.Time
}

type UpdateStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute changes a live ticket's status. Unlike deletion and restore,
// status changes are not recorded in historique.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*UpdateStatusResult, error) {
	uc.logger.Infow("executing update status use case",
		"ticket_id", cmd.TicketID, "status", cmd.Status, "actor_id", cmd.ActorID)

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Warnw("ticket not found for status update", "ticket_id", cmd.TicketID)
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if err := t.ChangeStatus(newStatus); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket status", err.Error())
	}

	uc.logger.Warnw("status change not recorded in historique",
		"ticket_id", cmd.TicketID, "status", newStatus.String(), "actor_id", cmd.ActorID)

	return &UpdateStatusResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
