package usecases

import (
	"context"
	"encoding/json"

	"incidentdesk/internal/domain/history"
	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type SoftDeleteTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type SoftDeleteTicketResult struct {
	TicketID uint
}

type SoftDeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo history.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewSoftDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo history.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *SoftDeleteTicketUseCase {
	return &SoftDeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute soft-deletes a live ticket and appends the deleted historique
// entry carrying the full row snapshot, all in one transaction.
func (uc *SoftDeleteTicketUseCase) Execute(ctx context.Context, cmd SoftDeleteTicketCommand) (*SoftDeleteTicketResult, error) {
	uc.logger.Infow("executing soft delete ticket use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError("ticket not found")
		}

		snapshot, err := json.Marshal(t.Snapshot())
		if err != nil {
			return errors.NewInternalError("failed to snapshot ticket", err.Error())
		}

		if err := t.MarkDeleted(); err != nil {
			return errors.NewNotFoundError("ticket not found")
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return errors.NewInternalError("failed to delete ticket", err.Error())
		}

		entry, err := history.NewEntry(t.ID(), cmd.ActorID, history.ActionDeleted,
			snapshot, "Ticket supprimé: "+t.Title())
		if err != nil {
			return errors.NewInternalError("failed to build historique entry", err.Error())
		}

		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return errors.NewInternalError("failed to save historique entry", err.Error())
		}

		return nil
	})

	if txErr != nil {
		uc.logger.Errorw("soft delete rolled back", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("ticket soft deleted", "ticket_id", cmd.TicketID)

	return &SoftDeleteTicketResult{TicketID: cmd.TicketID}, nil
}
