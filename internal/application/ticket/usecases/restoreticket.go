package usecases

import (
	"context"

	"incidentdesk/internal/domain/history"
	"incidentdesk/internal/domain/ticket"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

type RestoreTicketCommand struct {
	TicketID uint
	ActorID  uint
}

type RestoreTicketResult struct {
	TicketID uint
	Status   string
}

type RestoreTicketUseCase struct {
	ticketRepo  ticket.Repository
	historyRepo history.Repository
	txManager   TransactionManager
	logger      logger.Interface
}

func NewRestoreTicketUseCase(
	ticketRepo ticket.Repository,
	historyRepo history.Repository,
	txManager TransactionManager,
	logger logger.Interface,
) *RestoreTicketUseCase {
	return &RestoreTicketUseCase{
		ticketRepo:  ticketRepo,
		historyRepo: historyRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute brings a soft-deleted ticket back and appends the restore
// historique entry. Restoring a live or missing ticket is NotFound.
func (uc *RestoreTicketUseCase) Execute(ctx context.Context, cmd RestoreTicketCommand) (*RestoreTicketResult, error) {
	uc.logger.Infow("executing restore ticket use case",
		"ticket_id", cmd.TicketID, "actor_id", cmd.ActorID)

	var status string
	txErr := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetDeletedByID(txCtx, cmd.TicketID)
		if err != nil {
			return errors.NewNotFoundError("ticket not found or not deleted")
		}

		if err := t.Restore(); err != nil {
			return errors.NewNotFoundError("ticket not found or not deleted")
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return errors.NewInternalError("failed to restore ticket", err.Error())
		}

		entry, err := history.NewEntry(t.ID(), cmd.ActorID, history.ActionUpdated,
			nil, "Ticket restauré")
		if err != nil {
			return errors.NewInternalError("failed to build historique entry", err.Error())
		}

		if err := uc.historyRepo.Save(txCtx, entry); err != nil {
			return errors.NewInternalError("failed to save historique entry", err.Error())
		}

		status = t.Status().String()
		return nil
	})

	if txErr != nil {
		uc.logger.Errorw("restore rolled back", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	uc.logger.Infow("ticket restored", "ticket_id", cmd.TicketID)

	return &RestoreTicketResult{TicketID: cmd.TicketID, Status: status}, nil
}
