package usecases

import (
	"context"
	"encoding/json"
	"time"

	"incidentdesk/internal/domain/history"
	"incidentdesk/internal/shared/errors"
	"incidentdesk/internal/shared/logger"
)

const defaultHistoriqueLimit = 1000

type ListHistoriqueCommand struct {
	Limit int
}

// HistoriqueItem is one audit line with the joined ticket and user
// context. Joined fields are nil when the referenced row is gone.
type HistoriqueItem struct {
	ID             uint
	TicketID       uint
	UserID         uint
	Action         string
	OldValue       json.RawMessage
	Details        string
	CreatedAt      time.Time
	TicketTitle    *string
	TicketStatus   *string
	TicketPriority *string
	UserEmail      *string
	UserRole       *string
}

type ListHistoriqueResult struct {
	Entries []HistoriqueItem
	Count   int
}

type ListHistoriqueUseCase struct {
	historyRepo history.Repository
	logger      logger.Interface
}

func NewListHistoriqueUseCase(
	historyRepo history.Repository,
	logger logger.Interface,
) *ListHistoriqueUseCase {
	return &ListHistoriqueUseCase{
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *ListHistoriqueUseCase) Execute(ctx context.Context, cmd ListHistoriqueCommand) (*ListHistoriqueResult, error) {
	limit := cmd.Limit
	if limit <= 0 || limit > defaultHistoriqueLimit {
		limit = defaultHistoriqueLimit
	}

	joined, err := uc.historyRepo.List(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list historique", "error", err)
		return nil, errors.NewInternalError("failed to list historique", err.Error())
	}

	items := make([]HistoriqueItem, 0, len(joined))
	for _, j := range joined {
		items = append(items, HistoriqueItem{
			ID:             j.Entry.ID(),
			TicketID:       j.Entry.TicketID(),
			UserID:         j.Entry.UserID(),
			Action:         j.Entry.Action().String(),
			OldValue:       json.RawMessage(j.Entry.OldValue()),
			Details:        j.Entry.Details(),
			CreatedAt:      j.Entry.CreatedAt(),
			TicketTitle:    j.TicketTitle,
			TicketStatus:   j.TicketStatus,
			TicketPriority: j.TicketPriority,
			UserEmail:      j.UserEmail,
			UserRole:       j.UserRole,
		})
	}

	return &ListHistoriqueResult{Entries: items, Count: len(items)}, nil
}
