package mappers

import (
	"fmt"

	"incidentdesk/internal/domain/history"
	"incidentdesk/internal/infrastructure/persistence/models"
)

type HistoryMapper struct{}

func NewHistoryMapper() *HistoryMapper {
	return &HistoryMapper{}
}

func (m *HistoryMapper) ToModel(e *history.Entry) *models.HistoriqueModel {
	return &models.HistoriqueModel{
		ID:        e.ID(),
		TicketID:  e.TicketID(),
		UserID:    e.UserID(),
		Action:    e.Action().String(),
		OldValue:  e.OldValue(),
		Details:   e.Details(),
		CreatedAt: e.CreatedAt(),
	}
}

func (m *HistoryMapper) ToDomain(model *models.HistoriqueModel) (*history.Entry, error) {
	if model == nil {
		return nil, fmt.Errorf("historique model cannot be nil")
	}

	return history.ReconstructEntry(
		model.ID,
		model.TicketID,
		model.UserID,
		history.Action(model.Action),
		model.OldValue,
		model.Details,
		model.CreatedAt,
	)
}
