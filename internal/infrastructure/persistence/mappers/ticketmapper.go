package mappers

import (
	"fmt"

	"incidentdesk/internal/domain/ticket"
	vo "incidentdesk/internal/domain/ticket/valueobjects"
	"incidentdesk/internal/infrastructure/persistence/models"
)

// TicketMapper converts between ticket domain entities and persistence models.
type TicketMapper struct{}

func NewTicketMapper() *TicketMapper {
	return &TicketMapper{}
}

func (m *TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Title:       t.Title(),
		Description: t.Description(),
		Priority:    t.Priority().String(),
		ProblemType: t.ProblemType().String(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
		DeletedAt:   t.DeletedAt(),
	}
}

func (m *TicketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, fmt.Errorf("ticket model cannot be nil")
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		vo.Priority(model.Priority),
		vo.ProblemType(model.ProblemType),
		vo.TicketStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
		model.DeletedAt,
	)
}

func (m *TicketMapper) AttachmentToModel(a *ticket.Attachment) *models.TicketAttachmentModel {
	return &models.TicketAttachmentModel{
		ID:           a.ID(),
		TicketID:     a.TicketID(),
		FilePath:     a.FilePath(),
		OriginalName: a.OriginalName(),
		FileSize:     a.FileSize(),
		MimeType:     a.MimeType(),
		CreatedAt:    a.CreatedAt(),
	}
}

func (m *TicketMapper) AttachmentToDomain(model *models.TicketAttachmentModel) (*ticket.Attachment, error) {
	if model == nil {
		return nil, fmt.Errorf("attachment model cannot be nil")
	}

	return ticket.ReconstructAttachment(
		model.ID,
		model.TicketID,
		model.FilePath,
		model.OriginalName,
		model.FileSize,
		model.MimeType,
		model.CreatedAt,
	)
}
