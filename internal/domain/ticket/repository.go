package ticket

import (
	"context"

	vo "incidentdesk/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// GetByID returns a live ticket; soft-deleted rows are not visible here.
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetDeletedByID returns a soft-deleted ticket for restore.
	GetDeletedByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// CountByStatus and CountByPriority aggregate live tickets only.
	CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error)
	CountByPriority(ctx context.Context) (map[string]int64, error)

	SaveAttachment(ctx context.Context, attachment *Attachment) error
	GetAttachmentsByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)

	// GetUnresolved returns live no_resolu tickets joined with the
	// creator's email, newest first, for report generation.
	GetUnresolved(ctx context.Context) ([]*ReportRow, error)
	// GetUnresolvedByID returns one live no_resolu ticket or nil.
	GetUnresolvedByID(ctx context.Context, ticketID uint) (*ReportRow, error)
}

// Filter narrows List to live tickets matching the given criteria.
type Filter struct {
	Status    *vo.TicketStatus
	Priority  *string
	UserID    *uint
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}

// ReportRow is the read model for PDF export: a live no_resolu ticket with
// the creator's email resolved.
type ReportRow struct {
	Ticket    *Ticket
	UserEmail string
}
