package history

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, entry *Entry) error
	// List returns up to limit entries, newest first, joined with the
	// referenced ticket and acting user. Joined fields are nil when the
	// referenced row no longer resolves.
	List(ctx context.Context, limit int) ([]*JoinedEntry, error)
	// ListDeletedTickets returns soft-deleted tickets enriched with the
	// latest deleted entry's timestamp and details.
	ListDeletedTickets(ctx context.Context) ([]*DeletedTicketRow, error)
	CountByTicketID(ctx context.Context, ticketID uint) (int64, error)
}

// JoinedEntry is the historique read model: the entry plus nullable
// ticket and user context from LEFT JOINs.
type JoinedEntry struct {
	Entry          *Entry
	TicketTitle    *string
	TicketStatus   *string
	TicketPriority *string
	UserEmail      *string
	UserRole       *string
}

// DeletedTicketRow is the trash view read model.
type DeletedTicketRow struct {
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
