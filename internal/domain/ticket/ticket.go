package ticket

import (
	"fmt"
	"time"

	vo "incidentdesk/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	userID      uint
	title       string
	description string
	priority    vo.Priority
	problemType vo.ProblemType
	status      vo.TicketStatus
	createdAt   time.Time
	updatedAt   time.Time
	deletedAt   *time.Time
	attachments []*Attachment
}

// NewTicket creates a ticket in the open state. An empty priority falls
// back to medium; a non-empty value is stored verbatim even when outside
// the known set, matching the legacy creation endpoint which never checked
// it (the admin status update, by contrast, is strictly enum-checked).
// An unknown problem type falls back to software.
func NewTicket(
	title string,
	description string,
	priority string,
	problemType string,
	userID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	if priority == "" {
		priority = vo.PriorityMedium.String()
	}
	pt := vo.ProblemType(problemType)
	if !pt.IsValid() {
		pt = vo.ProblemSoftware
	}

	now := time.Now()
	return &Ticket{
		userID:      userID,
		title:       title,
		description: description,
		priority:    vo.Priority(priority),
		problemType: pt,
		status:      vo.StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state.
func ReconstructTicket(
	id uint,
	userID uint,
	title string,
	description string,
	priority vo.Priority,
	problemType vo.ProblemType,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:          id,
		userID:      userID,
		title:       title,
		description: description,
		priority:    priority,
		problemType: problemType,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		deletedAt:   deletedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) ProblemType() vo.ProblemType {
	return t.problemType
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) DeletedAt() *time.Time {
	return t.deletedAt
}

func (t *Ticket) IsDeleted() bool {
	return t.deletedAt != nil
}

func (t *Ticket) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(t.attachments))
	copy(attachmentsCopy, t.attachments)
	return attachmentsCopy
}

func (t *Ticket) GetOwnerID() uint {
	return t.userID
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus sets a new status. Any valid status is reachable from any
// other; only membership in the enum is enforced.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// MarkDeleted soft-deletes a live ticket.
func (t *Ticket) MarkDeleted() error {
	if t.deletedAt != nil {
		return fmt.Errorf("ticket is already deleted")
	}
	now := time.Now()
	t.deletedAt = &now
	t.updatedAt = now
	return nil
}

// Restore brings a soft-deleted ticket back to the live set.
func (t *Ticket) Restore() error {
	if t.deletedAt == nil {
		return fmt.Errorf("ticket is not deleted")
	}
	t.deletedAt = nil
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) AddAttachment(a *Attachment) error {
	if a == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	t.attachments = append(t.attachments, a)
	return nil
}

// Snapshot captures the full row for the historique old_value column.
type Snapshot struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	ProblemType string     `json:"problem_type"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func (t *Ticket) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.id,
		UserID:      t.userID,
		Title:       t.title,
		Description: t.description,
		Priority:    t.priority.String(),
		ProblemType: t.problemType.String(),
		Status:      t.status.String(),
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.updatedAt,
		DeletedAt:   t.deletedAt,
	}
}
