// Package history models the historique audit log. Entries are append-only:
// they are written in the same transaction as the mutation they record and
// are never updated or deleted, even when the referenced ticket goes away.
package history

import (
	"fmt"
	"time"
)

type Action string

const (
	ActionCreated         Action = "created"
	ActionUpdated         Action = "updated"
	ActionDeleted         Action = "deleted"
	ActionStatusChanged   Action = "status_changed"
	ActionPriorityChanged Action = "priority_changed"
)

var validActions = map[Action]bool{
	ActionCreated:         true,
	ActionUpdated:         true,
	ActionDeleted:         true,
	ActionStatusChanged:   true,
	ActionPriorityChanged: true,
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	return validActions[a]
}

type Entry struct {
	id        uint
	ticketID  uint
	userID    uint
	action    Action
	oldValue  []byte // JSON snapshot of the row before the mutation, may be nil
	details   string
	createdAt time.Time
}

func NewEntry(ticketID, userID uint, action Action, oldValue []byte, details string) (*Entry, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action: %s", action)
	}

	return &Entry{
		ticketID:  ticketID,
		userID:    userID,
		action:    action,
		oldValue:  oldValue,
		details:   details,
		createdAt: time.Now(),
	}, nil
}

func ReconstructEntry(
	id uint,
	ticketID, userID uint,
	action Action,
	oldValue []byte,
	details string,
	createdAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action: %s", action)
	}
	return &Entry{
		id:        id,
		ticketID:  ticketID,
		userID:    userID,
		action:    action,
		oldValue:  oldValue,
		details:   details,
		createdAt: createdAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) TicketID() uint {
	return e.ticketID
}

func (e *Entry) UserID() uint {
	return e.userID
}

func (e *Entry) Action() Action {
	return e.action
}

func (e *Entry) OldValue() []byte {
	return e.oldValue
}

func (e *Entry) Details() string {
	return e.details
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}
