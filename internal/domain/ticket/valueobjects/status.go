package valueobjects

import "fmt"

type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
	StatusNoResolu   TicketStatus = "no_resolu"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusNoResolu:   true,
}

// All five statuses are reachable from any other; the admin dashboard
// imposes no transition ordering.

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsNoResolu() bool {
	return ts == StatusNoResolu
}

// Label returns the display label. The enum is closed; an unknown value
// reaching this switch is a programming error.
func (ts TicketStatus) Label() (string, error) {
	switch ts {
	case StatusOpen:
		return "Ouvert", nil
	case StatusInProgress:
		return "En cours", nil
	case StatusResolved:
		return "Résolu", nil
	case StatusClosed:
		return "Fermé", nil
	case StatusNoResolu:
		return "Non Résolu", nil
	default:
		return "", fmt.Errorf("no label for ticket status %q", string(ts))
	}
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
