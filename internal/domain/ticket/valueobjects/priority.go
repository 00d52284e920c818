package valueobjects

import "fmt"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var validPriorities = map[Priority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	return validPriorities[p]
}

// Label returns the French display label for a known priority.
func (p Priority) Label() (string, error) {
	switch p {
	case PriorityLow:
		return "Faible", nil
	case PriorityMedium:
		return "Moyenne", nil
	case PriorityHigh:
		return "Élevée", nil
	default:
		return "", fmt.Errorf("no label for priority %q", string(p))
	}
}

// RGB returns the display colour for a known priority.
func (p Priority) RGB() (r, g, b int, err error) {
	switch p {
	case PriorityLow:
		return 34, 197, 94, nil
	case PriorityMedium:
		return 234, 179, 8, nil
	case PriorityHigh:
		return 239, 68, 68, nil
	default:
		return 0, 0, 0, fmt.Errorf("no colour for priority %q", string(p))
	}
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
