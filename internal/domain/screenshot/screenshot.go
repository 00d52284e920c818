// Package screenshot models the ad-hoc transfer-report captures, which are
// distinct from ticket attachments and read-only once stored.
package screenshot

import (
	"context"
	"fmt"
	"time"
)

type Screenshot struct {
	id          uint
	userID      uint
	filePath    string
	description string
	createdAt   time.Time
}

func NewScreenshot(userID uint, filePath, description string) (*Screenshot, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(filePath) == 0 {
		return nil, fmt.Errorf("file path is required")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	return &Screenshot{
		userID:      userID,
		filePath:    filePath,
		description: description,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructScreenshot(id, userID uint, filePath, description string, createdAt time.Time) (*Screenshot, error) {
	if id == 0 {
		return nil, fmt.Errorf("screenshot ID cannot be zero")
	}
	return &Screenshot{
		id:          id,
		userID:      userID,
		filePath:    filePath,
		description: description,
		createdAt:   createdAt,
	}, nil
}

func (s *Screenshot) ID() uint {
	return s.id
}

func (s *Screenshot) UserID() uint {
	return s.userID
}

func (s *Screenshot) FilePath() string {
	return s.filePath
}

func (s *Screenshot) Description() string {
	return s.description
}

func (s *Screenshot) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Screenshot) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("screenshot ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("screenshot ID cannot be zero")
	}
	s.id = id
	return nil
}

type Repository interface {
	Save(ctx context.Context, screenshot *Screenshot) error
	ListByUserID(ctx context.Context, userID uint) ([]*Screenshot, error)
}
