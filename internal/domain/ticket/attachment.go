package ticket

import (
	"fmt"
	"time"
)

// Attachment is a screenshot image stored at ticket creation time. Its
// lifecycle is tied to the owning ticket; attachments are never removed
// individually.
type Attachment struct {
	id           uint
	ticketID     uint
	filePath     string
	originalName string
	fileSize     int64
	mimeType     string
	createdAt    time.Time
}

func NewAttachment(ticketID uint, filePath, originalName string, fileSize int64, mimeType string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(filePath) == 0 {
		return nil, fmt.Errorf("file path is required")
	}
	if len(originalName) == 0 {
		return nil, fmt.Errorf("original name is required")
	}
	if fileSize <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}

	return &Attachment{
		ticketID:     ticketID,
		filePath:     filePath,
		originalName: originalName,
		fileSize:     fileSize,
		mimeType:     mimeType,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	filePath, originalName string,
	fileSize int64,
	mimeType string,
	createdAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		filePath:     filePath,
		originalName: originalName,
		fileSize:     fileSize,
		mimeType:     mimeType,
		createdAt:    createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) FilePath() string {
	return a.filePath
}

func (a *Attachment) OriginalName() string {
	return a.originalName
}

func (a *Attachment) FileSize() int64 {
	return a.fileSize
}

func (a *Attachment) MimeType() string {
	return a.mimeType
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
