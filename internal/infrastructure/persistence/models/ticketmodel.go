package models

import "time"

// TicketModel maps the tickets table. DeletedAt is a plain nullable
// timestamp managed by the application rather than gorm.DeletedAt:
// soft-deleted rows must remain addressable so restore can flip the
// column back.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Priority    string `gorm:"size:20;not null;index"`
	ProblemType string `gorm:"size:20;not null"`
	Status      string `gorm:"size:20;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketAttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	FilePath     string `gorm:"size:255;not null"`
	OriginalName string `gorm:"size:255;not null"`
	FileSize     int64  `gorm:"not null"`
	MimeType     string `gorm:"size:100;not null"`
	CreatedAt    time.Time
}

func (TicketAttachmentModel) TableName() string {
	return "ticket_attachments"
}
