package models

import (
	"time"

	"gorm.io/datatypes"
)

// HistoriqueModel maps the append-only historique table. OldValue holds
// the JSON snapshot of the ticket row before a deletion.
type HistoriqueModel struct {
	ID        uint           `gorm:"primaryKey"`
	TicketID  uint           `gorm:"not null;index"`
	UserID    uint           `gorm:"not null;index"`
	Action    string         `gorm:"size:30;not null;index"`
	OldValue  datatypes.JSON `gorm:"type:json"`
	Details   string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"index"`
}

func (HistoriqueModel) TableName() string {
	return "historique"
}
