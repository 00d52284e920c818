package models

import "time"

type ScreenshotModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	FilePath    string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

func (ScreenshotModel) TableName() string {
	return "screenshots"
}
