package models

import "time"

type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	Password  string `gorm:"size:255;not null"`
	Role      string `gorm:"size:20;not null;default:user"`
	Status    string `gorm:"size:20;not null;default:active"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

type SessionModel struct {
	ID        string `gorm:"primaryKey;size:64"`
	UserID    uint   `gorm:"not null;index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (SessionModel) TableName() string {
	return "sessions"
}
