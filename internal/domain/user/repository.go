package user

import (
	"context"
	"time"
)

type Repository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	// GetActiveByEmail resolves an active account for login; inactive
	// accounts cannot authenticate.
	GetActiveByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ListRegular returns non-admin accounts, newest first.
	ListRegular(ctx context.Context) ([]*User, error)
	// DeleteRegular removes a non-admin account; admins are never deleted.
	DeleteRegular(ctx context.Context, userID uint) error
}

// Session is one authenticated browser session backing the auth cookie.
type Session struct {
	ID        string
	UserID    uint
	ExpiresAt time.Time
	CreatedAt time.Time
}

type SessionRepository interface {
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) error
}
