package usecases

import (
	"time"

	"incidentdesk/internal/infrastructure/ratelimit"
	"incidentdesk/internal/shared/authorization"
)

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer signs access tokens bound to a session.
type TokenIssuer interface {
	Generate(userID uint, sessionID string, role authorization.UserRole) (string, time.Time, error)
}

// LoginLimiter throttles authentication attempts per email address.
type LoginLimiter interface {
	Allow(key string, config ratelimit.LoginLimitConfig) (bool, error)
	Reset(key string) error
}
