package user

import (
	"fmt"
	"time"

	"incidentdesk/internal/shared/authorization"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type User struct {
	id           uint
	email        string
	passwordHash string
	role         authorization.UserRole
	status       Status
	createdAt    time.Time
}

// NewUser creates an active account. The password hash is produced by the
// infrastructure hasher; the entity treats it as opaque.
func NewUser(email, passwordHash string, role authorization.UserRole) (*User, error) {
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       StatusActive,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructUser(
	id uint,
	email, passwordHash string,
	role authorization.UserRole,
	status Status,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		status:       status,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) Status() Status {
	return u.status
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) IsActive() bool {
	return u.status == StatusActive
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
