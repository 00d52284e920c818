// Package authorization provides role checks shared between middleware and
// use cases.
package authorization

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

var validRoles = map[UserRole]bool{
	RoleAdmin: true,
	RoleUser:  true,
}

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsValid() bool {
	return validRoles[r]
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}
