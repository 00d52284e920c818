// Package constants holds context keys and other cross-layer constants.
package constants

const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"
)
