package domain

import "time"

// AuthAction identifies the kind of authentication event being recorded.
type AuthAction string

const (
	AuthActionLogin    AuthAction = "login"
	AuthActionRegister AuthAction = "register"
)

// AuthEvent is an audit record of a single authentication attempt.
// UserID is empty when the attempt failed before a user was resolved.
type AuthEvent struct {
	Action    AuthAction
	Email     string
	UserID    string
	Success   bool
	RemoteIP  string
	Timestamp time.Time
}
