package domain

import "time"

// Claims is the payload embedded in a bearer token. It exists only inside
// the signed token and, transiently, in memory during request handling —
// it is never persisted.
type Claims struct {
	Subject   string // user id
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity is the per-request principal attached to the request context by
// the authentication middleware after a token has been verified and the user
// re-resolved from the credential store. The role here always reflects the
// fresh user record, not the token claim.
type Identity struct {
	UserID string
	Role   Role
}
