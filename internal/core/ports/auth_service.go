package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// AuthResult is returned by Register and Login: the created/authenticated
// user (password hash stripped) plus a signed access token.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}

// AuthService orchestrates registration, login and per-request identity
// resolution.
type AuthService interface {
	// Register creates a new user. Fails with domain.ErrEmailTaken when the
	// email is already registered. Role defaults to USER when empty.
	Register(ctx context.Context, email, password, name string, role domain.Role) (*AuthResult, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password both fail with domain.ErrInvalidCredentials — callers must not
	// be able to tell the two apart.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// ResolveIdentity re-fetches the user behind a verified token's subject.
	// Called by the authentication middleware on every protected request so
	// that deleted or demoted users are rejected before their token expires.
	ResolveIdentity(ctx context.Context, userID string) (*domain.User, error)
}
