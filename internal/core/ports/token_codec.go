package ports

import "github.com/inkwell/blog-platform/internal/core/domain"

// TokenCodec signs user claims into an opaque bearer token and verifies a
// bearer token back into claims, enforcing expiry.
type TokenCodec interface {
	// Issue signs a claim set {sub, email, role, iat, exp} for the user.
	Issue(user *domain.User) (string, error)
	// Verify validates signature and expiry and decodes the claims. The
	// returned error is internal — transports collapse every verification
	// failure into a generic 401.
	Verify(token string) (domain.Claims, error)
}
