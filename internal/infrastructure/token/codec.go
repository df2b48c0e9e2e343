package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

const defaultTTL = 50 * time.Minute

// jwtClaims is the wire shape of the token payload. sub/iat/exp come from
// the registered claim set; email and role ride alongside.
type jwtClaims struct {
	jwt.RegisteredClaims

	Email string      `json:"email,omitempty"`
	Role  domain.Role `json:"role,omitempty"`
}

// Codec implements ports.TokenCodec with HS256-signed JWTs. The signing
// secret is injected once at construction and never read from the
// environment at call sites.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec. An empty secret is a construction error — the
// caller must treat it as fatal and refuse to start.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token: signing secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs the claim set {sub, email, role, iat, exp} for the user.
func (c *Codec) Issue(user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("token: user with id required")
	}

	now := c.now().UTC()
	claims := jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email: user.Email,
		Role:  user.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify validates signature, structure and expiry (no leeway) and decodes
// the claims. The distinct failure reasons stay internal; transports
// collapse them all into a generic 401.
func (c *Codec) Verify(token string) (domain.Claims, error) {
	var claims jwtClaims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)

	parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	})
	if err != nil {
		return domain.Claims{}, err
	}
	if !parsed.Valid {
		return domain.Claims{}, jwt.ErrTokenUnverifiable
	}
	if claims.Subject == "" {
		return domain.Claims{}, errors.New("token: subject missing")
	}

	out := domain.Claims{
		Subject: claims.Subject,
		Email:   claims.Email,
		Role:    claims.Role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
