package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// AuthService implements registration, login and identity resolution on top
// of the credential store, the password hasher and the token codec.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	codec  ports.TokenCodec
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, codec ports.TokenCodec) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec}
}

// Register creates a new user and issues a token for it. The email is
// case-normalized before any store access; the unique index on email is the
// authoritative defense against duplicate registration races, so a
// concurrent duplicate surfaces here as domain.ErrEmailTaken from Create.
func (s *AuthService) Register(ctx context.Context, email, password, name string, role domain.Role) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("register: invalid role %q", role)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	accessToken, err := s.codec.Issue(created)
	if err != nil {
		return nil, fmt.Errorf("register: issue token: %w", err)
	}

	return &ports.AuthResult{User: created.Sanitized(), AccessToken: accessToken}, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password are indistinguishable to the caller: both collapse into
// domain.ErrInvalidCredentials so accounts cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	accessToken, err := s.codec.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	return &ports.AuthResult{User: user.Sanitized(), AccessToken: accessToken}, nil
}

// ResolveIdentity re-fetches the user behind a verified token's subject.
// Returns domain.ErrUserNotFound when the account has been deleted since the
// token was issued.
func (s *AuthService) ResolveIdentity(ctx context.Context, userID string) (*domain.User, error) {
	if userID == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.repo.FindByID(ctx, userID)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
