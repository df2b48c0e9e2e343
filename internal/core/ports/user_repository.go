package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// UserRepository is the credential store adapter. Uniqueness of email is
// enforced by the store itself (unique index); Create surfaces a violation
// as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
