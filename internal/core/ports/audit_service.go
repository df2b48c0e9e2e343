package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// AuditService records authentication attempts. Recording is best-effort:
// a failure here must never affect the auth decision itself.
type AuditService interface {
	Record(ctx context.Context, event domain.AuthEvent) error
}
