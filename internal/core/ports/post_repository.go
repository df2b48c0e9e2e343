package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// ListPostsFilter carries query parameters for listing posts.
type ListPostsFilter struct {
	AuthorID      string // empty = all authors
	Tag           string // optional: posts carrying this tag
	PublishedOnly bool
	Page          int // 1-based
	Limit         int // capped at 100 by the service
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns a page of posts matching filter and the total count.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}
