package ports

import (
	"context"

	"github.com/inkwell/blog-platform/internal/core/domain"
)

// CreatePostInput carries the data needed to create a post. AuthorID comes
// from the authenticated identity, never from the request body.
type CreatePostInput struct {
	Title     string
	Content   string
	Tags      []string
	Published bool
}

// UpdatePostInput carries a partial update. Nil fields are left unchanged.
type UpdatePostInput struct {
	Title     *string
	Content   *string
	Tags      []string
	Published *bool
}

// ListPostsResult is returned by ListPosts.
type ListPostsResult struct {
	Items      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PostService defines use-case operations for posts. Mutations require the
// caller's identity; update and delete enforce ownership or moderator rights.
type PostService interface {
	CreatePost(ctx context.Context, identity domain.Identity, input CreatePostInput) (*domain.Post, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	ListPosts(ctx context.Context, filter ListPostsFilter) (*ListPostsResult, error)
	UpdatePost(ctx context.Context, identity domain.Identity, id string, input UpdatePostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, identity domain.Identity, id string) error
}
