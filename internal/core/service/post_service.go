package service

import (
	"context"
	"errors"
	"time"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var errEmptyTitle = errors.New("post title is required")

// PostService implements the post use cases. Ownership rules: the author may
// modify their own posts; admins and moderators may modify any post.
type PostService struct {
	repo ports.PostRepository
}

func NewPostService(repo ports.PostRepository) *PostService {
	return &PostService{repo: repo}
}

func (s *PostService) CreatePost(ctx context.Context, identity domain.Identity, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Title == "" {
		return nil, errEmptyTitle
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.Post{
		AuthorID:  identity.UserID,
		Title:     input.Title,
		Content:   input.Content,
		Tags:      input.Tags,
		Published: input.Published,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PostService) ListPosts(ctx context.Context, filter ports.ListPostsFilter) (*ports.ListPostsResult, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListPostsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, identity domain.Identity, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !post.CanModify(identity) {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, errEmptyTitle
		}
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.Published != nil {
		post.Published = *input.Published
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, identity domain.Identity, id string) error {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !post.CanModify(identity) {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
