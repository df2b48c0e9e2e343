package handler

import (
	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

type createPostRequest struct {
	Title     string   `json:"title"   validate:"required,max=200"`
	Content   string   `json:"content" validate:"max=50000"`
	Tags      []string `json:"tags"    validate:"max=10,dive,max=40"`
	Published bool     `json:"published"`
}

type updatePostRequest struct {
	Title     *string  `json:"title"   validate:"omitempty,min=1,max=200"`
	Content   *string  `json:"content" validate:"omitempty,max=50000"`
	Tags      []string `json:"tags"    validate:"omitempty,max=10,dive,max=40"`
	Published *bool    `json:"published"`
}

type listPostsResponse struct {
	Items      []*domain.Post `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
}

func toListPostsResponse(res *ports.ListPostsResult) listPostsResponse {
	items := res.Items
	if items == nil {
		items = []*domain.Post{}
	}
	return listPostsResponse{
		Items:      items,
		Total:      res.Total,
		Page:       res.Page,
		Limit:      res.Limit,
		TotalPages: res.TotalPages,
	}
}
