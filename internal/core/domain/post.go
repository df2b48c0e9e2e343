package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a piece of content published by a user.
type Post struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	AuthorID  string    `json:"author_id" bson:"author_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Published bool      `json:"published" bson:"published"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CanModify reports whether the given identity may edit or delete the post.
// Authors own their posts; admins and moderators may act on any post.
func (p *Post) CanModify(id Identity) bool {
	if id.UserID == p.AuthorID {
		return true
	}
	return id.Role == RoleAdmin || id.Role == RoleModerator
}
