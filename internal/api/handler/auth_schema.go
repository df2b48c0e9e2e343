package handler

import "github.com/inkwell/blog-platform/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"max=120"`
	// Role is optional; when present it must name a member of the enumeration.
	Role string `json:"role" validate:"omitempty,oneof=USER ADMIN MODERATOR"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// authResponse is returned by both register and login. The token is opaque
// to clients; its claim shape is not part of the contract.
type authResponse struct {
	User        *domain.User `json:"user"`
	AccessToken string       `json:"access_token"`
}

type identityResponse struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}
