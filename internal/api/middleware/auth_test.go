package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/infrastructure/token"
)

type stubResolver struct {
	users map[string]*domain.User
}

func (r *stubResolver) ResolveIdentity(_ context.Context, userID string) (*domain.User, error) {
	if u, ok := r.users[userID]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func newTestCodec(t *testing.T) *token.Codec {
	t.Helper()
	codec, err := token.NewCodec("secret", time.Hour)
	if err != nil {
		t.Fatalf("NewCodec returned error: %v", err)
	}
	return codec
}

func signedTokenFor(t *testing.T, codec *token.Codec, user *domain.User) string {
	t.Helper()
	signed, err := codec.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	return signed
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	codec := newTestCodec(t)

	// The token still claims USER but the stored record is MODERATOR — the
	// fresh role must win.
	stored := &domain.User{ID: "user_1", Email: "alice@x.com", Role: domain.RoleModerator}
	resolver := &stubResolver{users: map[string]*domain.User{"user_1": stored}}
	signed := signedTokenFor(t, codec, &domain.User{ID: "user_1", Email: "alice@x.com", Role: domain.RoleUser})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate(codec, resolver)(func(c echo.Context) error {
		called = true
		identity, ok := IdentityFrom(c)
		if !ok {
			t.Fatalf("identity not attached")
		}
		if identity.UserID != "user_1" {
			t.Fatalf("unexpected user id: %s", identity.UserID)
		}
		if identity.Role != domain.RoleModerator {
			t.Fatalf("expected freshly resolved role MODERATOR, got %s", identity.Role)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e := echo.New()
	codec := newTestCodec(t)
	resolver := &stubResolver{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(codec, resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	codec := newTestCodec(t)
	resolver := &stubResolver{users: map[string]*domain.User{}}

	for _, header := range []string{"Token abc", "Bearer", "bearer-only-one-part"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := Authenticate(codec, resolver)(func(c echo.Context) error {
			t.Fatalf("should not reach next for header %q", header)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	e := echo.New()
	codec := newTestCodec(t)
	resolver := &stubResolver{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(codec, resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_DeletedUserRejected(t *testing.T) {
	e := echo.New()
	codec := newTestCodec(t)

	// Token is valid and unexpired, but the account no longer resolves.
	resolver := &stubResolver{users: map[string]*domain.User{}}
	signed := signedTokenFor(t, codec, &domain.User{ID: "gone_user", Role: domain.RoleUser})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authenticate(codec, resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
