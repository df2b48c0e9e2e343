package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/api/metrics"
	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// AttemptLimiter throttles login attempts per (email, IP) pair. Satisfied by
// the redis-backed login limiter; nil disables throttling.
type AttemptLimiter interface {
	Allow(ctx context.Context, email, ip string) (bool, error)
}

// AuditSink receives auth events for asynchronous recording. Satisfied by
// the queue dispatcher; nil disables auditing.
type AuditSink interface {
	Enqueue(event domain.AuthEvent)
}

type AuthHandler struct {
	authService ports.AuthService
	limiter     AttemptLimiter
	audit       AuditSink
}

func NewAuthHandler(authService ports.AuthService, limiter AttemptLimiter, audit AuditSink) *AuthHandler {
	return &AuthHandler{authService: authService, limiter: limiter, audit: audit}
}

// Register creates a new user account and returns it with an access token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name, domain.Role(req.Role))
	h.recordAttempt(c, domain.AuthActionRegister, req.Email, res, err)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: res.User, AccessToken: res.AccessToken})
}

// Login authenticates a user and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      201   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      429   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request().Context(), req.Email, c.RealIP())
		// A limiter outage must not take down login; only an explicit
		// over-limit answer blocks the attempt.
		if err == nil && !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		}
	}

	res, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	h.recordAttempt(c, domain.AuthActionLogin, req.Email, res, err)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: res.User, AccessToken: res.AccessToken})
}

// Me echoes the authenticated identity — the freshly resolved one, not the
// token claims.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  identityResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, identityResponse{UserID: identity.UserID, Role: identity.Role})
}

func (h *AuthHandler) recordAttempt(c echo.Context, action domain.AuthAction, email string, res *ports.AuthResult, err error) {
	if h.audit == nil {
		return
	}
	event := domain.AuthEvent{
		Action:    action,
		Email:     email,
		Success:   err == nil,
		RemoteIP:  c.RealIP(),
		Timestamp: time.Now().UTC(),
	}
	if res != nil && res.User != nil {
		event.UserID = res.User.ID
	}
	h.audit.Enqueue(event)
}
