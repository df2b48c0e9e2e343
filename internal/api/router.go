package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/inkwell/blog-platform/internal/api/handler"
	"github.com/inkwell/blog-platform/internal/api/middleware"
	"github.com/inkwell/blog-platform/internal/core/domain"
	"github.com/inkwell/blog-platform/internal/core/ports"
	"github.com/inkwell/blog-platform/internal/core/service"
	mongodb "github.com/inkwell/blog-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell/blog-platform/internal/infrastructure/db/redis"
	"github.com/inkwell/blog-platform/internal/infrastructure/hash"
	"github.com/inkwell/blog-platform/internal/infrastructure/queue"
)

const (
	loginAttemptsPerWindow = 10
	loginAttemptWindow     = time.Minute
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Role requirements are declared here, at route-registration time, as typed
// middleware configuration — the single place the route → roles table lives.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec ports.TokenCodec, audit *queue.Dispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	authService := service.NewAuthService(userRepo, hash.NewBcryptHasher(0), codec)
	postService := service.NewPostService(postRepo)
	limiter := redisdb.NewLoginLimiter(rdb, loginAttemptsPerWindow, loginAttemptWindow)

	authHandler := handler.NewAuthHandler(authService, limiter, audit)
	postHandler := handler.NewPostHandler(postService)
	userHandler := handler.NewUserHandler(userRepo)

	authenticated := middleware.Authenticate(codec, authService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authenticated)

	// --- Posts (read public, write authenticated) ---
	e.GET("/posts", postHandler.List)
	e.GET("/posts/:id", postHandler.Get)
	e.POST("/posts", postHandler.Create, authenticated)
	e.PATCH("/posts/:id", postHandler.Update, authenticated)
	e.DELETE("/posts/:id", postHandler.Delete, authenticated)

	// --- User administration (admin only) ---
	e.GET("/users", userHandler.List, authenticated, adminOnly)
	e.GET("/users/:id", userHandler.Get, authenticated, adminOnly)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	return e
}
