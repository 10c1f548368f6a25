package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/schnackhq/forum-api/internal/api/handler"
	"github.com/schnackhq/forum-api/internal/api/middleware"
	"github.com/schnackhq/forum-api/internal/core/domain"
	"github.com/schnackhq/forum-api/internal/core/ports"
	"github.com/schnackhq/forum-api/internal/core/service"
	"github.com/schnackhq/forum-api/internal/core/token"
	mongodb "github.com/schnackhq/forum-api/internal/infrastructure/db/mongo"
	redisdb "github.com/schnackhq/forum-api/internal/infrastructure/db/redis"
	"github.com/schnackhq/forum-api/internal/pkg/config"
	"github.com/schnackhq/forum-api/internal/pkg/password"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher is owned by the caller so its workers share the
// process lifecycle, not the router's.
func NewRouter(db *mongo.Database, rdb *redis.Client, audit ports.AuditDispatcher, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	threadRepo := mongodb.NewThreadRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.LoginMaxAttempts, cfg.LoginAttemptWindow, cfg.LoginLockout)

	codec := token.NewCodec(cfg.JWTSecret)
	hasher := password.NewBcryptHasher(cfg.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher, codec, cfg.TokenTTL, limiter, log)
	forumService := service.NewForumService(threadRepo, postRepo, log)

	authHandler := handler.NewAuthHandler(authService, audit)
	forumHandler := handler.NewForumHandler(forumService)
	auditHandler := handler.NewAuditHandler(auditRepo)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(middleware.Auth(codec, userRepo))

	anyRole := middleware.RequireRole(domain.RoleAdministrator, domain.RoleUser)
	adminOnly := middleware.RequireRole(domain.RoleAdministrator)

	// --- Auth routes (unauthenticated entry points) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/session", authHandler.Session, anyRole)

	// --- Forum routes ---
	v1 := e.Group("/v1")
	v1.POST("/threads", forumHandler.CreateThread, anyRole)
	v1.GET("/threads", forumHandler.ListThreads, anyRole)
	v1.GET("/threads/:id", forumHandler.GetThread, anyRole)
	v1.POST("/threads/:id/posts", forumHandler.CreatePost, anyRole)
	v1.DELETE("/threads/:id", forumHandler.DeleteThread, adminOnly)

	// --- Audit trail (administrators only) ---
	v1.GET("/audit", auditHandler.List, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
