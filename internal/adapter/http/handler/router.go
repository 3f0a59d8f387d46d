package handler

import (
	"proxy-admin-panel/config"
	"proxy-admin-panel/internal/adapter/http/middleware"
	redisStore "proxy-admin-panel/internal/adapter/storage/redis"
	"proxy-admin-panel/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	AdminSvc       ports.AccountAdminService
	LedgerSvc      ports.LedgerService
	SessionSvc     ports.SessionService
	Accounts       ports.AccountDirectory
	Revocations    ports.RevocationStore
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Session        config.SessionConfig
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	sessionAuth := middleware.SessionAuth(deps.Session.CookieName, deps.SessionSvc, deps.Accounts, deps.Revocations, deps.Logger)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc, deps.Session)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.POST("/logout", sessionAuth, authHandler.Logout)
	}

	// --- Session-authenticated routes ---
	userHandler := NewUserHandler(deps.AdminSvc, deps.LedgerSvc, deps.SessionSvc, deps.Session)

	session := v1.Group("/session", sessionAuth)
	{
		session.POST("/return", userHandler.Return)
	}

	// --- Admin-only routes ---
	users := v1.Group("/admin/users", sessionAuth, middleware.AdminOnly())
	{
		users.GET("", rl("admin"), userHandler.List)
		users.POST("", rl("admin"), userHandler.Create)
		users.PUT("/:id", rl("admin"), userHandler.Update)
		users.DELETE("/:id", rl("admin"), userHandler.Delete)
		users.GET("/:id/ledger", rl("admin"), userHandler.Ledger)
		users.POST("/:id/impersonate", rl("admin"), userHandler.Impersonate)
	}

	return r
}
