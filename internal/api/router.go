package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bookstore/bookstore-api/docs"
	"github.com/bookstore/bookstore-api/internal/api/handler"
	"github.com/bookstore/bookstore-api/internal/api/middleware"
	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/service"
	"github.com/bookstore/bookstore-api/internal/infrastructure/config"
	mongodb "github.com/bookstore/bookstore-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookstore/bookstore-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	bookRepo := mongodb.NewBookRepository(db)
	bookCache := redisdb.NewBookCache(rdb)

	tokenService := service.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	bookService := service.NewBookService(bookRepo, bookCache, log)

	authHandler := handler.NewAuthHandler(authService)
	bookHandler := handler.NewBookHandler(bookService)

	// Identity resolution runs on every request; denial happens at the
	// per-route guards below.
	e.Use(middleware.Auth(tokenService, userRepo))

	// --- Auth routes ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register)
	users.POST("/login", authHandler.Login)

	// --- Book routes ---
	readGuard := bookReadGuard(cfg.BookReadAccess)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	books := e.Group("/api/books")
	books.GET("", bookHandler.List, readGuard...)
	books.GET("/search", bookHandler.Search, readGuard...)
	books.GET("/:id", bookHandler.Get, readGuard...)
	books.POST("", bookHandler.Create, adminOnly)
	books.PUT("/:id", bookHandler.Update, adminOnly)
	books.DELETE("/:id", bookHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// bookReadGuard translates the configured read-access policy into route
// middleware. Observed deployments disagreed on whether catalog reads require
// authentication, so the policy is an explicit configuration choice.
func bookReadGuard(policy string) []echo.MiddlewareFunc {
	switch policy {
	case config.BookReadPublic:
		return nil
	case config.BookReadAdmin:
		return []echo.MiddlewareFunc{middleware.RequireRole(domain.RoleAdmin)}
	default: // config.BookReadAuthenticated
		return []echo.MiddlewareFunc{middleware.RequireAuthenticated()}
	}
}
