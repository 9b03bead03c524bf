package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mitienda/catalog-api/docs"
	"github.com/mitienda/catalog-api/internal/api/handler"
	"github.com/mitienda/catalog-api/internal/api/middleware"
	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
	"github.com/mitienda/catalog-api/internal/core/service"
	mongodb "github.com/mitienda/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mitienda/catalog-api/internal/infrastructure/db/redis"
	"github.com/mitienda/catalog-api/pkg/password"
	"github.com/mitienda/catalog-api/pkg/token"
)

// NewRouter builds the Echo instance with the full dependency graph wired
// through explicit constructors and all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Service, audit ports.AuditSink, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	productCache := redisdb.NewProductCache(rdb)
	hasher := password.NewHasher()

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, audit, log)
	productService := service.NewProductService(productRepo, productCache, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/profile", authHandler.Profile, authRequired)

	// --- Product routes: reads are public, writes are admin-gated ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.GET("/products/by-name/:name", productHandler.GetByName)
	e.POST("/products", productHandler.Create, authRequired, adminOnly)
	e.PUT("/products/:id", productHandler.Update, authRequired, adminOnly)
	e.DELETE("/products/:id", productHandler.Remove, authRequired, adminOnly)

	// --- User routes: admin-gated throughout ---
	e.GET("/users", userHandler.List, authRequired, adminOnly)
	e.GET("/users/:id", userHandler.Get, authRequired, adminOnly)
	e.POST("/users", userHandler.Create, authRequired, adminOnly)
	e.PUT("/users/:id", userHandler.Update, authRequired, adminOnly)
	e.DELETE("/users/:id", userHandler.Remove, authRequired, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
