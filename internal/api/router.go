package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/Skipper-116/devhub-backend/docs"
	"github.com/Skipper-116/devhub-backend/internal/api/handler"
	"github.com/Skipper-116/devhub-backend/internal/api/middleware"
	"github.com/Skipper-116/devhub-backend/internal/core/ports"
	"github.com/Skipper-116/devhub-backend/internal/core/service"
	mongodb "github.com/Skipper-116/devhub-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/Skipper-116/devhub-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens ports.TokenService, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("devhub"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	projectCache := redisdb.NewProjectCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	profileService := service.NewProfileService(userRepo, log)
	projectService := service.NewProjectService(projectRepo, commentRepo, userRepo, projectCache, log)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	projectHandler := handler.NewProjectHandler(projectService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authenticated := middleware.Auth(tokens)

	// --- Auth routes ---
	auth := e.Group("/api/v1/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Profile routes ---
	profile := e.Group("/api/v1/profile", authenticated)
	profile.GET("", profileHandler.Get)
	profile.PUT("", profileHandler.Update)
	profile.DELETE("", profileHandler.Delete)

	// --- Project routes ---
	projects := e.Group("/api/v1/projects", authenticated)
	projects.POST("", projectHandler.Create)
	projects.GET("", projectHandler.List)
	projects.GET("/:id", projectHandler.Get)
	projects.PUT("/:id", projectHandler.Update)
	projects.DELETE("/:id", projectHandler.Delete)
	projects.PUT("/:id/like", projectHandler.Like)
	projects.POST("/:id/comment", projectHandler.AddComment)
	projects.GET("/:id/comment", projectHandler.Comments)
	projects.DELETE("/:id/comment", projectHandler.RemoveComment)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
