package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/docs"
	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/database"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/pagination"
	"taskboard/internal/repository"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	DB     *gorm.DB
	Config *config.Config
	Logger *log.Logger
}

// Deps is everything the router needs; tests pass an in-memory database.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Logger *log.Logger
}

func Init(cfg *config.Config, logger *log.Logger) (*Server, error) {
	db, err := database.Open(cfg.DSN())
	if err != nil {
		return nil, err
	}
	logger.Info("✅ Connected to database")

	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	logger.Info("✅ Migrations applied")

	gin.SetMode(cfg.GinMode)

	return &Server{
		Engine: NewRouter(Deps{DB: db, Config: cfg, Logger: logger}),
		DB:     db,
		Config: cfg,
		Logger: logger,
	}, nil
}

func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config
	limits := pagination.Limits{DefaultTake: cfg.PageTake, MaxTake: cfg.PageMaxTake}

	// Repositories
	userRepo := repository.NewUserRepository(deps.DB)
	columnRepo := repository.NewColumnRepository(deps.DB)
	cardRepo := repository.NewCardRepository(deps.DB)
	commentRepo := repository.NewCommentRepository(deps.DB)

	// Services
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)
	authService := service.NewAuthService(userRepo, tokens, cfg.BcryptCost)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, tokens, cfg.CookieSecure)
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))
	columnHandler := handler.NewColumnHandler(service.NewColumnService(columnRepo), limits)
	cardHandler := handler.NewCardHandler(service.NewCardService(cardRepo), limits)
	commentHandler := handler.NewCommentHandler(service.NewCommentService(commentRepo), limits)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(deps.Logger), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docs.SwaggerInfo.InstanceName())))

	// Public routes
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.Refresh)
	}

	// Protected routes - token subject must match :userId
	users := r.Group("/users/:userId")
	users.Use(middleware.JWTAuthMiddleware(authService), middleware.OwnershipGuard())
	{
		users.GET("", userHandler.Get)
		users.PUT("", userHandler.Update)
		users.DELETE("", userHandler.Delete)

		// Column routes
		users.POST("/columns", columnHandler.Create)
		users.GET("/columns", columnHandler.List)
		users.GET("/columns/:columnId", columnHandler.Get)
		users.PUT("/columns/:columnId", columnHandler.Update)
		users.DELETE("/columns/:columnId", columnHandler.Delete)

		// Card routes
		users.POST("/columns/:columnId/cards", cardHandler.Create)
		users.GET("/columns/:columnId/cards", cardHandler.List)
		users.GET("/columns/:columnId/cards/:cardId", cardHandler.Get)
		users.PUT("/columns/:columnId/cards/:cardId", cardHandler.Update)
		users.DELETE("/columns/:columnId/cards/:cardId", cardHandler.Delete)

		// Comment routes
		users.POST("/columns/:columnId/cards/:cardId/comments", commentHandler.Create)
		users.GET("/columns/:columnId/cards/:cardId/comments", commentHandler.List)
		users.GET("/columns/:columnId/cards/:cardId/comments/:commentId", commentHandler.Get)
		users.PUT("/columns/:columnId/cards/:cardId/comments/:commentId", commentHandler.Update)
		users.DELETE("/columns/:columnId/cards/:cardId/comments/:commentId", commentHandler.Delete)
	}

	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Logger.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	if sqlDB, err := s.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	s.Logger.Info("✅ Server exited properly")
}
