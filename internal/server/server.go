package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/socialape/backend/internal/cache"
	"github.com/socialape/backend/internal/config"
	"github.com/socialape/backend/internal/database"
	"github.com/socialape/backend/internal/handlers"
	"github.com/socialape/backend/internal/logger"
	"github.com/socialape/backend/internal/middleware"
	"github.com/socialape/backend/internal/repository/postgres"
	"github.com/socialape/backend/internal/service"
	"github.com/socialape/backend/internal/storage"
	"github.com/socialape/backend/internal/triggers"
)

type Server struct {
	cfg     config.Config
	db      database.Service
	handler *handlers.Handler
	users   *service.UserService
	bus     *triggers.Bus
	reactor *triggers.Reactor
}

// New wires the repositories, services, reaction engine and handlers.
func New(cfg config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	images, err := newImageStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}

	gormDB := db.GetDB()
	userRepo := postgres.NewUserRepository(gormDB)
	postRepo := postgres.NewPostRepository(gormDB)
	notificationRepo := postgres.NewNotificationRepository(gormDB)

	unread := cache.NewUnreadCounter(cfg.RedisAddr, cfg.RedisPassword)
	bus := triggers.NewBus(logger.Log)
	reactor := triggers.NewReactor(userRepo, postRepo, notificationRepo, unread, logger.Log)

	users := service.NewUserService(userRepo, postRepo, notificationRepo, images, bus, unread, cfg.JWTSecret)
	posts := service.NewPostService(postRepo, userRepo, bus)
	notifications := service.NewNotificationService(notificationRepo, unread)

	return &Server{
		cfg:     cfg,
		db:      db,
		handler: handlers.NewHandler(users, posts, notifications),
		users:   users,
		bus:     bus,
		reactor: reactor,
	}, nil
}

func newImageStorage(cfg config.Config) (storage.ImageStorage, error) {
	if cfg.StorageBackend == "minio" {
		return storage.NewMinioStorage(
			cfg.MinioEndpoint,
			cfg.MinioAccessKey,
			cfg.MinioSecretKey,
			cfg.MinioBucket,
			cfg.MinioUseSSL,
		)
	}
	return storage.NewLocalStorage(cfg.LocalStoragePath, "")
}

// RunTriggers starts the reaction worker; it returns when ctx is cancelled.
func (s *Server) RunTriggers(ctx context.Context) {
	s.bus.Run(ctx, s.reactor)
}

func (s *Server) Close() error {
	return s.db.Close()
}

// HTTPServer wraps the configured router in an http.Server.
func (s *Server) HTTPServer() *http.Server {
	router := s.RegisterRoutes()

	server := &http.Server{
		Addr:         "0.0.0.0:" + s.cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Log.Info("server configured", zap.String("port", s.cfg.Port))
	return server
}

// RegisterRoutes sets up all application routes
func (s *Server) RegisterRoutes() *gin.Engine {
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{s.cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	if s.cfg.StorageBackend == "local" {
		r.Static("/uploads", s.cfg.LocalStoragePath)
	}

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.db.Health())
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		api.POST("/signup", s.handler.Auth.Signup)
		api.POST("/login", s.handler.Auth.Login)

		// Post routes (public reads)
		api.GET("/posts", s.handler.Post.GetPosts)
		api.GET("/post/:postId", s.handler.Post.GetPost)

		// User routes (public reads)
		api.GET("/user/:userId", s.handler.User.GetUserData)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(s.users, s.cfg.JWTSecret))
		{
			// User protected routes
			protected.GET("/user", s.handler.User.GetOwnData)
			protected.POST("/user", s.handler.User.UpdateProfile)
			protected.POST("/user/avatar", s.handler.User.UploadAvatar)
			protected.POST("/notifications", s.handler.Notification.MarkRead)

			// Post protected routes
			protected.POST("/post", s.handler.Post.CreatePost)
			protected.DELETE("/post/:postId", s.handler.Post.DeletePost)
			protected.GET("/post/:postId/like", s.handler.Post.LikePost)
			protected.GET("/post/:postId/unlike", s.handler.Post.UnlikePost)
			protected.POST("/post/:postId/comment", s.handler.Post.CreateComment)
		}
	}

	return r
}
