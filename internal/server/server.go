package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"jobboard/internal/config"
	"jobboard/internal/handler"
	"jobboard/internal/middleware"
	"jobboard/internal/repository"
	"jobboard/internal/service"
)

type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(db *repository.DB, cfg *config.Config, logger *zap.Logger, accessLog *logrus.Logger) *Server {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(accessLog),
		middleware.ErrorHandler(logger),
		cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
		}),
	)

	s := &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}

	s.setupRoutes(db, accessLog)

	return s
}

func (s *Server) setupRoutes(db *repository.DB, accessLog *logrus.Logger) {
	userRepo := repository.NewUserRepository(db, accessLog)
	jobRepo := repository.NewJobRepository(db, accessLog)

	tokenService := service.NewTokenService(s.cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokenService, s.logger)
	jobService := service.NewJobService(jobRepo, s.logger)

	authHandler := handler.NewAuthHandler(authService, accessLog)
	jobsHandler := handler.NewJobsHandler(jobService, accessLog)

	authenticate := middleware.Authenticate(tokenService, s.logger)

	s.router.GET("/health", handler.Health)
	s.router.NoRoute(middleware.NotFound)

	api := s.router.Group("/api/" + s.cfg.APIVersion)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/profile", authenticate, authHandler.Profile)

	jobsGroup := api.Group("/jobs")
	jobsGroup.GET("", jobsHandler.List)
	jobsGroup.GET("/:id", jobsHandler.Get)
	jobsGroup.POST("", authenticate, jobsHandler.Create)
	jobsGroup.PUT("/:id", authenticate, middleware.RequireAdmin(), jobsHandler.Update)
	jobsGroup.DELETE("/:id", authenticate, middleware.RequireAdmin(), jobsHandler.Delete)
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("port", s.cfg.Port), zap.String("apiVersion", s.cfg.APIVersion))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info("Shutting down server")
	return srv.Shutdown(shutdownCtx)
}
