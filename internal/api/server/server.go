package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "audio-review/docs" // Generated swagger docs
	apierrors "audio-review/internal/api/errors"
	"audio-review/internal/api/middleware"
	v1routes "audio-review/internal/api/v1/routes"
	"audio-review/internal/app/metrics"
)

// Config represents API server configuration
type Config struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string
	// AudioDir is served under /audio. Empty when audio comes from object storage.
	AudioDir string
	// StaticDir holds the built review front end.
	StaticDir string
}

// Server represents the API server
type Server struct {
	config     Config
	router     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
}

// NewServer creates a new API server
func NewServer(config Config, container *v1routes.ServiceContainer, logger *zap.Logger, m *metrics.Metrics) *Server {
	if config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger, m))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := router.Group("/api")
	v1routes.RegisterRoutes(api, container)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if config.AudioDir != "" {
		router.Static("/audio", config.AudioDir)
	}
	router.NoRoute(spaFallback(config.StaticDir))

	httpServer := &http.Server{
		Addr:         config.Host + ":" + config.Port,
		Handler:      router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return &Server{
		config:     config,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// spaFallback serves files of the built front end and answers every other
// non-API GET with its index.html so client side routes survive a reload.
func spaFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if staticDir == "" || strings.HasPrefix(path, "/api/") || c.Request.Method != http.MethodGet {
			middleware.HandleError(c, apierrors.NewNotFoundError("Route"))
			return
		}

		if name := filepath.Clean("/" + path); name != "/" {
			file := filepath.Join(staticDir, filepath.FromSlash(name))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
		}

		index := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			middleware.HandleError(c, apierrors.NewNotFoundError("Route"))
			return
		}
		c.File(index)
	}
}

// Start serves in the background. Listen failures are reported on the
// returned channel.
func (s *Server) Start() <-chan error {
	errCh := make(chan error, 1)

	s.logger.Info("Starting API server",
		zap.String("address", s.httpServer.Addr),
		zap.String("environment", s.config.Environment),
	)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Failed to start server", zap.Error(err))
			errCh <- err
		}
		close(errCh)
	}()

	return errCh
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
