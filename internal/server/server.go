package server

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dianapq/Back-Asistente/config"
	"github.com/Dianapq/Back-Asistente/internal/handler"
	"github.com/Dianapq/Back-Asistente/internal/middleware"
	"github.com/Dianapq/Back-Asistente/internal/services"
	"github.com/Dianapq/Back-Asistente/internal/transport/httpdto"
	"github.com/Dianapq/Back-Asistente/pkg/database"
	"github.com/Dianapq/Back-Asistente/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
	db         *sql.DB
}

var (
	ReleaseMode = "release"
	DebugMode   = "debug"
	TestMode    = "test"
)

type Handlers struct {
	Auth *handler.AuthHandler
	Chat *handler.ChatHandler
}

func New(cfg *config.Config, l *logger.Logger, db *sql.DB) *Server {
	if cfg.AppMode == ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	} else if cfg.AppMode == TestMode {
		gin.SetMode(gin.TestMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()

	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.AppPort),
			Handler: engine,
		},
		engine: engine,
		config: cfg,
		logger: l,
		db:     db,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, authService *services.AuthService) {
	includeStack := s.config.AppMode != ReleaseMode

	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.CORSMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.ErrorHandler(s.logger, includeStack))

	s.engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, httpdto.StatusResponse{
			Status:    "success",
			Message:   "API de Asistente funcionando correctamente",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	})

	s.engine.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	s.engine.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(s.db); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpdto.NewErrorResponse("unhealthy"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	chat := s.engine.Group("/api/chat")
	{
		chat.POST("/register", handlers.Auth.Register)
		chat.POST("/login", handlers.Auth.Login)
		chat.POST("", middleware.AuthMiddleware(authService), handlers.Chat.Chat)
		chat.GET("/history", middleware.AuthMiddleware(authService), handlers.Chat.History)
	}

	s.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httpdto.NewErrorResponse(
			fmt.Sprintf("Ruta no encontrada: %s", c.Request.URL.Path)))
	})
}

func (s *Server) Start() error {
	go func() {
		if s.logger != nil {
			s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		}
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if s.logger != nil {
				s.logger.Errorf("Error in starting the server: %s", err)
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	if s.logger != nil {
		s.logger.Infof("Quitting signal received.. Shutting down after 5 seconds")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		if s.logger != nil {
			s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		}
		return err
	}

	return nil
}
