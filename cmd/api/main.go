package main

import (
	"context"
	"log"
	"time"

	"github.com/Dianapq/Back-Asistente/config"
	"github.com/Dianapq/Back-Asistente/internal/completion"
	"github.com/Dianapq/Back-Asistente/internal/handler"
	"github.com/Dianapq/Back-Asistente/internal/repository"
	"github.com/Dianapq/Back-Asistente/internal/server"
	"github.com/Dianapq/Back-Asistente/internal/services"
	"github.com/Dianapq/Back-Asistente/pkg/database"
	"github.com/Dianapq/Back-Asistente/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	l := logger.New(loggerMode(cfg.AppMode))
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := repository.InitSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	convRepo := repository.NewConversationRepository(db)

	authService := services.NewAuthService(userRepo, cfg)
	if !authService.Configured() {
		l.Warnf("JWT_SECRET is not set: register and login will fail until it is configured")
	}

	completer := completion.NewOpenAIClient(
		cfg.OpenAIAPIKey,
		cfg.OpenAIBaseURL,
		completion.Options{
			Model:       cfg.OpenAIModel,
			Temperature: 0.8,
			MaxTokens:   700,
		},
		time.Duration(cfg.CompletionTimeout)*time.Second,
		cfg.CompletionRetries,
	)
	if !completer.Configured() {
		l.Warnf("OPENAI_API_KEY is not set: chat requests will fail until it is configured")
	}

	chatService := services.NewChatService(convRepo, completer)

	handlers := &server.Handlers{
		Auth: handler.NewAuthHandler(authService),
		Chat: handler.NewChatHandler(chatService),
	}

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(handlers, authService)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
}

func loggerMode(appMode string) string {
	if appMode == server.ReleaseMode {
		return logger.ProductionMode
	}
	return logger.DevelopmentMode
}
