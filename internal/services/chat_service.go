package services

import (
	"context"
	"strings"
	"time"

	"github.com/Dianapq/Back-Asistente/internal/completion"
	"github.com/Dianapq/Back-Asistente/internal/domain/conversation"
	"github.com/Dianapq/Back-Asistente/internal/repository"
	asistente_errors "github.com/Dianapq/Back-Asistente/pkg/errors"

	"github.com/google/uuid"
)

type ChatService struct {
	convRepo  repository.ConversationRepository
	completer completion.Completer
}

func NewChatService(convRepo repository.ConversationRepository, completer completion.Completer) *ChatService {
	return &ChatService{convRepo: convRepo, completer: completer}
}

// Chat sends the prompt to the completion provider and, only on success,
// records the exchange for the user. Nothing is written on any failure path.
func (s *ChatService) Chat(ctx context.Context, userID uuid.UUID, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", asistente_errors.ErrInvalidInput
	}
	if !s.completer.Configured() {
		return "", asistente_errors.ErrNotConfigured
	}

	response, err := s.completer.Complete(ctx, completion.SystemPrompt, prompt)
	if err != nil {
		return "", err
	}

	record := &conversation.Conversation{
		ID:        uuid.New(),
		UserID:    userID,
		Prompt:    prompt,
		Response:  response,
		CreatedAt: time.Now(),
	}
	if err := s.convRepo.Create(ctx, record); err != nil {
		return "", err
	}

	return response, nil
}

// History returns the user's conversations ordered oldest first.
func (s *ChatService) History(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error) {
	return s.convRepo.ListByUser(ctx, userID)
}
