package repository

import (
	"context"

	"github.com/Dianapq/Back-Asistente/internal/domain/conversation"
	"github.com/Dianapq/Back-Asistente/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository persists account credentials.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByUsername(ctx context.Context, username string) (user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

// ConversationRepository persists prompt/response pairs per user.
type ConversationRepository interface {
	Create(ctx context.Context, c *conversation.Conversation) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error)
}
