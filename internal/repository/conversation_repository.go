package repository

import (
	"context"
	"fmt"

	"github.com/Dianapq/Back-Asistente/internal/domain/conversation"
	asistente_errors "github.com/Dianapq/Back-Asistente/pkg/errors"

	"github.com/google/uuid"
)

type PostgresConversationRepository struct {
	db DBTX
}

func NewConversationRepository(db DBTX) ConversationRepository {
	return &PostgresConversationRepository{db: db}
}

func (r *PostgresConversationRepository) Create(ctx context.Context, c *conversation.Conversation) error {
	query := `INSERT INTO conversations (id, user_id, prompt, response, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Prompt, c.Response, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return asistente_errors.ErrAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresConversationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error) {
	query := `SELECT id, user_id, prompt, response, created_at FROM conversations
	          WHERE user_id = $1
	          ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	conversations := make([]conversation.Conversation, 0)
	for rows.Next() {
		var c conversation.Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Prompt, &c.Response, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		conversations = append(conversations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return conversations, nil
}
