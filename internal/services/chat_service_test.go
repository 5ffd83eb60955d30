package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Dianapq/Back-Asistente/internal/domain/conversation"
	asistente_errors "github.com/Dianapq/Back-Asistente/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompleter struct {
	response   string
	err        error
	configured bool
	calls      int
}

func (f *fakeCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeCompleter) Configured() bool {
	return f.configured
}

type fakeConvRepo struct {
	records   []conversation.Conversation
	createErr error
	listErr   error
}

func (f *fakeConvRepo) Create(ctx context.Context, c *conversation.Conversation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.records = append(f.records, *c)
	return nil
}

func (f *fakeConvRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]conversation.Conversation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]conversation.Conversation, 0)
	for _, c := range f.records {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, nil
}

func TestChat_Success(t *testing.T) {
	repo := &fakeConvRepo{}
	comp := &fakeCompleter{response: "Te recomiendo un sedán compacto.", configured: true}
	s := NewChatService(repo, comp)
	userID := uuid.New()

	response, err := s.Chat(context.Background(), userID, "¿Qué auto me recomiendas con $10000?")
	require.NoError(t, err)
	assert.Equal(t, "Te recomiendo un sedán compacto.", response)

	require.Len(t, repo.records, 1)
	assert.Equal(t, userID, repo.records[0].UserID)
	assert.Equal(t, "¿Qué auto me recomiendas con $10000?", repo.records[0].Prompt)
	assert.Equal(t, response, repo.records[0].Response)
	assert.False(t, repo.records[0].CreatedAt.IsZero())
}

func TestChat_EmptyPromptIsNoOp(t *testing.T) {
	repo := &fakeConvRepo{}
	comp := &fakeCompleter{response: "x", configured: true}
	s := NewChatService(repo, comp)

	for _, prompt := range []string{"", "   ", "\n\t"} {
		_, err := s.Chat(context.Background(), uuid.New(), prompt)
		assert.ErrorIs(t, err, asistente_errors.ErrInvalidInput)
	}

	assert.Zero(t, comp.calls)
	assert.Empty(t, repo.records)
}

func TestChat_UnconfiguredGatewayFailsFast(t *testing.T) {
	repo := &fakeConvRepo{}
	comp := &fakeCompleter{configured: false}
	s := NewChatService(repo, comp)

	_, err := s.Chat(context.Background(), uuid.New(), "hola")
	assert.ErrorIs(t, err, asistente_errors.ErrNotConfigured)
	assert.Zero(t, comp.calls)
	assert.Empty(t, repo.records)
}

func TestChat_UpstreamFailureWritesNothing(t *testing.T) {
	repo := &fakeConvRepo{}
	upstream := fmt.Errorf("%w: quota exceeded", asistente_errors.ErrUpstream)
	comp := &fakeCompleter{err: upstream, configured: true}
	s := NewChatService(repo, comp)

	_, err := s.Chat(context.Background(), uuid.New(), "hola")
	assert.ErrorIs(t, err, asistente_errors.ErrUpstream)
	assert.Empty(t, repo.records)
}

func TestChat_PersistFailureSurfaces(t *testing.T) {
	repo := &fakeConvRepo{createErr: fmt.Errorf("db error")}
	comp := &fakeCompleter{response: "x", configured: true}
	s := NewChatService(repo, comp)

	_, err := s.Chat(context.Background(), uuid.New(), "hola")
	assert.Error(t, err)
}

func TestHistory_OnlyOwnRecordsInOrder(t *testing.T) {
	repo := &fakeConvRepo{}
	comp := &fakeCompleter{response: "ok", configured: true}
	s := NewChatService(repo, comp)

	alice := uuid.New()
	bob := uuid.New()

	_, err := s.Chat(context.Background(), alice, "primera")
	require.NoError(t, err)
	_, err = s.Chat(context.Background(), bob, "ajena")
	require.NoError(t, err)
	_, err = s.Chat(context.Background(), alice, "segunda")
	require.NoError(t, err)

	history, err := s.History(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "primera", history[0].Prompt)
	assert.Equal(t, "segunda", history[1].Prompt)
}

func TestHistory_EmptyIsNotAnError(t *testing.T) {
	s := NewChatService(&fakeConvRepo{}, &fakeCompleter{configured: true})

	history, err := s.History(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
