package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-assistant-be/internal/dto"
	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/internal/repository/memory"
)

type stubProvider struct {
	reply string
}

func (s *stubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	return s.reply, nil
}

func newTestAssistant(gw *stubGateway) IAssistantService {
	return NewAssistantService(
		memory.NewSessionRepository(),
		gw,
		&stubProvider{reply: "generated answer"},
		logger.NewNopLogger(),
		5*time.Second,
		50,
	)
}

func TestCreateSession(t *testing.T) {
	svc := newTestAssistant(&stubGateway{})

	res, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, res.Id)
	assert.Equal(t, "guided", res.Mode)
	require.NotNil(t, res.Greeting)
	assert.Len(t, res.Greeting.Options, 3)
}

func TestSendChatGuided(t *testing.T) {
	gw := &stubGateway{offerings: catalogFixture()}
	svc := newTestAssistant(gw)

	created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{})
	require.NoError(t, err)

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: created.Id,
		Chat:      "products",
	})

	require.NoError(t, err)
	assert.Equal(t, "browsing_category", res.Stage)
	require.NotNil(t, res.Reply)
	assert.Len(t, res.Reply.Items, 3)
}

func TestSendChatFreeform(t *testing.T) {
	svc := newTestAssistant(&stubGateway{})

	created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{Mode: "freeform"})
	require.NoError(t, err)

	res, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: created.Id,
		Chat:      "do you sell laptops?",
	})

	require.NoError(t, err)
	assert.Equal(t, "generated answer", res.Reply.Text)
	// Free-form mode never advances the state machine
	assert.Equal(t, "initial", res.Stage)
}

func TestSendChatUnknownSession(t *testing.T) {
	svc := newTestAssistant(&stubGateway{})

	_, err := svc.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: uuid.New(),
		Chat:      "products",
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionLifecycle(t *testing.T) {
	svc := newTestAssistant(&stubGateway{})

	created, err := svc.CreateSession(context.Background(), &dto.CreateSessionRequest{})
	require.NoError(t, err)

	// Greeting is on the transcript
	history, err := svc.GetChatHistory(context.Background(), created.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "agent", history[0].From)

	// Switch mode, then delete
	_, err = svc.SetMode(context.Background(), &dto.SetModeRequest{SessionId: created.Id, Mode: "freeform"})
	require.NoError(t, err)

	err = svc.DeleteSession(context.Background(), &dto.DeleteSessionRequest{SessionId: created.Id})
	require.NoError(t, err)

	_, err = svc.GetChatHistory(context.Background(), created.Id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
