package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"catalog-assistant-be/internal/dto"
	"catalog-assistant-be/internal/mapper"
	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/internal/repository/memory"
	"catalog-assistant-be/pkg/dialog"
	"catalog-assistant-be/pkg/gateway"
	"catalog-assistant-be/pkg/llm"
)

var ErrSessionNotFound = errors.New("session not found")

// IAssistantService defines the conversational assistant service interface
type IAssistantService interface {
	CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageDTO, error)
	SetMode(ctx context.Context, request *dto.SetModeRequest) (*dto.CreateSessionResponse, error)
	DeleteSession(ctx context.Context, request *dto.DeleteSessionRequest) error
}

type assistantService struct {
	sessionRepo *memory.SessionRepository
	engine      *dialog.Engine
	guided      dialog.Strategy
	freeform    dialog.Strategy
	log         logger.ILogger
}

func NewAssistantService(
	sessionRepo *memory.SessionRepository,
	catalogGateway gateway.CatalogGateway,
	llmProvider llm.Provider,
	log logger.ILogger,
	callTimeout time.Duration,
	historyCap int,
) IAssistantService {
	engine := dialog.NewEngine(catalogGateway, log, callTimeout, historyCap)

	return &assistantService{
		sessionRepo: sessionRepo,
		engine:      engine,
		guided:      dialog.NewGuidedStrategy(engine),
		freeform:    dialog.NewFreeformStrategy(llmProvider, log, callTimeout, historyCap),
		log:         log,
	}
}

// CreateSession starts a new conversation and greets with the top-level menu.
func (as *assistantService) CreateSession(ctx context.Context, request *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	session := dialog.NewSession(dialog.Mode(request.Mode))
	greeting := as.engine.Greeting(session)
	as.sessionRepo.Save(session)

	as.log.Info("AssistantService", "Session created", map[string]interface{}{
		"session_id": session.ID,
		"mode":       session.Mode,
	})

	return &dto.CreateSessionResponse{
		Id:       session.ID,
		Mode:     string(session.Mode),
		Greeting: mapper.ToMessageDTO(greeting),
	}, nil
}

// SendChat routes the input through the session's strategy. The strategy is
// responsible for recording both the input and the reply on the transcript.
func (as *assistantService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session, found := as.sessionRepo.Get(request.SessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}

	strategy := as.guided
	if session.Mode == dialog.ModeFreeform {
		strategy = as.freeform
	}

	reply, err := strategy.Respond(ctx, session, request.Chat)
	if err != nil {
		return nil, err
	}

	// Refresh the session TTL
	as.sessionRepo.Save(session)

	return &dto.SendChatResponse{
		SessionId: session.ID,
		Stage:     string(session.Stage),
		Reply:     mapper.ToMessageDTO(reply),
	}, nil
}

func (as *assistantService) GetChatHistory(ctx context.Context, sessionId uuid.UUID) ([]*dto.MessageDTO, error) {
	session, found := as.sessionRepo.Get(sessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}
	return mapper.ToMessageDTOs(session.History), nil
}

// SetMode switches the strategy used for subsequent messages.
func (as *assistantService) SetMode(ctx context.Context, request *dto.SetModeRequest) (*dto.CreateSessionResponse, error) {
	session, found := as.sessionRepo.Get(request.SessionId.String())
	if !found {
		return nil, ErrSessionNotFound
	}
	if session.IsBusy() {
		return nil, dialog.ErrSessionBusy
	}

	session.Mode = dialog.Mode(request.Mode)
	as.sessionRepo.Save(session)

	return &dto.CreateSessionResponse{
		Id:   session.ID,
		Mode: string(session.Mode),
	}, nil
}

func (as *assistantService) DeleteSession(ctx context.Context, request *dto.DeleteSessionRequest) error {
	if _, found := as.sessionRepo.Get(request.SessionId.String()); !found {
		return ErrSessionNotFound
	}
	as.sessionRepo.Delete(request.SessionId.String())
	return nil
}
