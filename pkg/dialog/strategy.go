package dialog

import (
	"context"
	"time"

	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/pkg/llm"
)

// Strategy is how a session turns user input into an agent reply. The two
// implementations (guided state machine, free-form generative passthrough)
// share the same Message and Session shapes and are selected once per
// session via Session.Mode.
type Strategy interface {
	Respond(ctx context.Context, s *Session, raw string) (*Message, error)
}

// GuidedStrategy drives the stage transition table.
type GuidedStrategy struct {
	engine *Engine
}

func NewGuidedStrategy(engine *Engine) *GuidedStrategy {
	return &GuidedStrategy{engine: engine}
}

func (g *GuidedStrategy) Respond(ctx context.Context, s *Session, raw string) (*Message, error) {
	return g.engine.Handle(ctx, s, raw)
}

// FreeformStrategy bypasses the state machine entirely and delegates the raw
// prompt to the generative backend.
type FreeformStrategy struct {
	provider    llm.Provider
	log         logger.ILogger
	callTimeout time.Duration
	historyCap  int
}

func NewFreeformStrategy(provider llm.Provider, log logger.ILogger, callTimeout time.Duration, historyCap int) *FreeformStrategy {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	if historyCap <= 0 {
		historyCap = defaultHistoryCap
	}
	return &FreeformStrategy{
		provider:    provider,
		log:         log,
		callTimeout: callTimeout,
		historyCap:  historyCap,
	}
}

func (f *FreeformStrategy) Respond(ctx context.Context, s *Session, raw string) (*Message, error) {
	if !s.acquire() {
		return nil, ErrSessionBusy
	}
	defer s.release()

	s.Append(UserMessage(raw))

	callCtx, cancel := context.WithTimeout(ctx, f.callTimeout)
	defer cancel()

	text, err := f.provider.Generate(callCtx, raw)
	if err != nil {
		f.log.Error("FreeformStrategy", "Model call failed", map[string]interface{}{
			"session_id": s.ID,
			"error":      err.Error(),
		})
		msg := s.Append(AgentMessage(ErrorPrefix + err.Error()))
		return &msg, nil
	}

	msg := s.Append(AgentMessage(text))
	if len(s.History) > f.historyCap {
		s.History = s.History[len(s.History)-f.historyCap:]
	}
	return &msg, nil
}
