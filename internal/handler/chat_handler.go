package handler

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"catalog-assistant-be/internal/dto"
	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/internal/service"
	"catalog-assistant-be/internal/websocket"
)

// ChatHandler bridges websocket chat frames to the assistant service. Each
// inbound frame is one user input; the reply fans out to every socket of
// the session.
type ChatHandler struct {
	hub              *websocket.Hub
	assistantService service.IAssistantService
	logger           logger.ILogger
}

type inboundFrame struct {
	Chat string `json:"chat"`
}

type errorFrame struct {
	Message string `json:"message"`
}

func NewChatHandler(hub *websocket.Hub, assistantService service.IAssistantService, log logger.ILogger) *ChatHandler {
	return &ChatHandler{
		hub:              hub,
		assistantService: assistantService,
		logger:           log,
	}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	r.Use("/assistant/v1/ws", func(ctx *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	r.Get("/assistant/v1/ws/:id", fiberws.New(func(conn *fiberws.Conn) {
		sessionID, err := uuid.Parse(conn.Params("id"))
		if err != nil {
			conn.Close()
			return
		}
		websocket.ServeWs(h.hub, conn, sessionID, h.handleInbound)
	}))
}

func (h *ChatHandler) handleInbound(sessionID uuid.UUID, payload []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(payload, &frame); err != nil {
		h.sendError(sessionID, "invalid frame: expected {\"chat\": \"...\"}")
		return
	}

	res, err := h.assistantService.SendChat(context.Background(), &dto.SendChatRequest{
		SessionId: sessionID,
		Chat:      frame.Chat,
	})
	if err != nil {
		h.sendError(sessionID, err.Error())
		return
	}

	out, err := json.Marshal(res)
	if err != nil {
		h.logger.Error("ChatHandler", "Failed to marshal reply", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return
	}
	h.hub.SendToSession(sessionID, out)
}

func (h *ChatHandler) sendError(sessionID uuid.UUID, message string) {
	out, err := json.Marshal(errorFrame{Message: message})
	if err != nil {
		return
	}
	h.hub.SendToSession(sessionID, out)
}
