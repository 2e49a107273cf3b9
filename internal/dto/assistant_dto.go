package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Mode string `json:"mode" validate:"omitempty,oneof=guided freeform"`
}

type CreateSessionResponse struct {
	Id       uuid.UUID   `json:"id"`
	Mode     string      `json:"mode"`
	Greeting *MessageDTO `json:"greeting,omitempty"`
}

type MessageDTO struct {
	From       string       `json:"from"`
	Text       string       `json:"text"`
	Attachment string       `json:"attachment,omitempty"`
	Options    []OptionDTO  `json:"options,omitempty"`
	Items      []ItemRefDTO `json:"items,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

type OptionDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ItemRefDTO struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type SendChatRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Chat      string    `json:"chat" validate:"required"`
}

type SendChatResponse struct {
	SessionId uuid.UUID   `json:"session_id"`
	Stage     string      `json:"stage"`
	Reply     *MessageDTO `json:"reply"`
}

type SetModeRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
	Mode      string    `json:"mode" validate:"required,oneof=guided freeform"`
}

type DeleteSessionRequest struct {
	SessionId uuid.UUID `json:"session_id" validate:"required"`
}
