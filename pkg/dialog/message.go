// Package dialog implements the guided conversation engine: the session
// state container, the intent grammar, and the stage transition table.
package dialog

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Option is a selectable intent presented to the user.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ItemRef is a selectable catalog entity presented to the user.
type ItemRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Message is one entry of a conversation transcript.
type Message struct {
	From       Role      `json:"from"`
	Text       string    `json:"text"`
	Attachment string    `json:"attachment,omitempty"`
	Options    []Option  `json:"options,omitempty"`
	Items      []ItemRef `json:"items,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func UserMessage(text string) Message {
	return Message{From: RoleUser, Text: text, CreatedAt: time.Now()}
}

func AgentMessage(text string) Message {
	return Message{From: RoleAgent, Text: text, CreatedAt: time.Now()}
}

const menuText = "Hi! I'm your shopping assistant. What can I help you with?"

// TopMenu is the canonical top-level menu. The initial greeting and every
// fallback emit this exact message.
func TopMenu() Message {
	msg := AgentMessage(menuText)
	msg.Options = []Option{
		{Label: "Browse Products", Value: "products"},
		{Label: "My Orders", Value: "orders"},
		{Label: "Payment Help", Value: "payment"},
	}
	return msg
}
