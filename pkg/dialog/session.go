package dialog

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Stage is the discrete state of the guided conversation.
type Stage string

const (
	StageInitial          Stage = "initial"
	StageBrowsingCategory Stage = "browsing_category"
	StageItemDetail       Stage = "item_detail"
	StagePaymentHelp      Stage = "payment_help"
	StageFallback         Stage = "fallback"
)

// Mode selects the dialog strategy for a session, once at creation.
type Mode string

const (
	ModeGuided   Mode = "guided"
	ModeFreeform Mode = "freeform"
)

// Session context keys
const (
	ctxListedItems  = "listed_items"
	ctxSelectedItem = "selected_item"
	ctxCartItems    = "cart_items"
)

// Session is the mutable conversation state. One session is driven by one
// caller at a time; the Busy flag rejects a second input while a gateway
// call is outstanding. Multiple sockets or HTTP calls can carry the same
// session, so claiming it goes through acquire/release, never the bare flag.
type Session struct {
	ID        uuid.UUID         `json:"id"`
	Stage     Stage             `json:"stage"`
	Mode      Mode              `json:"mode"`
	Context   map[string]string `json:"context"`
	History   []Message         `json:"history"`
	Busy      bool              `json:"busy"`
	CreatedAt time.Time         `json:"created_at"`

	mu sync.Mutex
}

func NewSession(mode Mode) *Session {
	if mode == "" {
		mode = ModeGuided
	}
	return &Session{
		ID:        uuid.New(),
		Stage:     StageInitial,
		Mode:      mode,
		Context:   make(map[string]string),
		History:   []Message{},
		CreatedAt: time.Now(),
	}
}

// acquire claims the session for one request. It reports false when another
// request is already in flight.
func (s *Session) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Busy {
		return false
	}
	s.Busy = true
	return true
}

func (s *Session) release() {
	s.mu.Lock()
	s.Busy = false
	s.mu.Unlock()
}

// IsBusy reports whether a request is currently in flight.
func (s *Session) IsBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Busy
}

// Append adds a message to the transcript. History is append-only; trimming
// to the cap is the engine's job.
func (s *Session) Append(msg Message) Message {
	s.History = append(s.History, msg)
	return msg
}

// rememberListed records which item ids the user was shown so a later
// selection can be validated without a network call.
func (s *Session) rememberListed(ids []string) {
	s.Context[ctxListedItems] = strings.Join(ids, ",")
}

func (s *Session) wasListed(id string) bool {
	for _, listed := range strings.Split(s.Context[ctxListedItems], ",") {
		if listed != "" && listed == id {
			return true
		}
	}
	return false
}

func (s *Session) addToCart(id string) {
	existing := s.Context[ctxCartItems]
	if existing == "" {
		s.Context[ctxCartItems] = id
		return
	}
	s.Context[ctxCartItems] = existing + "," + id
}
