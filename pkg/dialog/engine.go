package dialog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/pkg/gateway"
)

// ErrorPrefix marks agent messages that record a failed gateway call.
const ErrorPrefix = "⚠️ Error: "

// ErrSessionBusy is returned when input arrives while a gateway call for the
// same session is still outstanding.
var ErrSessionBusy = errors.New("session has a request in flight")

const (
	defaultCallTimeout = 15 * time.Second
	defaultHistoryCap  = 200
)

// Engine is the finite-state controller for guided conversations. Stage
// transitions are a pure function of (stage, intent); the transition table
// is fixed at construction.
type Engine struct {
	gw          gateway.CatalogGateway
	log         logger.ILogger
	callTimeout time.Duration
	historyCap  int

	transitions map[transitionKey]transitionFunc
}

type transitionKey struct {
	stage  Stage
	intent IntentKind
}

type transitionFunc func(ctx context.Context, s *Session, in Intent) *Message

func NewEngine(gw gateway.CatalogGateway, log logger.ILogger, callTimeout time.Duration, historyCap int) *Engine {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	if historyCap <= 0 {
		historyCap = defaultHistoryCap
	}

	e := &Engine{
		gw:          gw,
		log:         log,
		callTimeout: callTimeout,
		historyCap:  historyCap,
	}
	e.transitions = map[transitionKey]transitionFunc{
		{StageInitial, IntentProducts}:            e.listProducts,
		{StageInitial, IntentOrders}:              e.listOrders,
		{StageInitial, IntentPayment}:             e.paymentHelp,
		{StageBrowsingCategory, IntentSelectItem}: e.itemDetail,
		{StageItemDetail, IntentAddToCart}:        e.addToCart,
		{StageItemDetail, IntentBack}:             e.listProducts,
		{StagePaymentHelp, IntentPaymentTopic}:    e.paymentTopic,
	}
	return e
}

// Greeting appends and returns the canonical top-level menu. Used when a
// session is created.
func (e *Engine) Greeting(s *Session) *Message {
	msg := s.Append(TopMenu())
	return &msg
}

// Handle interprets one user input against the session's current stage and
// returns the agent's reply. The reply (including the error reply for a
// failed gateway call) is always appended to history first; Handle only
// errors when the session is busy.
func (e *Engine) Handle(ctx context.Context, s *Session, raw string) (*Message, error) {
	if !s.acquire() {
		return nil, ErrSessionBusy
	}
	defer s.release()

	s.Append(UserMessage(raw))

	in := ParseIntent(raw)
	if in.Kind == IntentUnknown && s.Stage == StageBrowsingCategory && s.wasListed(in.Arg) {
		in = Intent{Kind: IntentSelectItem, Arg: in.Arg}
	}

	handler, ok := e.transitions[transitionKey{s.Stage, in.Kind}]
	if !ok {
		handler = e.fallback
	}

	reply := handler(ctx, s, in)
	msg := s.Append(*reply)
	e.trimHistory(s)
	return &msg, nil
}

// --- Transition handlers ---
// Handlers return the agent reply and set the new stage. Handlers that call
// the gateway leave the stage untouched on failure so the user can retry.

func (e *Engine) listProducts(ctx context.Context, s *Session, _ Intent) *Message {
	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	offerings, err := e.gw.ListOfferings(callCtx)
	if err != nil {
		return e.gatewayError(s, "list offerings", err)
	}

	items := make([]ItemRef, 0, len(offerings))
	ids := make([]string, 0, len(offerings))
	for _, o := range offerings {
		items = append(items, ItemRef{
			ID:          o.ID,
			Name:        o.Name,
			Description: fmt.Sprintf("$%.2f | %s", o.Price, o.Category),
		})
		ids = append(ids, o.ID)
	}

	msg := AgentMessage("Here's what we have in stock. Pick an item for details:")
	msg.Items = items
	s.rememberListed(ids)
	s.Stage = StageBrowsingCategory
	e.log.Info("DialogEngine", "Listed offerings", map[string]interface{}{
		"session_id": s.ID,
		"count":      len(items),
	})
	return &msg
}

func (e *Engine) listOrders(ctx context.Context, s *Session, _ Intent) *Message {
	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	orders, err := e.gw.ListOrders(callCtx)
	if err != nil {
		return e.gatewayError(s, "list orders", err)
	}

	if len(orders) == 0 {
		msg := AgentMessage("You don't have any orders yet.")
		return &msg
	}

	items := make([]ItemRef, 0, len(orders))
	for _, o := range orders {
		name := o.Number
		if name == "" {
			name = o.ID
		}
		items = append(items, ItemRef{
			ID:          o.ID,
			Name:        name,
			Description: fmt.Sprintf("%s | $%.2f", o.Status, o.Total),
		})
	}

	// No drill-down for orders; stage stays where it is
	msg := AgentMessage("Here are your orders:")
	msg.Items = items
	return &msg
}

func (e *Engine) paymentHelp(_ context.Context, s *Session, _ Intent) *Message {
	msg := AgentMessage("Sure, what do you need help with?")
	msg.Options = []Option{
		{Label: "Payment Methods", Value: "payment_methods"},
		{Label: "Refund Status", Value: "payment_refunds"},
		{Label: "Billing Question", Value: "payment_billing"},
	}
	s.Stage = StagePaymentHelp
	return &msg
}

var paymentAnswers = map[string]string{
	"methods": "We accept credit cards, bank transfers and purchase orders. You can manage saved methods from your account page.",
	"refunds": "Refunds are processed within 5 business days of approval. Check an order's detail page for its refund status.",
	"billing": "For billing questions, your invoices are available under Account → Billing. Anything unclear there, contact support and include the invoice number.",
}

func (e *Engine) paymentTopic(ctx context.Context, s *Session, in Intent) *Message {
	answer, ok := paymentAnswers[in.Arg]
	if !ok {
		return e.fallback(ctx, s, in)
	}
	msg := AgentMessage(answer)
	return &msg
}

func (e *Engine) itemDetail(ctx context.Context, s *Session, in Intent) *Message {
	callCtx, cancel := context.WithTimeout(ctx, e.callTimeout)
	defer cancel()

	offering, err := e.gw.GetOffering(callCtx, in.Arg)
	if err != nil {
		return e.gatewayError(s, "get offering", err)
	}

	msg := AgentMessage(fmt.Sprintf(
		"%s\n%s\nPrice: $%.2f\nCategory: %s",
		offering.Name,
		offering.Description,
		offering.Price,
		offering.Category,
	))
	msg.Options = []Option{
		{Label: "Add to Cart", Value: "cart_" + offering.ID},
		{Label: "Back to Products", Value: "back"},
	}
	s.Context[ctxSelectedItem] = offering.ID
	s.Stage = StageItemDetail
	return &msg
}

func (e *Engine) addToCart(_ context.Context, s *Session, in Intent) *Message {
	s.addToCart(in.Arg)
	msg := AgentMessage("✅ Added to your cart. Anything else?")
	msg.Options = TopMenu().Options
	s.Stage = StageInitial
	return &msg
}

// fallback re-offers the top-level menu and returns the session to Initial.
// Unrecognized input is not an error.
func (e *Engine) fallback(_ context.Context, s *Session, _ Intent) *Message {
	msg := TopMenu()
	s.Stage = StageInitial
	return &msg
}

func (e *Engine) gatewayError(s *Session, op string, err error) *Message {
	e.log.Error("DialogEngine", "Gateway call failed", map[string]interface{}{
		"session_id": s.ID,
		"op":         op,
		"error":      err.Error(),
	})
	msg := AgentMessage(ErrorPrefix + err.Error())
	return &msg
}

// trimHistory bounds the transcript length. The newest messages win.
func (e *Engine) trimHistory(s *Session) {
	if len(s.History) > e.historyCap {
		s.History = s.History[len(s.History)-e.historyCap:]
	}
}
