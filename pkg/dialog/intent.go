package dialog

import "strings"

// IntentKind tags the recognized intent classes. Raw user input is parsed
// once into an Intent; the transition table dispatches on the tag, never on
// raw strings.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentProducts
	IntentOrders
	IntentPayment
	IntentPaymentTopic
	IntentSelectItem
	IntentAddToCart
	IntentBack
)

type Intent struct {
	Kind IntentKind
	Arg  string
}

// ParseIntent maps raw input (typed text or a selected option value) to a
// tagged intent. Unrecognized input stays IntentUnknown; the engine decides
// whether it is an item selection or a fallback based on the current stage.
func ParseIntent(raw string) Intent {
	trimmed := strings.TrimSpace(raw)
	lowered := strings.ToLower(trimmed)

	switch lowered {
	case "products", "browse_products":
		return Intent{Kind: IntentProducts}
	case "orders", "my_orders":
		return Intent{Kind: IntentOrders}
	case "payment", "payment_help":
		return Intent{Kind: IntentPayment}
	case "back", "back_to_products":
		return Intent{Kind: IntentBack}
	}

	if id, ok := strings.CutPrefix(trimmed, "cart_"); ok && id != "" {
		return Intent{Kind: IntentAddToCart, Arg: id}
	}
	if topic, ok := strings.CutPrefix(lowered, "payment_"); ok && topic != "" {
		return Intent{Kind: IntentPaymentTopic, Arg: topic}
	}

	return Intent{Kind: IntentUnknown, Arg: trimmed}
}
