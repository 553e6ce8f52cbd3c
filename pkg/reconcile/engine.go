package reconcile

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"echomart-be/pkg/store"
)

// contextWindow is how many trailing agent messages a pass may re-scan.
// Older history is never revisited.
const contextWindow = 3

// DefaultDwell is how long the order confirmation stays visible before the
// auto-hide fires.
const DefaultDwell = 10 * time.Second

// recoverLinesFromReceiptText gates the empty-cart fallback at
// finalization. ExtractOrderLines could rebuild an order from the
// confirmation text alone, but live transcripts always fill the cart before
// checkout, so the branch has never been exercised and stays off.
const recoverLinesFromReceiptText = false

// Result reports what a reconciliation pass changed.
type Result struct {
	CartChanged bool
	OrderPlaced *store.Order
}

// Engine derives structured cart and order state from a session's chat
// transcript. It owns the per-session auto-hide timers; all session
// mutation happens under the session's own lock, one pass at a time.
type Engine struct {
	dwell time.Duration
	now   func() time.Time

	// onAutoHide is invoked after a dwell timer clears the order banner,
	// outside the session lock. Typically wired to the WebSocket hub.
	onAutoHide func(sessionID string)

	mu     sync.Mutex
	timers map[string]*time.Timer
}

func NewEngine(dwell time.Duration, onAutoHide func(sessionID string)) *Engine {
	if dwell <= 0 {
		dwell = DefaultDwell
	}
	return &Engine{
		dwell:      dwell,
		now:        time.Now,
		onAutoHide: onAutoHide,
		timers:     make(map[string]*time.Timer),
	}
}

// Process runs one reconciliation pass over the session transcript. It is
// idempotent: a call with no transcript growth since the previous call is
// a no-op. Extraction misses are silent; state simply does not advance.
func (e *Engine) Process(s *store.Session) Result {
	s.Lock()
	defer s.Unlock()

	var res Result

	if len(s.Messages) == s.ProcessedCount {
		return res
	}
	s.ProcessedCount = len(s.Messages)

	window := lastAgentMessages(s.Messages, contextWindow)
	if len(window) == 0 {
		return res
	}

	last := window[len(window)-1]
	lower := strings.ToLower(last.Text)

	// Agent confirming an item before adding it.
	if strings.Contains(lower, "you want") && strings.Contains(lower, "rupees") {
		if item, ok := ExtractPendingItem(last.Text); ok {
			s.PendingItem = &item
		}
	}

	// Agent confirming an item landed in the cart. Resolution order: the
	// message itself, then the pending item (consumed), then the previous
	// agent message.
	if (strings.Contains(lower, "added") || strings.Contains(lower, "i've added")) &&
		strings.Contains(lower, "cart") {
		items := ExtractAddedItems(last.Text)
		if len(items) == 0 && s.PendingItem != nil {
			items = []store.CartLine{*s.PendingItem}
			s.PendingItem = nil
		}
		if len(items) == 0 && len(window) > 1 {
			items = ExtractAddedItems(window[len(window)-2].Text)
		}
		if len(items) > 0 {
			s.Cart = mergeLines(s.Cart, items)
			res.CartChanged = true
		}
	}

	// Agent confirming checkout.
	if strings.Contains(lower, "order") &&
		(strings.Contains(lower, "created successfully") || strings.Contains(lower, "confirmed")) {
		if order := e.finalizeOrder(s, last.Text); order != nil {
			res.OrderPlaced = order
			res.CartChanged = true
		}
	}

	return res
}

// finalizeOrder snapshots the cart into an immutable order, publishes it on
// the session, clears the cart and arms the auto-hide timer. An empty cart
// skips order creation entirely. A pending item is left in place; only a
// successful add consumes it.
func (e *Engine) finalizeOrder(s *store.Session, text string) *store.Order {
	orderID := ExtractOrderCode(text)
	if orderID == "" {
		orderID = fmt.Sprintf("ORD-%d", e.now().UnixMilli())
	}
	total := ExtractOrderTotal(text)

	lines := s.Cart
	if len(lines) == 0 && recoverLinesFromReceiptText {
		lines = ExtractOrderLines(text)
	}
	if len(lines) == 0 {
		return nil
	}

	if total == 0 {
		total = Subtotal(lines)
	}

	order := &store.Order{
		OrderID:   orderID,
		CreatedAt: e.now(),
		Lines:     append([]store.CartLine(nil), lines...),
		Total:     total,
	}

	s.LastOrder = order
	s.OrderVisible = true
	s.Cart = nil

	e.scheduleAutoHide(s, orderID)
	return order
}

// scheduleAutoHide replaces the session's dwell timer with one keyed to
// this order. A stale timer firing after a newer order replaced it must
// not hide the newer banner, so the callback re-checks the order identity
// under the session lock before clearing anything.
func (e *Engine) scheduleAutoHide(s *store.Session, orderID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if t, ok := e.timers[s.ID]; ok {
		t.Stop()
	}
	e.timers[s.ID] = time.AfterFunc(e.dwell, func() {
		e.mu.Lock()
		delete(e.timers, s.ID)
		e.mu.Unlock()

		s.Lock()
		hidden := s.OrderVisible && s.LastOrder != nil && s.LastOrder.OrderID == orderID
		if hidden {
			s.OrderVisible = false
		}
		s.Unlock()

		if hidden && e.onAutoHide != nil {
			e.onAutoHide(s.ID)
		}
	})
}

// DismissOrder hides the order confirmation and cancels its dwell timer.
// The cart and last order are untouched.
func (e *Engine) DismissOrder(s *store.Session) {
	e.mu.Lock()
	if t, ok := e.timers[s.ID]; ok {
		t.Stop()
		delete(e.timers, s.ID)
	}
	e.mu.Unlock()

	s.Lock()
	s.OrderVisible = false
	s.Unlock()
}

// lastAgentMessages returns up to n trailing remote-sender messages, oldest
// first.
func lastAgentMessages(msgs []store.ChatMessage, n int) []store.ChatMessage {
	var agent []store.ChatMessage
	for _, m := range msgs {
		if m.Sender == store.SenderRemote {
			agent = append(agent, m)
		}
	}
	if len(agent) > n {
		agent = agent[len(agent)-n:]
	}
	return agent
}

// mergeLines folds new items into the cart: an existing line id gets its
// quantity incremented (the first-seen unit price is retained), anything
// else is appended in arrival order.
func mergeLines(cart []store.CartLine, items []store.CartLine) []store.CartLine {
	for _, item := range items {
		merged := false
		for i := range cart {
			if cart[i].ID == item.ID {
				cart[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			cart = append(cart, item)
		}
	}
	return cart
}
