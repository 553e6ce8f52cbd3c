package reconcile

import "echomart-be/pkg/store"

// CartView is the read-only projection handed to the presentation layer.
// Lines and the order snapshot are copies; mutating them cannot touch the
// session.
type CartView struct {
	SessionID    string           `json:"session_id"`
	Lines        []store.CartLine `json:"cart"`
	Subtotal     float64          `json:"subtotal"`
	LastOrder    *store.Order     `json:"last_order"`
	OrderVisible bool             `json:"order_visible"`
}

// Subtotal is Σ(quantity × unit price). Recomputed on every read, never
// cached against cart mutation.
func Subtotal(lines []store.CartLine) float64 {
	var sum float64
	for _, l := range lines {
		sum += float64(l.Quantity) * l.UnitPrice
	}
	return sum
}

// Snapshot captures the current derived view of a session.
func Snapshot(s *store.Session) CartView {
	s.Lock()
	defer s.Unlock()

	view := CartView{
		SessionID:    s.ID,
		Lines:        append([]store.CartLine(nil), s.Cart...),
		Subtotal:     Subtotal(s.Cart),
		OrderVisible: s.OrderVisible,
	}
	if s.LastOrder != nil {
		order := *s.LastOrder
		order.Lines = append([]store.CartLine(nil), s.LastOrder.Lines...)
		view.LastOrder = &order
	}
	return view
}
