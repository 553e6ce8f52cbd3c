package model

import "time"

// Stream event types pushed to connected storefront clients.
const (
	StreamCartUpdated       = "cart_updated"
	StreamOrderPlaced       = "order_placed"
	StreamOrderBannerHidden = "order_banner_hidden"
)

// StreamEvent is the frame pushed over the session WebSocket whenever the
// reconciled view changes.
type StreamEvent struct {
	Type      string      `json:"type"`
	SessionId string      `json:"session_id"`
	Payload   interface{} `json:"payload,omitempty"`
	SentAt    time.Time   `json:"sent_at"`
}
