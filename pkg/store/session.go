package store

import (
	"sync"
	"time"
)

// Sender identifies who authored a transcript message.
type Sender string

const (
	SenderLocal  Sender = "local"  // the shopper
	SenderRemote Sender = "remote" // the voice agent
)

// ChatMessage is one observed transcript entry. Immutable once appended.
type ChatMessage struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// CartLine is one distinct product entry in the cart. ID is the normalized
// product name, the only join key available since the agent's speech
// carries no canonical product identifier.
type CartLine struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a finalized checkout. Immutable once created.
type Order struct {
	OrderID   string     `json:"order_id"`
	CreatedAt time.Time  `json:"created_at"`
	Lines     []CartLine `json:"lines"`
	Total     float64    `json:"total"`
}

// Session is the in-memory state blob for one shopping session.
//
// Cart is insertion-ordered with at most one line per ID. PendingItem holds
// the item the agent described as about-to-be-added but not yet confirmed.
// ProcessedCount guards against re-processing an unchanged transcript.
type Session struct {
	ID       string        `json:"id"`
	Messages []ChatMessage `json:"messages"`

	Cart        []CartLine `json:"cart"`
	PendingItem *CartLine  `json:"pending_item"`

	LastOrder    *Order `json:"last_order"`
	OrderVisible bool   `json:"order_visible"`

	ProcessedCount int `json:"processed_count"`

	mu sync.Mutex
}

// Lock serializes access to the session blob. The reconcile engine and the
// service layer are the only writers; both hold this lock for a full pass.
func (s *Session) Lock() { s.mu.Lock() }

func (s *Session) Unlock() { s.mu.Unlock() }
