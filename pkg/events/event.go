package events

import "time"

// Event types emitted on the bus.
const (
	TypeOrderPlaced = "ORDER_PLACED"
)

// Event is the contract every bus event satisfies.
type Event interface {
	// EventType returns the unique code for this event (e.g. "ORDER_PLACED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a generic implementation for events assembled ad hoc.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewOrderPlaced builds the event published after an order is reconciled
// out of a session transcript.
func NewOrderPlaced(sessionID, orderID string, total float64) BaseEvent {
	return BaseEvent{
		Type: TypeOrderPlaced,
		Data: map[string]interface{}{
			"session_id": sessionID,
			"order_id":   orderID,
			"total":      total,
		},
		OccurredAt: time.Now(),
	}
}
