package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderLine is one reconciled cart line frozen into an order.
type OrderLine struct {
	LineID    string  `json:"id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is an order reconciled out of a conversation and persisted for
// history queries.
type Order struct {
	Id        uuid.UUID
	SessionId string
	OrderCode string
	Lines     []OrderLine
	Total     float64
	Currency  string
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
