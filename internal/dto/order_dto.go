package dto

import (
	"time"

	"echomart-be/internal/entity"
	"echomart-be/pkg/store"

	"github.com/google/uuid"
)

// PublishOrderPlacedMessage is the payload queued for the order persistence
// worker when reconciliation finalizes an order.
type PublishOrderPlacedMessage struct {
	SessionId string      `json:"session_id"`
	Order     store.Order `json:"order"`
}

type OrderResponse struct {
	Id        uuid.UUID          `json:"id"`
	SessionId string             `json:"session_id"`
	OrderCode string             `json:"order_code"`
	Lines     []entity.OrderLine `json:"lines"`
	Total     float64            `json:"total"`
	Currency  string             `json:"currency"`
	CreatedAt time.Time          `json:"created_at"`
}

type ListOrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}
