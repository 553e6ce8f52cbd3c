package specification

import "gorm.io/gorm"

// BySessionId scopes orders to one conversation session.
type BySessionId struct {
	SessionId string
}

func (s BySessionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionId)
}

// ByOrderCode filters by the spoken order code (e.g. "ORD-123").
type ByOrderCode struct {
	OrderCode string
}

func (s ByOrderCode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("order_code = ?", s.OrderCode)
}
