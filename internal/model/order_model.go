package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Order struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string         `gorm:"type:text;not null;index"` // Session ownership for history queries
	OrderCode string         `gorm:"type:text;not null;uniqueIndex"`
	Lines     datatypes.JSON `gorm:"type:jsonb;not null"`
	Total     float64        `gorm:"type:numeric;not null"`
	Currency  string         `gorm:"type:text;not null;default:'INR'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Order) TableName() string {
	return "orders"
}
