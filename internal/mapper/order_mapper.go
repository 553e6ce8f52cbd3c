package mapper

import (
	"encoding/json"
	"time"

	"echomart-be/internal/entity"
	"echomart-be/internal/model"

	"gorm.io/gorm"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) OrderToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}

	var deletedAt *time.Time
	if o.DeletedAt.Valid {
		t := o.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !o.UpdatedAt.IsZero() {
		t := o.UpdatedAt
		updatedAt = &t
	}

	var lines []entity.OrderLine
	// Corrupt line blobs degrade to an empty line list rather than failing
	// the whole read.
	_ = json.Unmarshal(o.Lines, &lines)

	return &entity.Order{
		Id:        o.Id,
		SessionId: o.SessionId,
		OrderCode: o.OrderCode,
		Lines:     lines,
		Total:     o.Total,
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: o.DeletedAt.Valid,
	}
}

func (m *OrderMapper) OrderToModel(o *entity.Order) (*model.Order, error) {
	if o == nil {
		return nil, nil
	}

	var deletedAt gorm.DeletedAt
	if o.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *o.DeletedAt, Valid: true}
	} else if o.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if o.UpdatedAt != nil {
		updatedAt = *o.UpdatedAt
	}

	lines, err := json.Marshal(o.Lines)
	if err != nil {
		return nil, err
	}

	currency := o.Currency
	if currency == "" {
		currency = "INR"
	}

	return &model.Order{
		Id:        o.Id,
		SessionId: o.SessionId,
		OrderCode: o.OrderCode,
		Lines:     lines,
		Total:     o.Total,
		Currency:  currency,
		CreatedAt: o.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}, nil
}
