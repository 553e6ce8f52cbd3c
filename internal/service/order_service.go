package service

import (
	"context"

	"echomart-be/internal/dto"
	"echomart-be/internal/entity"
	"echomart-be/internal/repository/specification"
	"echomart-be/internal/repository/unitofwork"
)

type IOrderService interface {
	GetOrders(ctx context.Context, sessionID string, limit, offset int) (*dto.ListOrdersResponse, error)
	GetLastOrder(ctx context.Context, sessionID string) (*dto.OrderResponse, error)
}

type orderService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewOrderService(uowFactory unitofwork.RepositoryFactory) IOrderService {
	return &orderService{uowFactory: uowFactory}
}

func (s *orderService) GetOrders(ctx context.Context, sessionID string, limit, offset int) (*dto.ListOrdersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.OrderRepository()

	orders, err := repo.FindAll(ctx,
		specification.BySessionId{SessionId: sessionID},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	total, err := repo.Count(ctx, specification.BySessionId{SessionId: sessionID})
	if err != nil {
		return nil, err
	}

	res := &dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Total:  total,
	}
	for _, o := range orders {
		res.Orders = append(res.Orders, toOrderResponse(o))
	}
	return res, nil
}

func (s *orderService) GetLastOrder(ctx context.Context, sessionID string) (*dto.OrderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	order, err := uow.OrderRepository().FindOne(ctx,
		specification.BySessionId{SessionId: sessionID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}

	res := toOrderResponse(order)
	return &res, nil
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		Id:        o.Id,
		SessionId: o.SessionId,
		OrderCode: o.OrderCode,
		Lines:     o.Lines,
		Total:     o.Total,
		Currency:  o.Currency,
		CreatedAt: o.CreatedAt,
	}
}
