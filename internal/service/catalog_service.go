package service

import (
	"context"

	"echomart-be/internal/dto"
	"echomart-be/pkg/catalog"
)

type ICatalogService interface {
	List(ctx context.Context, filter *catalog.Filter) *dto.ListProductsResponse
}

type catalogService struct{}

func NewCatalogService() ICatalogService {
	return &catalogService{}
}

func (s *catalogService) List(ctx context.Context, filter *catalog.Filter) *dto.ListProductsResponse {
	products := catalog.List(filter)
	return &dto.ListProductsResponse{
		Products: products,
		Count:    len(products),
	}
}
