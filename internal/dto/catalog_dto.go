package dto

import "echomart-be/pkg/catalog"

type ListProductsResponse struct {
	Products []catalog.Product `json:"products"`
	Count    int               `json:"count"`
}
