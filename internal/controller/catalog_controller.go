package controller

import (
	"echomart-be/internal/pkg/serverutils"
	"echomart-be/internal/service"
	"echomart-be/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("", c.List)
}

func (c *catalogController) List(ctx *fiber.Ctx) error {
	filter := &catalog.Filter{
		Category: ctx.Query("category"),
		Color:    ctx.Query("color"),
		MaxPrice: ctx.QueryInt("max_price", 0),
	}

	res := c.service.List(ctx.Context(), filter)

	return ctx.JSON(serverutils.SuccessResponse("Product catalog", res))
}
