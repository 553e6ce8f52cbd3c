package controller

import (
	"echomart-be/internal/pkg/serverutils"
	"echomart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	GetOrders(ctx *fiber.Ctx) error
	GetLastOrder(ctx *fiber.Ctx) error
}

type orderController struct {
	service service.IOrderService
}

func NewOrderController(service service.IOrderService) IOrderController {
	return &orderController{service: service}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/order/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetOrders)
	h.Get("/last", c.GetLastOrder)
}

func (c *orderController) GetOrders(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("session_id").(string)
	if !ok {
		return fiber.ErrUnauthorized
	}

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetOrders(ctx.Context(), sessionID, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Order history", res))
}

func (c *orderController) GetLastOrder(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("session_id").(string)
	if !ok {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.GetLastOrder(ctx.Context(), sessionID)
	if err != nil {
		return err
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("No orders yet", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Last order", res))
}
