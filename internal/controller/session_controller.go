package controller

import (
	"errors"

	"echomart-be/internal/dto"
	"echomart-be/internal/pkg/serverutils"
	"echomart-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	AppendMessages(ctx *fiber.Ctx) error
	GetCart(ctx *fiber.Ctx) error
	DismissOrder(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Create)

	h.Use(serverutils.JwtMiddleware)
	h.Post("/messages", c.AppendMessages)
	h.Get("/cart", c.GetCart)
	h.Post("/order/dismiss", c.DismissOrder)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.service.Create(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session created", res))
}

func (c *sessionController) AppendMessages(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("session_id").(string)
	if !ok {
		return fiber.ErrUnauthorized
	}

	var req dto.AppendMessagesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.service.AppendMessages(ctx.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Messages processed", res))
}

func (c *sessionController) GetCart(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("session_id").(string)
	if !ok {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.GetCart(ctx.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Current cart", res))
}

func (c *sessionController) DismissOrder(ctx *fiber.Ctx) error {
	sessionID, ok := ctx.Locals("session_id").(string)
	if !ok {
		return fiber.ErrUnauthorized
	}

	if err := c.service.DismissOrder(ctx.Context(), sessionID); err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Order dismissed", nil))
}
