package controller

import (
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type eventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) IEventController {
	return &eventController{eventService: eventService}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/Events")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *eventController) Index(ctx *fiber.Ctx) error {
	res, err := c.eventService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *eventController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.eventService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *eventController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *eventController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *eventController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.eventService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
