package controller

import (
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IHistoryAndValuesController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type historyAndValuesController struct {
	historyService service.IHistoryAndValuesService
}

func NewHistoryAndValuesController(historyService service.IHistoryAndValuesService) IHistoryAndValuesController {
	return &historyAndValuesController{historyService: historyService}
}

func (c *historyAndValuesController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/HistoryAndValues")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *historyAndValuesController) Index(ctx *fiber.Ctx) error {
	res, err := c.historyService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *historyAndValuesController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.historyService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *historyAndValuesController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateHistoryAndValuesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.historyService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *historyAndValuesController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateHistoryAndValuesRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.historyService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *historyAndValuesController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.historyService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
