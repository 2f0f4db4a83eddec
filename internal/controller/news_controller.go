package controller

import (
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INewsController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type newsController struct {
	newsService service.INewsService
}

func NewNewsController(newsService service.INewsService) INewsController {
	return &newsController{newsService: newsService}
}

func (c *newsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/News")
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *newsController) Index(ctx *fiber.Ctx) error {
	res, err := c.newsService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *newsController) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.newsService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *newsController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNewsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.newsService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *newsController) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateNewsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.newsService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *newsController) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.newsService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
