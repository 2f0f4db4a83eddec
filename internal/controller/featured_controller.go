package controller

import (
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Registrable is the minimal surface route registration needs; it lets the
// five FeaturedController instantiations share one container slot.
type Registrable interface {
	RegisterRoutes(r fiber.Router)
}

// FeaturedController serves one feature association family. The create and
// update request types are type parameters so each family keeps its own wire
// key (eventId, programId, ...) while the handler logic stays shared.
type FeaturedController[M any, C dto.FeaturedRefs, U dto.FeaturedRefs] struct {
	prefix          string
	featuredService service.IFeaturedService[M]
}

func NewFeaturedController[M any, C dto.FeaturedRefs, U dto.FeaturedRefs](
	prefix string,
	featuredService service.IFeaturedService[M],
) *FeaturedController[M, C, U] {
	return &FeaturedController[M, C, U]{prefix: prefix, featuredService: featuredService}
}

func (c *FeaturedController[M, C, U]) RegisterRoutes(r fiber.Router) {
	h := r.Group(c.prefix)
	h.Get("", c.Index)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *FeaturedController[M, C, U]) Index(ctx *fiber.Ctx) error {
	res, err := c.featuredService.GetAll(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *FeaturedController[M, C, U]) Show(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.featuredService.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *FeaturedController[M, C, U]) Create(ctx *fiber.Ctx) error {
	var req C
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}

	pageId, contentId, order := req.Refs()
	res, err := c.featuredService.Create(ctx.Context(), pageId, contentId, order)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *FeaturedController[M, C, U]) Update(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}

	var req U
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}

	pageId, contentId, order := req.Refs()
	res, err := c.featuredService.Update(ctx.Context(), id, pageId, contentId, order)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *FeaturedController[M, C, U]) Delete(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.featuredService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
