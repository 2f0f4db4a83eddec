package controller

import (
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/readmodel"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ILandingController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	View(ctx *fiber.Ctx) error
}

type landingController struct {
	landingService service.ILandingService
}

func NewLandingController(landingService service.ILandingService) ILandingController {
	return &landingController{landingService: landingService}
}

func (c *landingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/landing")
	h.Get("", c.Show)
	h.Put("", c.Update)
	h.Get("view", c.View)
}

func (c *landingController) Show(ctx *fiber.Ctx) error {
	res, err := c.landingService.GetLanding(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

// Update applies the publish envelope: every key present replaces its whole
// collection, every key absent is untouched, and the write is atomic.
func (c *landingController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateLandingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}

	actor := "anonymous"
	if email, ok := ctx.Locals("user_email").(string); ok && email != "" {
		actor = email
	}

	res, err := c.landingService.UpdateLanding(ctx.Context(), &req, actor)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *landingController) View(ctx *fiber.Ctx) error {
	res, err := c.landingService.GetLanding(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(readmodel.BuildView(res))
}
