package controller

import (
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CollectionController serves the owned collections outside the publish
// envelope: hero sections, partners, footer, faqs and vision-and-mission.
// Footer is a singleton, so it has no list/detail split: GET returns the one
// row, PUT replaces it.
type ICollectionController interface {
	RegisterRoutes(r fiber.Router)
}

type collectionController struct {
	collectionService service.ICollectionService
}

func NewCollectionController(collectionService service.ICollectionService) ICollectionController {
	return &collectionController{collectionService: collectionService}
}

func (c *collectionController) RegisterRoutes(r fiber.Router) {
	hero := r.Group("/hero-sections")
	hero.Get("", c.IndexHeroSections)
	hero.Post("", c.CreateHeroSection)
	hero.Get(":id", c.ShowHeroSection)
	hero.Put(":id", c.UpdateHeroSection)
	hero.Delete(":id", c.DeleteHeroSection)

	partners := r.Group("/partners")
	partners.Get("", c.IndexPartners)
	partners.Post("", c.CreatePartner)
	partners.Get(":id", c.ShowPartner)
	partners.Put(":id", c.UpdatePartner)
	partners.Delete(":id", c.DeletePartner)

	faqs := r.Group("/faqs")
	faqs.Get("", c.IndexFaqs)
	faqs.Post("", c.CreateFaq)
	faqs.Get(":id", c.ShowFaq)
	faqs.Put(":id", c.UpdateFaq)
	faqs.Delete(":id", c.DeleteFaq)

	vm := r.Group("/vision-and-mission")
	vm.Get("", c.IndexVisionAndMission)
	vm.Post("", c.CreateVisionAndMission)
	vm.Get(":id", c.ShowVisionAndMission)
	vm.Put(":id", c.UpdateVisionAndMission)
	vm.Delete(":id", c.DeleteVisionAndMission)

	footer := r.Group("/footer")
	footer.Get("", c.ShowFooter)
	footer.Put("", c.UpsertFooter)
	footer.Delete(":id", c.DeleteFooter)
}

func (c *collectionController) IndexHeroSections(ctx *fiber.Ctx) error {
	res, err := c.collectionService.GetHeroSections(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) ShowHeroSection(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.collectionService.GetHeroSection(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) CreateHeroSection(ctx *fiber.Ctx) error {
	var req dto.CreateHeroSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.CreateHeroSection(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *collectionController) UpdateHeroSection(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateHeroSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.UpdateHeroSection(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) DeleteHeroSection(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.collectionService.DeleteHeroSection(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *collectionController) IndexPartners(ctx *fiber.Ctx) error {
	res, err := c.collectionService.GetPartners(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) ShowPartner(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.collectionService.GetPartner(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) CreatePartner(ctx *fiber.Ctx) error {
	var req dto.CreatePartnerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.CreatePartner(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *collectionController) UpdatePartner(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdatePartnerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.UpdatePartner(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) DeletePartner(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.collectionService.DeletePartner(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *collectionController) IndexFaqs(ctx *fiber.Ctx) error {
	res, err := c.collectionService.GetFaqs(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) ShowFaq(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.collectionService.GetFaq(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) CreateFaq(ctx *fiber.Ctx) error {
	var req dto.CreateFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.CreateFaq(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *collectionController) UpdateFaq(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateFaqRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.UpdateFaq(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) DeleteFaq(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.collectionService.DeleteFaq(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *collectionController) IndexVisionAndMission(ctx *fiber.Ctx) error {
	res, err := c.collectionService.GetVisionAndMissions(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) ShowVisionAndMission(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	res, err := c.collectionService.GetVisionAndMission(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) CreateVisionAndMission(ctx *fiber.Ctx) error {
	var req dto.CreateVisionAndMissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.CreateVisionAndMission(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *collectionController) UpdateVisionAndMission(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateVisionAndMissionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.UpdateVisionAndMission(ctx.Context(), id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) DeleteVisionAndMission(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.collectionService.DeleteVisionAndMission(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *collectionController) ShowFooter(ctx *fiber.Ctx) error {
	res, err := c.collectionService.GetFooter(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) UpsertFooter(ctx *fiber.Ctx) error {
	var req dto.UpsertFooterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	res, err := c.collectionService.UpsertFooter(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *collectionController) DeleteFooter(ctx *fiber.Ctx) error {
	id, err := serverutils.ParseIdParam(ctx)
	if err != nil {
		return err
	}
	if err := c.collectionService.DeleteFooter(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
