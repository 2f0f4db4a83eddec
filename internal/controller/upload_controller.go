package controller

import (
	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/pkg/imagestore"

	"github.com/gofiber/fiber/v2"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	store    imagestore.Store
	jwtGuard fiber.Handler
}

func NewUploadController(store imagestore.Store, jwtGuard fiber.Handler) IUploadController {
	return &uploadController{store: store, jwtGuard: jwtGuard}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload")
	h.Use(c.jwtGuard)
	h.Post("", c.Upload)
}

// Upload accepts multipart form data with a "file" field and an optional
// "folder" field grouping assets (hero, partners, ...).
func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return serverutils.NewValidationError("file is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return serverutils.NewValidationError("file is too large")
	}

	folder := ctx.FormValue("folder", "general")

	f, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer f.Close()

	url, err := c.store.Save(ctx.Context(), folder, fileHeader.Filename, f)
	if err != nil {
		return serverutils.NewValidationError("%s", err.Error())
	}

	return ctx.Status(fiber.StatusCreated).JSON(dto.UploadResponse{Url: url})
}
