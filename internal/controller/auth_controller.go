package controller

import (
	"strings"

	"landing-cms-be/internal/dto"
	"landing-cms-be/internal/pkg/serverutils"
	"landing-cms-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
	GoogleCallback(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &authController{authService: authService}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("login", c.Login)
	h.Post("logout", c.Logout)
	h.Post("google", c.GoogleCallback)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == "" || tokenStr == authHeader {
		return serverutils.NewValidationError("missing token")
	}

	if err := c.authService.Logout(ctx.Context(), tokenStr); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (c *authController) GoogleCallback(ctx *fiber.Ctx) error {
	var req dto.GoogleCallbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("request body is invalid")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.GoogleLogin(ctx.Context(), req.Code)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
