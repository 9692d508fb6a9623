package controller

import (
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/serverutils"
	"github.com/RishavSingh2203/freaky-fit/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(router fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) IAuthController {
	return &AuthController{authService: authService}
}

func (c *AuthController) RegisterRoutes(router fiber.Router) {
	auth := router.Group("/auth")
	auth.Post("/register", c.Register)
	auth.Post("/login", c.Login)
}

func (c *AuthController) Register(ctx *fiber.Ctx) error {
	req := new(dto.RegisterRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Registration successful", res))
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	req := new(dto.LoginRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}
