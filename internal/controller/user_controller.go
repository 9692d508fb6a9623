package controller

import (
	"errors"

	"github.com/RishavSingh2203/freaky-fit/internal/dto"
	"github.com/RishavSingh2203/freaky-fit/internal/pkg/serverutils"
	"github.com/RishavSingh2203/freaky-fit/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(router fiber.Router)
}

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &UserController{userService: userService}
}

func (c *UserController) RegisterRoutes(router fiber.Router) {
	users := router.Group("/users", serverutils.JwtMiddleware)
	users.Get("/me", c.GetProfile)
	users.Put("/me", c.UpdateProfile)
	users.Get("/me/notifications", c.ListNotifications)
	users.Patch("/me/notifications/:id/read", c.MarkNotificationRead)
}

func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	profile, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile retrieved", profile))
}

func (c *UserController) UpdateProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	req := new(dto.UpdateProfileRequest)
	if err := serverutils.ValidateRequest(ctx, req); err != nil {
		return err
	}

	profile, err := c.userService.UpdateProfile(ctx.Context(), userId, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Profile updated", profile))
}

func (c *UserController) ListNotifications(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	notifications, err := c.userService.ListNotifications(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Notifications retrieved", notifications))
}

func (c *UserController) MarkNotificationRead(ctx *fiber.Ctx) error {
	userId, err := currentUserId(ctx)
	if err != nil {
		return err
	}

	notificationId, err := parseIdParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.userService.MarkNotificationRead(ctx.Context(), userId, notificationId); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Notification not found")
		}
		return err
	}

	return ctx.JSON(serverutils.MessageResponse("Notification marked as read"))
}
